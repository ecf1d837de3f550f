package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/mateci/internal/cli/command/ci"
	"github.com/thomas-vilte/mateci/internal/cli/command/pr"
	"github.com/thomas-vilte/mateci/internal/cli/registry"
	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/thomas-vilte/mateci/internal/logger"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	configPath := os.Getenv("MATECI_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not get the user home directory: %w", err)
		}
		configPath = homeDir
	}

	cfgApp, err := cfg.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Initialize(os.Getenv("MATECI_DEBUG") != "", os.Getenv("MATECI_VERBOSE") != "")

	clients := factory.NewClientFactory(cfgApp)

	registerCommand := registry.NewRegistry(cfgApp)

	if err := registerCommand.Register("pr", pr.NewShowCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("status", ci.NewStatusCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("pipelines", ci.NewPipelinesCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("workflows", ci.NewWorkflowsCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("jobs", ci.NewJobsCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("artifacts", ci.NewArtifactsCommand(clients)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("download", ci.NewDownloadCommand(clients)); err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:                  "mateci",
		Usage:                 "Inspect pull requests and CircleCI pipelines from the terminal",
		Version:               version,
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, nil
}
