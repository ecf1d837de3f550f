package ci

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thomas-vilte/mateci/internal/ci/circleci"
	cfg "github.com/thomas-vilte/mateci/internal/config"
	domainErrors "github.com/thomas-vilte/mateci/internal/errors"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type DownloadCommand struct {
	clients *factory.ClientFactory
}

func NewDownloadCommand(clients *factory.ClientFactory) *DownloadCommand {
	return &DownloadCommand{clients: clients}
}

func (c *DownloadCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "Download one artifact of a job",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "job-number",
				Aliases:  []string{"j"},
				Usage:    "Job number the artifact belongs to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Usage:    "Artifact path as shown by the artifacts command",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Target file (defaults to the artifact's base name in the current directory)",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "Replace the target file if it already exists",
			},
			&cli.StringFlag{
				Name:  "slug",
				Usage: "Override the configured owner/repo slug",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			client, err := c.clients.CircleCIClient(command.String("slug"))
			if err != nil {
				return err
			}

			jobNumber := int(command.Int("job-number"))
			artifactPath := command.String("path")

			artifacts, err := client.Artifacts(ctx, jobNumber)
			if err != nil {
				return fmt.Errorf("listing artifacts: %w", err)
			}

			var found *circleci.Artifact
			for _, a := range artifacts {
				if a.Path == artifactPath {
					found = &a
					break
				}
			}
			if found == nil {
				return domainErrors.ErrArtifactNotFound.
					WithContext("job_number", jobNumber).
					WithContext("path", artifactPath)
			}

			target := command.String("out")
			if target == "" {
				target = filepath.Base(artifactPath)
			}

			err = client.DownloadArtifact(ctx, *found, target, command.Bool("overwrite"))
			if errors.Is(err, domainErrors.ErrFileAlreadyExists) {
				return fmt.Errorf("%s already exists, pass --overwrite to replace it", target)
			}
			if err != nil {
				return fmt.Errorf("downloading artifact: %w", err)
			}

			fmt.Printf("Downloaded %s to %s\n", artifactPath, target)
			return nil
		},
	}
}
