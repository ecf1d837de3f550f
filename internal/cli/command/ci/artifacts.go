package ci

import (
	"context"
	"fmt"

	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type ArtifactsCommand struct {
	clients *factory.ClientFactory
}

func NewArtifactsCommand(clients *factory.ClientFactory) *ArtifactsCommand {
	return &ArtifactsCommand{clients: clients}
}

func (c *ArtifactsCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "artifacts",
		Usage: "List the artifacts produced by a job",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "job-number",
				Aliases:  []string{"j"},
				Usage:    "Job number (see the jobs command)",
				Required: true,
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

			artifacts, err := client.Artifacts(ctx, int(command.Int("job-number")))
			if err != nil {
				return fmt.Errorf("listing artifacts: %w", err)
			}

			if len(artifacts) == 0 {
				fmt.Println("No artifacts found")
				return nil
			}

			for _, a := range artifacts {
				fmt.Printf("%s\n  %s\n", a.Path, a.URL)
			}
			return nil
		},
	}
}
