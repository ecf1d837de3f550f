package ci

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type PipelinesCommand struct {
	clients *factory.ClientFactory
}

func NewPipelinesCommand(clients *factory.ClientFactory) *PipelinesCommand {
	return &PipelinesCommand{clients: clients}
}

func (c *PipelinesCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "pipelines",
		Usage: "List the most recent CI pipelines of the project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "Only show pipelines for this branch",
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

			pipelines, err := client.Pipelines(ctx, command.String("branch"))
			if err != nil {
				return fmt.Errorf("listing pipelines: %w", err)
			}

			if len(pipelines) == 0 {
				fmt.Println("No pipelines found")
				return nil
			}

			for _, p := range pipelines {
				fmt.Printf("#%-6d %-10s %-24s %s  %s\n",
					p.Number,
					colorStatus(p.State),
					p.CreatedAt.Format(time.RFC3339),
					p.VCS.Branch,
					p.ID)
			}
			return nil
		},
	}
}
