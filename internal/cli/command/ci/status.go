package ci

import (
	"context"
	"fmt"
	"time"

	"github.com/thomas-vilte/mateci/internal/ci/circleci"
	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type StatusCommand struct {
	clients *factory.ClientFactory
}

func NewStatusCommand(clients *factory.ClientFactory) *StatusCommand {
	return &StatusCommand{clients: clients}
}

func (c *StatusCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the latest pipeline of a branch with its workflows and jobs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "Branch to inspect (all branches if omitted)",
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

			pipeline, ok := circleci.Latest(pipelines)
			if !ok {
				fmt.Println("No pipelines found")
				return nil
			}

			fmt.Printf("Pipeline #%d %s (%s, %s)\n",
				pipeline.Number,
				colorStatus(pipeline.State),
				pipeline.VCS.Branch,
				pipeline.CreatedAt.Format(time.RFC3339))

			workflows, err := client.Workflows(ctx, pipeline.ID)
			if err != nil {
				return fmt.Errorf("listing workflows of pipeline %s: %w", pipeline.ID, err)
			}

			for _, w := range workflows {
				fmt.Printf("  %s %s\n", w.Name, colorStatus(w.Status))

				jobs, err := client.Jobs(ctx, w.ID)
				if err != nil {
					return fmt.Errorf("listing jobs of workflow %s: %w", w.ID, err)
				}
				for _, j := range jobs {
					fmt.Printf("    #%-6d %-10s %s\n", j.JobNumber, colorStatus(j.Status), j.Name)
				}
			}
			return nil
		},
	}
}
