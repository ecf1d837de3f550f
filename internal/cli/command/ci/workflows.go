package ci

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type WorkflowsCommand struct {
	clients *factory.ClientFactory
}

func NewWorkflowsCommand(clients *factory.ClientFactory) *WorkflowsCommand {
	return &WorkflowsCommand{clients: clients}
}

func (c *WorkflowsCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "workflows",
		Usage: "List the workflows of a pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pipeline-id",
				Aliases:  []string{"p"},
				Usage:    "Pipeline ID (see the pipelines command)",
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

			workflows, err := client.Workflows(ctx, command.String("pipeline-id"))
			if err != nil {
				return fmt.Errorf("listing workflows: %w", err)
			}

			if len(workflows) == 0 {
				fmt.Println("No workflows found")
				return nil
			}

			for _, w := range workflows {
				fmt.Printf("%-24s %-10s %-24s %s\n",
					w.Name,
					colorStatus(w.Status),
					w.CreatedAt.Format(time.RFC3339),
					w.ID)
			}
			return nil
		},
	}
}
