package ci

import (
	"context"
	"fmt"

	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type JobsCommand struct {
	clients *factory.ClientFactory
}

func NewJobsCommand(clients *factory.ClientFactory) *JobsCommand {
	return &JobsCommand{clients: clients}
}

func (c *JobsCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "jobs",
		Usage: "List the jobs of a workflow",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "workflow-id",
				Aliases:  []string{"w"},
				Usage:    "Workflow ID (see the workflows command)",
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

			jobs, err := client.Jobs(ctx, command.String("workflow-id"))
			if err != nil {
				return fmt.Errorf("listing jobs: %w", err)
			}

			if len(jobs) == 0 {
				fmt.Println("No jobs found")
				return nil
			}

			for _, j := range jobs {
				fmt.Printf("#%-6d %-10s %s\n",
					j.JobNumber,
					colorStatus(j.Status),
					j.Name)
			}
			return nil
		},
	}
}
