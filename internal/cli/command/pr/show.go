package pr

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	cfg "github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/factory"
	"github.com/urfave/cli/v3"
)

type ShowCommand struct {
	clients *factory.ClientFactory
}

func NewShowCommand(clients *factory.ClientFactory) *ShowCommand {
	return &ShowCommand{clients: clients}
}

func (c *ShowCommand) CreateCommand(_ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "pr",
		Aliases: []string{"pull-request"},
		Usage:   "Show a pull request of the configured repository",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Aliases:  []string{"n"},
				Usage:    "Pull request number",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "slug",
				Usage: "Override the configured owner/repo slug",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			client, err := c.clients.GitHubClient(ctx, command.String("slug"))
			if err != nil {
				return err
			}

			prNumber := command.Int("number")
			pullRequest, err := client.PullRequest(ctx, int(prNumber))
			if err != nil {
				return fmt.Errorf("fetching pull request #%d: %w", prNumber, err)
			}

			state := pullRequest.State
			if pullRequest.Merged() {
				state = "merged"
			}

			fmt.Printf("%s %s\n", color.New(color.Bold).Sprintf("#%d", pullRequest.Number), pullRequest.Title)
			fmt.Printf("  state:   %s\n", colorState(state))
			fmt.Printf("  author:  %s\n", pullRequest.User.Login)
			fmt.Printf("  branch:  %s -> %s\n", pullRequest.Head.Ref, pullRequest.Base.Ref)
			fmt.Printf("  created: %s\n", pullRequest.CreatedAt.Format(time.RFC3339))
			fmt.Printf("  url:     %s\n", pullRequest.HTMLURL)
			return nil
		},
	}
}

func colorState(state string) string {
	switch state {
	case "open":
		return color.GreenString(state)
	case "merged":
		return color.MagentaString(state)
	case "closed":
		return color.RedString(state)
	default:
		return state
	}
}
