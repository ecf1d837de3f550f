package factory

import (
	"context"

	"github.com/thomas-vilte/mateci/internal/ci/circleci"
	"github.com/thomas-vilte/mateci/internal/config"
	"github.com/thomas-vilte/mateci/internal/httpclient"
	"github.com/thomas-vilte/mateci/internal/vcs/github"
	"golang.org/x/oauth2"
)

// ClientFactory builds API clients from the loaded configuration. Tokens stay
// here, inside the injected transports; the API layer never sees them.
type ClientFactory struct {
	cfg *config.Config
}

func NewClientFactory(cfg *config.Config) *ClientFactory {
	return &ClientFactory{cfg: cfg}
}

// GitHubClient builds the source-host client. slugOverride comes from the
// --slug flag and wins over the configured slug.
func (f *ClientFactory) GitHubClient(ctx context.Context, slugOverride string) (*github.Client, error) {
	slug, err := f.cfg.RequireSlug(slugOverride)
	if err != nil {
		return nil, err
	}

	opts := []github.Option{
		github.WithBaseURL(f.cfg.GitHub.BaseURL),
		github.WithDebugRequests(f.cfg.DebugRequests),
	}
	if token := f.cfg.GitHub.Token; token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		opts = append(opts, github.WithHTTPClient(oauth2.NewClient(ctx, ts)))
	}

	return github.NewClient(slug, opts...), nil
}

// CircleCIClient builds the CI client.
func (f *ClientFactory) CircleCIClient(slugOverride string) (*circleci.Client, error) {
	slug, err := f.cfg.RequireSlug(slugOverride)
	if err != nil {
		return nil, err
	}

	opts := []circleci.Option{
		circleci.WithBaseURL(f.cfg.CircleCI.BaseURL),
		circleci.WithDebugRequests(f.cfg.DebugRequests),
		circleci.WithMaxPages(f.cfg.MaxPages),
	}
	if token := f.cfg.CircleCI.Token; token != "" {
		opts = append(opts, circleci.WithHTTPClient(httpclient.NewWithHeader("Circle-Token", token)))
	}

	return circleci.NewClient(slug, opts...), nil
}
