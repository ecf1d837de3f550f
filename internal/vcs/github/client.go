package github

import (
	"context"
	"fmt"
	"io"

	"github.com/thomas-vilte/mateci/internal/api"
	"github.com/thomas-vilte/mateci/internal/httpclient"
	"github.com/thomas-vilte/mateci/internal/logger"
	"github.com/thomas-vilte/mateci/internal/models"
)

const DefaultBaseURL = "https://api.github.com"

// Client is a thin wrapper over the GitHub REST API scoped to one repository.
type Client struct {
	slug    string
	baseURL string

	httpClient    httpclient.HTTPClient
	debugRequests bool
	debugW        io.Writer

	req *api.Requester
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient injects the transport. Pass an oauth2 client to authenticate.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

func WithDebugRequests(debug bool) Option {
	return func(c *Client) {
		c.debugRequests = debug
	}
}

func WithDebugWriter(w io.Writer) Option {
	return func(c *Client) {
		c.debugW = w
	}
}

// NewClient creates a client for the given owner/repo slug.
func NewClient(slug string, opts ...Option) *Client {
	c := &Client{
		slug:    slug,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	reqOpts := []api.Option{api.WithDebugRequests(c.debugRequests)}
	if c.httpClient != nil {
		reqOpts = append(reqOpts, api.WithHTTPClient(c.httpClient))
	}
	if c.debugW != nil {
		reqOpts = append(reqOpts, api.WithDebugWriter(c.debugW))
	}
	c.req = api.New(reqOpts...)

	return c
}

// PullRequest fetches a single pull request by number. Errors from the API
// layer are propagated unchanged.
func (c *Client) PullRequest(ctx context.Context, prNumber int) (*models.PullRequest, error) {
	log := logger.FromContext(ctx)

	log.Debug("fetching github pull request",
		"slug", c.slug,
		"pr_number", prNumber)

	url := fmt.Sprintf("%s/repos/%s/pulls/%d", c.baseURL, c.slug, prNumber)

	var pr models.PullRequest
	if err := c.req.QueryInto(ctx, url, nil, &pr); err != nil {
		log.Error("failed to fetch github pull request",
			"error", err,
			"slug", c.slug,
			"pr_number", prNumber)
		return nil, err
	}

	log.Debug("github pull request fetched",
		"pr_number", pr.Number,
		"title", pr.Title,
		"state", pr.State)

	return &pr, nil
}
