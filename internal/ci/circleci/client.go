package circleci

import (
	"context"
	"fmt"
	"io"

	"github.com/thomas-vilte/mateci/internal/api"
	"github.com/thomas-vilte/mateci/internal/httpclient"
)

const DefaultBaseURL = "https://circleci.com/api/v2"

// DefaultMaxPages bounds paginated queries. Unlimited would be the more
// logical default, but a cap keeps a bug from flooding the API with requests.
const DefaultMaxPages = 10

// Unlimited disables the page cap when passed to WithMaxPages.
const Unlimited = 0

// Client is a thin wrapper over the CircleCI v2 API scoped to one project.
type Client struct {
	slug     string
	baseURL  string
	maxPages int

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

// WithHTTPClient injects the transport. Pass httpclient.NewWithHeader with a
// Circle-Token header to authenticate.
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

// WithMaxPages overrides the per-query page cap. Pass Unlimited to page until
// the API stops returning a continuation token.
func WithMaxPages(maxPages int) Option {
	return func(c *Client) {
		if maxPages >= 0 {
			c.maxPages = maxPages
		}
	}
}

// NewClient creates a client for the given owner/repo slug.
func NewClient(slug string, opts ...Option) *Client {
	c := &Client{
		slug:     slug,
		baseURL:  DefaultBaseURL,
		maxPages: DefaultMaxPages,
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

// Pipelines lists the project's most recent pipelines, optionally filtered by
// branch. The endpoint returns them newest first, so a single page is enough.
func (c *Client) Pipelines(ctx context.Context, branch string) ([]Pipeline, error) {
	params := map[string]string{}
	if branch != "" {
		params["branch"] = branch
	}
	url := fmt.Sprintf("%s/project/gh/%s/pipeline", c.baseURL, c.slug)
	return PaginatedQuery[Pipeline](ctx, c, url, params, 1)
}

// Workflows lists the workflows of a pipeline.
func (c *Client) Workflows(ctx context.Context, pipelineID string) ([]Workflow, error) {
	url := fmt.Sprintf("%s/pipeline/%s/workflow", c.baseURL, pipelineID)
	return PaginatedQuery[Workflow](ctx, c, url, nil, c.maxPages)
}

// Jobs lists the jobs of a workflow.
func (c *Client) Jobs(ctx context.Context, workflowID string) ([]Job, error) {
	url := fmt.Sprintf("%s/workflow/%s/job", c.baseURL, workflowID)
	return PaginatedQuery[Job](ctx, c, url, nil, c.maxPages)
}

// Artifacts lists the artifacts produced by a job.
func (c *Client) Artifacts(ctx context.Context, jobNumber int) ([]Artifact, error) {
	url := fmt.Sprintf("%s/project/gh/%s/%d/artifacts", c.baseURL, c.slug, jobNumber)
	return PaginatedQuery[Artifact](ctx, c, url, nil, c.maxPages)
}

// DownloadArtifact streams an artifact's content to targetPath. See
// api.Requester.Download for the overwrite semantics.
func (c *Client) DownloadArtifact(ctx context.Context, artifact Artifact, targetPath string, overwrite bool) error {
	return c.req.Download(ctx, artifact.URL, targetPath, overwrite)
}
