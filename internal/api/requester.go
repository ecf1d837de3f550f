package api

import (
	"io"
	"os"

	"github.com/thomas-vilte/mateci/internal/httpclient"
)

// Requester issues the raw GET requests both service clients are built on.
// Authentication is the injected http client's job; nothing here knows about
// tokens.
type Requester struct {
	client        httpclient.HTTPClient
	debugRequests bool
	debugW        io.Writer
}

type Option func(*Requester)

// WithHTTPClient injects the transport, e.g. an oauth2 client or a mock.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(r *Requester) {
		if client != nil {
			r.client = client
		}
	}
}

// WithDebugRequests enables dumping of every request URL and response body.
func WithDebugRequests(debug bool) Option {
	return func(r *Requester) {
		r.debugRequests = debug
	}
}

// WithDebugWriter redirects the request/response dump, stderr by default.
func WithDebugWriter(w io.Writer) Option {
	return func(r *Requester) {
		if w != nil {
			r.debugW = w
		}
	}
}

func New(opts ...Option) *Requester {
	r := &Requester{
		client: httpclient.New(),
		debugW: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
