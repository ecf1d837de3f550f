package httpclient

import (
	"net/http"
	"time"
)

// HTTPClient is the seam every API call goes through, so tests can mock the
// transport and callers can inject authenticated clients (oauth2, etc.).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 30 * time.Second

// New returns the default client used when the caller doesn't inject one.
func New() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

type headerTransport struct {
	base  http.RoundTripper
	key   string
	value string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set(t.key, t.value)
	return t.base.RoundTrip(clone)
}

// NewWithHeader returns a client that sets a static header on every request.
// CircleCI authenticates with a Circle-Token header rather than a bearer
// token, so oauth2.NewClient doesn't fit there.
func NewWithHeader(key, value string) *http.Client {
	return &http.Client{
		Timeout:   defaultTimeout,
		Transport: &headerTransport{base: http.DefaultTransport, key: key, value: value},
	}
}
