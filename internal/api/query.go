package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/thomas-vilte/mateci/internal/logger"
)

// StatusError is returned for any non-2xx response. It is deliberately not an
// AppError so callers can tell a failed API call apart from local conditions
// like the download overwrite refusal.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// Query sends a GET to rawURL with params encoded as the query string and
// returns the raw response body on any 2xx status. No retries.
func (r *Requester) Query(ctx context.Context, rawURL string, params map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", rawURL, err)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Accept", "application/json")

	requestURL := req.URL.String()
	if r.debugRequests {
		fmt.Fprintf(r.debugW, "REQUEST: %s\n", requestURL)
	}
	logger.Debug(ctx, "api request", "url", requestURL)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", requestURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", requestURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        requestURL,
			Body:       string(body),
		}
	}

	if r.debugRequests {
		r.dumpResponse(body)
	}
	logger.Debug(ctx, "api response",
		"url", requestURL,
		"status", resp.StatusCode,
		"size", len(body))

	return json.RawMessage(body), nil
}

// QueryInto decodes the Query result into v.
func (r *Requester) QueryInto(ctx context.Context, rawURL string, params map[string]string, v any) error {
	raw, err := r.Query(ctx, rawURL, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	return nil
}

func (r *Requester) dumpResponse(body []byte) {
	fmt.Fprintln(r.debugW, "========== RESPONSE ==========")

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "    "); err == nil {
		_, _ = r.debugW.Write(pretty.Bytes())
	} else {
		_, _ = r.debugW.Write(body)
	}
	fmt.Fprintln(r.debugW)

	fmt.Fprintln(r.debugW, "==============================")
}
