package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	domainErrors "github.com/thomas-vilte/mateci/internal/errors"
	"github.com/thomas-vilte/mateci/internal/logger"
)

// maxErrorBodyBytes caps how much of a failed download response is kept for
// the error message.
const maxErrorBodyBytes = 4 * 1024

// Download streams the body of a GET request to targetPath. The body is never
// buffered in memory; CI artifacts can be large.
//
// When overwrite is false and targetPath already exists it fails with
// ErrFileAlreadyExists before any network call is made. Parent directories
// are never created and a partially written file is removed on failure.
func (r *Requester) Download(ctx context.Context, rawURL, targetPath string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(targetPath); err == nil {
			return domainErrors.ErrFileAlreadyExists.WithContext("path", targetPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking target path %s: %w", targetPath, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", rawURL, err)
	}

	if r.debugRequests {
		fmt.Fprintf(r.debugW, "REQUEST: %s\n", rawURL)
	}
	logger.Debug(ctx, "downloading file", "url", rawURL, "path", targetPath)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &StatusError{
			StatusCode: resp.StatusCode,
			URL:        rawURL,
			Body:       string(body),
		}
	}

	target, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", targetPath, err)
	}

	written, err := io.Copy(target, resp.Body)
	if err != nil {
		_ = target.Close()
		_ = os.Remove(targetPath)
		return fmt.Errorf("writing %s: %w", targetPath, err)
	}
	if err := target.Close(); err != nil {
		_ = os.Remove(targetPath)
		return fmt.Errorf("closing %s: %w", targetPath, err)
	}

	logger.Debug(ctx, "download complete", "path", targetPath, "size", written)
	return nil
}
