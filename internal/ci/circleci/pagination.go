package circleci

import (
	"context"
	"fmt"
	"iter"

	"github.com/thomas-vilte/mateci/internal/logger"
)

// pageTokenParam is the continuation-token key reserved for the pagination
// loop. Caller-supplied params must not define it.
const pageTokenParam = "page-token"

// page is the envelope every CircleCI list endpoint responds with.
type page[T any] struct {
	Items         []T     `json:"items"`
	NextPageToken *string `json:"next_page_token"`
}

// pages returns a lazy sequence of result pages for a list endpoint. Each
// request gets a fresh copy of params with the continuation token merged in;
// the caller's map is never touched. The sequence ends when the API stops
// returning a token or maxPages is reached, whichever comes first. Hitting
// the cap is not an error.
//
// Supplying params that already contain the token key is a caller bug and
// panics before any request is sent.
func pages[T any](ctx context.Context, c *Client, url string, params map[string]string, maxPages int) iter.Seq2[[]T, error] {
	if _, ok := params[pageTokenParam]; ok {
		panic(fmt.Sprintf("circleci: params must not contain the reserved %q key", pageTokenParam))
	}

	return func(yield func([]T, error) bool) {
		token := ""
		for pageCount := 0; maxPages == Unlimited || pageCount < maxPages; pageCount++ {
			reqParams := make(map[string]string, len(params)+1)
			for key, value := range params {
				reqParams[key] = value
			}
			if token != "" {
				reqParams[pageTokenParam] = token
			}

			var pg page[T]
			if err := c.req.QueryInto(ctx, url, reqParams, &pg); err != nil {
				yield(nil, err)
				return
			}

			if !yield(pg.Items, nil) {
				return
			}

			if pg.NextPageToken == nil || *pg.NextPageToken == "" {
				return
			}
			token = *pg.NextPageToken
		}

		logger.Debug(ctx, "pagination stopped at page cap", "url", url, "pages", maxPages)
	}
}

// PaginatedQuery materializes pages into one flat slice, preserving page
// order and within-page order. It panics if params already define the
// reserved "page-token" key.
func PaginatedQuery[T any](ctx context.Context, c *Client, url string, params map[string]string, maxPages int) ([]T, error) {
	var all []T
	for items, err := range pages[T](ctx, c, url, params, maxPages) {
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}
