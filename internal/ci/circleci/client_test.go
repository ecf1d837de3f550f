package circleci

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/mateci/internal/api"
)

// newPagedServer serves a token-keyed page sequence: the response for the ""
// key is the first page, and each page's next_page_token selects the next.
func newPagedServer(t *testing.T, pages map[string]string, requests *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		token := r.URL.Query().Get("page-token")
		body, ok := pages[token]
		if !ok {
			t.Errorf("unexpected page token %q", token)
			http.Error(w, "unknown token", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func threeWorkflowPages() map[string]string {
	return map[string]string{
		"": `{"items": [
			{"id": "w1", "name": "build", "status": "success", "created_at": "2020-01-01T00:00:00Z"},
			{"id": "w2", "name": "lint", "status": "success", "created_at": "2020-01-02T00:00:00Z"}
		], "next_page_token": "A"}`,
		"A": `{"items": [
			{"id": "w3", "name": "test", "status": "failed", "created_at": "2020-01-03T00:00:00Z"},
			{"id": "w4", "name": "docs", "status": "success", "created_at": "2020-01-04T00:00:00Z"}
		], "next_page_token": "B"}`,
		"B": `{"items": [
			{"id": "w5", "name": "deploy", "status": "on_hold", "created_at": "2020-01-05T00:00:00Z"}
		], "next_page_token": null}`,
	}
}

func workflowIDs(workflows []Workflow) []string {
	ids := make([]string, len(workflows))
	for i, w := range workflows {
		ids[i] = w.ID
	}
	return ids
}

func TestClient_Workflows(t *testing.T) {
	t.Run("should follow tokens until exhaustion and concatenate in order", func(t *testing.T) {
		var requests atomic.Int32
		server := newPagedServer(t, threeWorkflowPages(), &requests)
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		workflows, err := client.Workflows(context.Background(), "pipe-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"w1", "w2", "w3", "w4", "w5"}, workflowIDs(workflows))
		assert.Equal(t, int32(3), requests.Load())
	})

	t.Run("should stop silently at the page cap", func(t *testing.T) {
		var requests atomic.Int32
		server := newPagedServer(t, threeWorkflowPages(), &requests)
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL), WithMaxPages(2))
		workflows, err := client.Workflows(context.Background(), "pipe-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"w1", "w2", "w3", "w4"}, workflowIDs(workflows))
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("should page without limit when unlimited", func(t *testing.T) {
		var requests atomic.Int32
		pages := make(map[string]string)
		pages[""] = `{"items": [{"id": "w0"}], "next_page_token": "t1"}`
		for i := 1; i < 25; i++ {
			next := fmt.Sprintf(`"t%d"`, i+1)
			if i == 24 {
				next = "null"
			}
			pages[fmt.Sprintf("t%d", i)] = fmt.Sprintf(
				`{"items": [{"id": "w%d"}], "next_page_token": %s}`, i, next)
		}
		server := newPagedServer(t, pages, &requests)
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL), WithMaxPages(Unlimited))
		workflows, err := client.Workflows(context.Background(), "pipe-1")

		require.NoError(t, err)
		assert.Len(t, workflows, 25)
		assert.Equal(t, int32(25), requests.Load())
	})

	t.Run("should fail the whole query when a page fetch fails", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			if r.URL.Query().Get("page-token") == "" {
				_, _ = w.Write([]byte(`{"items": [{"id": "w1"}], "next_page_token": "A"}`))
				return
			}
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		workflows, err := client.Workflows(context.Background(), "pipe-1")

		require.Error(t, err)
		assert.Nil(t, workflows)

		var statusErr *api.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Equal(t, int32(2), requests.Load())
	})
}

func TestClient_Pipelines(t *testing.T) {
	t.Run("should fetch exactly one page even when more exist", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			assert.Equal(t, "/project/gh/owner/repo/pipeline", r.URL.Path)
			_, _ = w.Write([]byte(`{"items": [
				{"id": "p1", "number": 10, "state": "created", "created_at": "2020-01-01T00:00:00Z", "vcs": {"branch": "main"}}
			], "next_page_token": "more"}`))
		}))
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		pipelines, err := client.Pipelines(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, pipelines, 1)
		assert.Equal(t, "p1", pipelines[0].ID)
		assert.Equal(t, 10, pipelines[0].Number)
		assert.Equal(t, "main", pipelines[0].VCS.Branch)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("should pass the branch filter only when given", func(t *testing.T) {
		var lastQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"items": [], "next_page_token": null}`))
		}))
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))

		_, err := client.Pipelines(context.Background(), "develop")
		require.NoError(t, err)
		assert.Equal(t, "branch=develop", lastQuery)

		_, err = client.Pipelines(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, lastQuery)
	})
}

func TestClient_JobsAndArtifacts(t *testing.T) {
	t.Run("should hit the workflow job endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/workflow/wf-9/job", r.URL.Path)
			_, _ = w.Write([]byte(`{"items": [
				{"id": "j1", "job_number": 101, "name": "unit-tests", "status": "success", "created_at": "2020-01-01T00:00:00Z"}
			], "next_page_token": null}`))
		}))
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		jobs, err := client.Jobs(context.Background(), "wf-9")

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, 101, jobs[0].JobNumber)
		assert.Equal(t, "unit-tests", jobs[0].Name)
	})

	t.Run("should hit the job artifacts endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/project/gh/owner/repo/101/artifacts", r.URL.Path)
			_, _ = w.Write([]byte(`{"items": [
				{"path": "coverage/index.html", "node_index": 0, "url": "https://example.com/coverage"}
			], "next_page_token": null}`))
		}))
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		artifacts, err := client.Artifacts(context.Background(), 101)

		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.Equal(t, "coverage/index.html", artifacts[0].Path)
		assert.Equal(t, "https://example.com/coverage", artifacts[0].URL)
	})
}

func TestPagination(t *testing.T) {
	t.Run("should panic when params already contain the token key", func(t *testing.T) {
		var requests atomic.Int32
		server := newPagedServer(t, threeWorkflowPages(), &requests)
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		params := map[string]string{"page-token": "stale"}

		assert.Panics(t, func() {
			_, _ = PaginatedQuery[Workflow](context.Background(), client, server.URL, params, DefaultMaxPages)
		})
		assert.Equal(t, int32(0), requests.Load(), "no request must be sent")
	})

	t.Run("should never mutate the caller's params", func(t *testing.T) {
		var requests atomic.Int32
		server := newPagedServer(t, threeWorkflowPages(), &requests)
		defer server.Close()

		client := NewClient("owner/repo", WithBaseURL(server.URL))
		params := map[string]string{"branch": "main"}

		_, err := PaginatedQuery[Workflow](context.Background(), client, server.URL, params, DefaultMaxPages)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"branch": "main"}, params)
	})
}
