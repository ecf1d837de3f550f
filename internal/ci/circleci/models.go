package circleci

import "time"

type (
	// Pipeline is one element of /project/gh/{slug}/pipeline.
	Pipeline struct {
		ID        string    `json:"id"`
		Number    int       `json:"number"`
		State     string    `json:"state"`
		CreatedAt time.Time `json:"created_at"`
		VCS       VCSInfo   `json:"vcs"`
	}

	VCSInfo struct {
		Branch   string `json:"branch"`
		Revision string `json:"revision"`
	}

	// Workflow is one element of /pipeline/{id}/workflow.
	Workflow struct {
		ID             string    `json:"id"`
		PipelineID     string    `json:"pipeline_id"`
		PipelineNumber int       `json:"pipeline_number"`
		Name           string    `json:"name"`
		Status         string    `json:"status"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// Job is one element of /workflow/{id}/job.
	Job struct {
		ID        string    `json:"id"`
		JobNumber int       `json:"job_number"`
		Name      string    `json:"name"`
		Status    string    `json:"status"`
		Type      string    `json:"type"`
		CreatedAt time.Time `json:"created_at"`
	}

	// Artifact is one element of /project/gh/{slug}/{job}/artifacts.
	Artifact struct {
		Path      string `json:"path"`
		NodeIndex int    `json:"node_index"`
		URL       string `json:"url"`
	}
)

func (p Pipeline) CreatedTime() time.Time { return p.CreatedAt }
func (w Workflow) CreatedTime() time.Time { return w.CreatedAt }
func (j Job) CreatedTime() time.Time      { return j.CreatedAt }

// Timestamped is implemented by every listed resource carrying a creation
// time, which is the only field the selection helpers look at.
type Timestamped interface {
	CreatedTime() time.Time
}

// Latest returns the most-recently-created item, or false for an empty list.
func Latest[T Timestamped](items []T) (T, bool) {
	var latest T
	if len(items) == 0 {
		return latest, false
	}
	latest = items[0]
	for _, item := range items[1:] {
		if item.CreatedTime().After(latest.CreatedTime()) {
			latest = item
		}
	}
	return latest, true
}

// Earliest returns the oldest item, or false for an empty list.
func Earliest[T Timestamped](items []T) (T, bool) {
	var earliest T
	if len(items) == 0 {
		return earliest, false
	}
	earliest = items[0]
	for _, item := range items[1:] {
		if item.CreatedTime().Before(earliest.CreatedTime()) {
			earliest = item
		}
	}
	return earliest, true
}
