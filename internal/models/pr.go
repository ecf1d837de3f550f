package models

import "time"

type (
	// PullRequest is the slice of the GitHub pull request resource this tool
	// reads. Unknown fields are dropped on decode.
	PullRequest struct {
		Number    int        `json:"number"`
		Title     string     `json:"title"`
		State     string     `json:"state"`
		Body      string     `json:"body"`
		Draft     bool       `json:"draft"`
		HTMLURL   string     `json:"html_url"`
		CreatedAt time.Time  `json:"created_at"`
		MergedAt  *time.Time `json:"merged_at"`
		User      User       `json:"user"`
		Head      Branch     `json:"head"`
		Base      Branch     `json:"base"`
	}

	User struct {
		Login string `json:"login"`
	}

	Branch struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}
)

// Merged reports whether the PR has been merged.
func (pr *PullRequest) Merged() bool {
	return pr.MergedAt != nil
}
