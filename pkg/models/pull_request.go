package models

import "time"

// PullRequest is an open pull request together with its changed files
type PullRequest struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	URL       string        `json:"url"`
	UpdatedAt time.Time     `json:"updated_at"`
	Files     []ChangedFile `json:"files,omitempty"`
}

// ChangedFile describes one file touched by a pull request
type ChangedFile struct {
	Path      string `json:"path"`
	Status    string `json:"status"` // "added", "modified", "removed", "renamed", ...
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch,omitempty"`
}
