package models

import "time"

// Workflow run statuses reported by GitHub Actions
const (
	RunStatusQueued     = "queued"
	RunStatusInProgress = "in_progress"
	RunStatusCompleted  = "completed"
)

// WorkflowRun is a single run of the agent workflow
type WorkflowRun struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	CreatedAt  time.Time `json:"created_at"`
	URL        string    `json:"url"`
}

// IsActive reports whether the run is still queued or executing
func (r *WorkflowRun) IsActive() bool {
	return r.Status == RunStatusInProgress || r.Status == RunStatusQueued
}
