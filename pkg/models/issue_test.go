package models

import (
	"testing"
)

func TestIssue_FullRepo(t *testing.T) {
	issue := &Issue{
		Org:  "myorg",
		Repo: "myrepo",
	}

	if issue.FullRepo() != "myorg/myrepo" {
		t.Errorf("FullRepo() = %v, want myorg/myrepo", issue.FullRepo())
	}
}

func TestIssue_LastComments(t *testing.T) {
	comments := make([]Comment, 10)
	for i := range comments {
		comments[i] = Comment{ID: int64(i + 1)}
	}

	tests := []struct {
		name      string
		comments  []Comment
		n         int
		wantLen   int
		wantFirst int64
	}{
		{name: "fewer than n", comments: comments[:3], n: 6, wantLen: 3, wantFirst: 1},
		{name: "exactly n", comments: comments[:6], n: 6, wantLen: 6, wantFirst: 1},
		{name: "more than n keeps tail", comments: comments, n: 6, wantLen: 6, wantFirst: 5},
		{name: "zero n", comments: comments, n: 0, wantLen: 0},
		{name: "no comments", comments: nil, n: 6, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &Issue{Comments: tt.comments}
			got := issue.LastComments(tt.n)
			if len(got) != tt.wantLen {
				t.Fatalf("len(LastComments(%d)) = %d, want %d", tt.n, len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantFirst {
				t.Errorf("first comment ID = %d, want %d", got[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestWorkflowRun_IsActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{RunStatusQueued, true},
		{RunStatusInProgress, true},
		{RunStatusCompleted, false},
		{"waiting", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			run := &WorkflowRun{Status: tt.status}
			if got := run.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
