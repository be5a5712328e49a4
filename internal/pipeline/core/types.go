// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Kavirubc/gh-agentctl/internal/config"
	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// ErrSkipPipeline indicates that the rest of the pipeline should be skipped purely for logic reasons
// (e.g. comment budget spent, cooldown active). It is not an error condition.
var ErrSkipPipeline = errors.New("skip pipeline")

// CycleResult contains the outcome of one controller cycle
type CycleResult struct {
	RunID         string `json:"run_id"`
	IssueNumber   int    `json:"issue_number"`
	IssueURL      string `json:"issue_url,omitempty"`
	CommentCount  int    `json:"comment_count"`
	Skipped       bool   `json:"skipped,omitempty"`
	SkipReason    string `json:"skip_reason,omitempty"`
	PullRequest   int    `json:"pull_request,omitempty"`
	LastRunURL    string `json:"last_run_url,omitempty"`
	Model         string `json:"model,omitempty"`
	Plan          string `json:"plan,omitempty"`
	CommentBody   string `json:"comment_body,omitempty"`
	CommentPosted bool   `json:"comment_posted,omitempty"`
	Dispatched    bool   `json:"dispatched,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty"`
}

// Context carries state through the pipeline steps.
// Steps read and write fields directly; there is no concurrency.
type Context struct {
	// Base Inputs
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	// Now is the clock used by time-based guards
	Now func() time.Time

	// Result accumulates the final output structure
	Result *CycleResult

	// Issue holds the tracked issue and its comments
	Issue *models.Issue

	// LastRun is the most recent agent workflow run, if any
	LastRun *models.WorkflowRun

	// PullRequest is the most recently updated open pull request, if any
	PullRequest *models.PullRequest

	// DiffSummary is the bounded change summary of PullRequest
	DiffSummary string

	// Prompt is the rendered generation request
	Prompt string

	// Plan is the generated instruction body
	Plan string

	// CommentBody holds the trigger comment to post
	CommentBody string

	// SkipReason is set when ErrSkipPipeline is returned to explain why
	SkipReason string
}

// Skip records reason and returns ErrSkipPipeline
func (c *Context) Skip(reason string) error {
	c.SkipReason = reason
	c.Result.Skipped = true
	c.Result.SkipReason = reason
	return ErrSkipPipeline
}

// Step defines a single unit of work in the pipeline.
type Step interface {
	// Name returns the unique identifier for this step (used in config/logs)
	Name() string
	// Run executes the step logic.
	// Returning ErrSkipPipeline gracefully stops execution.
	// Returning any other error halts execution and is treated as a failure.
	Run(ctx *Context) error
}
