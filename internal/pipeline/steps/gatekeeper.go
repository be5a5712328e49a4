// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package steps

import (
	"fmt"
	"sort"
	"time"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

const (
	// cooldownRunWindow is how many recent runs are scanned for the latest one
	cooldownRunWindow = 30
	// inFlightRunWindow is how many recent runs are scanned for active ones
	inFlightRunWindow = 10
)

// CommentBudget stops the cycle once the issue holds max_comments comments
type CommentBudget struct{}

// NewCommentBudget creates a new comment budget guard
func NewCommentBudget() *CommentBudget {
	return &CommentBudget{}
}

func (s *CommentBudget) Name() string {
	return "comment_budget"
}

func (s *CommentBudget) Run(ctx *core.Context) error {
	if ctx.Issue == nil {
		return fmt.Errorf("issue not loaded")
	}

	count := len(ctx.Issue.Comments)
	if count >= ctx.Config.Limits.MaxComments {
		return ctx.Skip(fmt.Sprintf("Max comments reached (%d).", count))
	}

	return nil
}

// Cooldown stops the cycle while the latest agent run is younger than the
// configured interval. It also records that run for the prompt.
type Cooldown struct {
	gh RunLister
}

// NewCooldown creates a new cooldown guard
func NewCooldown(gh RunLister) *Cooldown {
	return &Cooldown{gh: gh}
}

func (s *Cooldown) Name() string {
	return "cooldown"
}

func (s *Cooldown) Run(ctx *core.Context) error {
	last, err := loadLastRun(ctx, s.gh)
	if err != nil {
		return fmt.Errorf("failed to check cooldown: %w", err)
	}
	if last == nil || last.CreatedAt.IsZero() {
		return nil
	}

	interval := time.Duration(ctx.Config.Limits.CooldownMinutes) * time.Minute
	if ctx.Now().Sub(last.CreatedAt) < interval {
		return ctx.Skip("Cooldown not met.")
	}

	return nil
}

// LastRun records the latest agent run for the prompt without guarding on it
type LastRun struct {
	gh RunLister
}

// NewLastRun creates a new last run loader step
func NewLastRun(gh RunLister) *LastRun {
	return &LastRun{gh: gh}
}

func (s *LastRun) Name() string {
	return "last_run"
}

func (s *LastRun) Run(ctx *core.Context) error {
	if _, err := loadLastRun(ctx, s.gh); err != nil {
		return fmt.Errorf("failed to load last run: %w", err)
	}
	return nil
}

// loadLastRun stores the most recently created of the latest runs on ctx.
// It returns nil when the workflow has never run.
func loadLastRun(ctx *core.Context, gh RunLister) (*models.WorkflowRun, error) {
	cfg := ctx.Config

	runs, err := gh.ListWorkflowRuns(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.Workflow.File, cooldownRunWindow)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	last := runs[0]
	ctx.LastRun = &last
	ctx.Result.LastRunURL = last.URL
	return &last, nil
}

// InFlight stops the cycle while an agent run is queued or executing
type InFlight struct {
	gh RunLister
}

// NewInFlight creates a new in-flight guard
func NewInFlight(gh RunLister) *InFlight {
	return &InFlight{gh: gh}
}

func (s *InFlight) Name() string {
	return "in_flight"
}

func (s *InFlight) Run(ctx *core.Context) error {
	cfg := ctx.Config

	runs, err := s.gh.ListWorkflowRuns(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.Workflow.File, inFlightRunWindow)
	if err != nil {
		return fmt.Errorf("failed to check running workflows: %w", err)
	}

	for i := range runs {
		if runs[i].IsActive() {
			return ctx.Skip("Agent workflow in progress.")
		}
	}

	return nil
}
