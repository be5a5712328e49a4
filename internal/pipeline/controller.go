// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kavirubc/gh-agentctl/internal/config"
	"github.com/Kavirubc/gh-agentctl/internal/github"
	"github.com/Kavirubc/gh-agentctl/internal/llm"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/steps"
)

// Controller runs one agent controller cycle against the configured issue
type Controller struct {
	cfg     *config.Config
	logger  *slog.Logger
	builder *Builder
	closers []io.Closer
	now     func() time.Time

	// pipeline is the sequence of steps executed by Run
	pipeline []core.Step
}

// NewController creates a controller backed by the GitHub REST API and the
// configured text-generation provider.
func NewController(cfg *config.Config, logger *slog.Logger, dryRun bool) (*Controller, error) {
	if _, _, err := github.ParseRepo(cfg.Repository); err != nil {
		return nil, err
	}

	gh, err := github.NewClient(cfg.GitHub.Host, cfg.GitHub.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	provider, err := llm.NewProvider(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	gen := llm.NewFallbackProvider(provider, cfg.LLM.FallbackModel, logger)
	c := newController(cfg, logger, gh, gen, dryRun)
	c.closers = []io.Closer{gen, gh}
	return c, nil
}

func newController(cfg *config.Config, logger *slog.Logger, gh GitHub, gen steps.Generator, dryRun bool) *Controller {
	if logger == nil {
		logger = slog.Default()
	}

	builder := NewBuilder(cfg, gh, gen, dryRun)
	pipe, err := builder.BuildFromConfig()
	if err != nil {
		// Log warning and fallback to default if config invalid
		logger.Warn("Invalid pipeline configuration, using default pipeline", "error", err)
		pipe = builder.BuildDefault()
	}

	return &Controller{
		cfg:      cfg,
		logger:   logger,
		builder:  builder,
		now:      time.Now,
		pipeline: pipe,
	}
}

// Close releases all resources
func (c *Controller) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run executes the controller cycle once. A guard that stops the cycle is
// reported through the result, not as an error.
func (c *Controller) Run(ctx context.Context) (*core.CycleResult, error) {
	pCtx := c.newContext(ctx)
	pCtx.Logger.Info("Starting controller cycle",
		"repo", c.cfg.Repository, "issue", c.cfg.IssueNumber, "steps", len(c.pipeline))

	if err := c.execute(pCtx, c.pipeline); err != nil {
		return nil, err
	}

	if pCtx.Result.Skipped {
		pCtx.Logger.Info(pCtx.Result.SkipReason)
	}
	return pCtx.Result, nil
}

// Preview gathers the cycle context and returns the prompt that Run would
// send, without generating or writing anything.
func (c *Controller) Preview(ctx context.Context) (string, error) {
	pCtx := c.newContext(ctx)
	if err := c.execute(pCtx, c.builder.BuildPreview()); err != nil {
		return "", err
	}
	return pCtx.Prompt, nil
}

func (c *Controller) newContext(ctx context.Context) *core.Context {
	runID := uuid.NewString()
	return &core.Context{
		Ctx:    ctx,
		Config: c.cfg,
		Logger: c.logger.With("run_id", runID),
		Now:    c.now,
		Result: &core.CycleResult{RunID: runID, IssueNumber: c.cfg.IssueNumber},
	}
}

func (c *Controller) execute(pCtx *core.Context, pipe []core.Step) error {
	for _, step := range pipe {
		pCtx.Logger.Debug("Running step", "step", step.Name())
		if err := step.Run(pCtx); err != nil {
			if errors.Is(err, core.ErrSkipPipeline) {
				// Pipeline stopped gracefully (e.g. cooldown, comment budget)
				break
			}
			return fmt.Errorf("step %s failed: %w", step.Name(), err)
		}
	}
	return nil
}

// PrintResult writes a human-readable summary of a cycle
func PrintResult(w io.Writer, result *core.CycleResult) {
	fmt.Fprintf(w, "\n=== Issue #%d ===\n", result.IssueNumber)
	if result.IssueURL != "" {
		fmt.Fprintf(w, "URL: %s\n", result.IssueURL)
	}
	fmt.Fprintf(w, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(w, "Comments: %d\n", result.CommentCount)

	if result.Skipped {
		fmt.Fprintf(w, "Skipped: %s\n", result.SkipReason)
		return
	}

	if result.PullRequest > 0 {
		fmt.Fprintf(w, "Pull request: #%d\n", result.PullRequest)
	}
	if result.LastRunURL != "" {
		fmt.Fprintf(w, "Last agent run: %s\n", result.LastRunURL)
	}
	if result.Model != "" {
		fmt.Fprintf(w, "Model: %s\n", result.Model)
	}
	if result.Plan != "" {
		fmt.Fprintf(w, "\nPlan:\n%s\n", indent(result.Plan, "  "))
	}

	switch {
	case result.DryRun:
		fmt.Fprintln(w, "\n[DRY RUN] No comment posted, no workflow dispatched")
	case result.CommentPosted:
		fmt.Fprintln(w, "\nComment posted")
		if result.Dispatched {
			fmt.Fprintln(w, "Workflow dispatched")
		} else {
			fmt.Fprintln(w, "Workflow dispatch failed (comment trigger still applies)")
		}
	}
}

// PrintJSON writes the cycle result as indented JSON
func PrintJSON(w io.Writer, result *core.CycleResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
