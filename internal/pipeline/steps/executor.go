// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package steps

import (
	"fmt"

	"github.com/Kavirubc/gh-agentctl/internal/github"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
)

// ActionExecutor posts the trigger comment and then dispatches the agent
// workflow. Dispatch is best-effort: the comment alone can start the workflow.
type ActionExecutor struct {
	comments   CommentWriter
	dispatcher Dispatcher
	dryRun     bool
}

// NewActionExecutor creates a new action executor step
func NewActionExecutor(comments CommentWriter, dispatcher Dispatcher, dryRun bool) *ActionExecutor {
	return &ActionExecutor{
		comments:   comments,
		dispatcher: dispatcher,
		dryRun:     dryRun,
	}
}

func (s *ActionExecutor) Name() string {
	return "action_executor"
}

func (s *ActionExecutor) Run(ctx *core.Context) error {
	if ctx.CommentBody == "" {
		return fmt.Errorf("comment body not built")
	}

	cfg := ctx.Config
	if s.dryRun {
		ctx.Result.DryRun = true
		ctx.Logger.Info("Dry run, skipping comment and dispatch",
			"issue", cfg.IssueNumber, "workflow", cfg.Workflow.File)
		return nil
	}

	// 1. Post Comment
	if err := s.comments.PostComment(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.IssueNumber, ctx.CommentBody); err != nil {
		return err
	}
	ctx.Result.CommentPosted = true
	ctx.Logger.Info("Posted agent instruction", "issue", cfg.IssueNumber, "model", ctx.Result.Model)

	// 2. Dispatch Workflow
	if err := s.dispatcher.DispatchWorkflow(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.Workflow.File, cfg.Workflow.Ref); err != nil {
		ctx.Logger.Warn("Dispatch failed (may be OK)",
			"workflow", cfg.Workflow.File, "status", github.StatusCode(err), "error", err)
		return nil
	}
	ctx.Result.Dispatched = true
	ctx.Logger.Info("Dispatched agent workflow", "workflow", cfg.Workflow.File, "ref", cfg.Workflow.Ref)

	return nil
}
