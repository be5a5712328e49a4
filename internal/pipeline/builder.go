// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package pipeline

import (
	"fmt"

	"github.com/Kavirubc/gh-agentctl/internal/config"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/steps"
)

// GitHub is the issue tracker surface the controller steps need.
// *github.Client satisfies it.
type GitHub interface {
	steps.IssueReader
	steps.RunLister
	steps.PullRequestReader
	steps.CommentWriter
	steps.Dispatcher
}

// Builder constructs a pipeline of steps.
type Builder struct {
	cfg    *config.Config
	gh     GitHub
	gen    steps.Generator
	dryRun bool
}

// NewBuilder creates a new pipeline builder
func NewBuilder(cfg *config.Config, gh GitHub, gen steps.Generator, dryRun bool) *Builder {
	return &Builder{
		cfg:    cfg,
		gh:     gh,
		gen:    gen,
		dryRun: dryRun,
	}
}

// BuildDefault creates the standard controller cycle
func (b *Builder) BuildDefault() []core.Step {
	return []core.Step{
		steps.NewIssueLoader(b.gh),
		steps.NewCommentBudget(),
		steps.NewCooldown(b.gh),
		steps.NewInFlight(b.gh),
		steps.NewPullRequestContext(b.gh),
		steps.NewPromptBuilder(),
		steps.NewPlanGenerator(b.gen),
		steps.NewResponseBuilder(),
		steps.NewActionExecutor(b.gh, b.gh, b.dryRun),
	}
}

// BuildPreview creates a read-only pipeline that stops once the prompt is
// rendered. Guards are left out so the prompt can be inspected at any time.
func (b *Builder) BuildPreview() []core.Step {
	return []core.Step{
		steps.NewIssueLoader(b.gh),
		steps.NewLastRun(b.gh),
		steps.NewPullRequestContext(b.gh),
		steps.NewPromptBuilder(),
	}
}

// guardSteps must all run before action_executor in a configured pipeline
var guardSteps = []string{"comment_budget", "cooldown", "in_flight"}

// BuildFromConfig creates a pipeline based on the order defined in config.
// If config is empty, returns default. A pipeline that writes to the issue
// must keep every guard ahead of the write.
func (b *Builder) BuildFromConfig() ([]core.Step, error) {
	if len(b.cfg.Pipeline.Steps) == 0 {
		return b.BuildDefault(), nil
	}

	if err := checkGuards(b.cfg.Pipeline.Steps); err != nil {
		return nil, err
	}

	var pipe []core.Step
	for _, name := range b.cfg.Pipeline.Steps {
		step, err := b.createStep(name)
		if err != nil {
			return nil, err
		}
		pipe = append(pipe, step)
	}
	return pipe, nil
}

func (b *Builder) createStep(name string) (core.Step, error) {
	switch name {
	case "issue_loader":
		return steps.NewIssueLoader(b.gh), nil
	case "comment_budget":
		return steps.NewCommentBudget(), nil
	case "cooldown":
		return steps.NewCooldown(b.gh), nil
	case "last_run":
		return steps.NewLastRun(b.gh), nil
	case "in_flight":
		return steps.NewInFlight(b.gh), nil
	case "pull_request_context":
		return steps.NewPullRequestContext(b.gh), nil
	case "prompt_builder":
		return steps.NewPromptBuilder(), nil
	case "plan_generator":
		return steps.NewPlanGenerator(b.gen), nil
	case "response_builder":
		return steps.NewResponseBuilder(), nil
	case "action_executor":
		return steps.NewActionExecutor(b.gh, b.gh, b.dryRun), nil
	default:
		return nil, fmt.Errorf("unknown step: %s", name)
	}
}

func checkGuards(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "action_executor" {
			for _, guard := range guardSteps {
				if !seen[guard] {
					return fmt.Errorf("step %s must run before action_executor", guard)
				}
			}
		}
		seen[name] = true
	}
	return nil
}
