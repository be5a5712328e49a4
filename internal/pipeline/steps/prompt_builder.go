package steps

import (
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/internal/prompt"
)

// PromptBuilder renders the generation request from the gathered context
type PromptBuilder struct{}

// NewPromptBuilder creates a new prompt builder step
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (s *PromptBuilder) Name() string {
	return "prompt_builder"
}

func (s *PromptBuilder) Run(ctx *core.Context) error {
	ctx.Prompt = prompt.Build(prompt.Input{
		Goal:        ctx.Config.Prompt.Goal,
		Issue:       ctx.Issue,
		PullRequest: ctx.PullRequest,
		LastRun:     ctx.LastRun,
		DiffSummary: ctx.DiffSummary,
	})
	return nil
}
