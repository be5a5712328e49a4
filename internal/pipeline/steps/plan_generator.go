package steps

import (
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
)

// PlanGenerator asks the text-generation service for the next instruction
type PlanGenerator struct {
	gen Generator
}

// NewPlanGenerator creates a new plan generator step
func NewPlanGenerator(gen Generator) *PlanGenerator {
	return &PlanGenerator{gen: gen}
}

func (s *PlanGenerator) Name() string {
	return "plan_generator"
}

func (s *PlanGenerator) Run(ctx *core.Context) error {
	if ctx.Prompt == "" {
		return fmt.Errorf("prompt not built")
	}

	completion, err := s.gen.Generate(ctx.Ctx, ctx.Config.LLM.Model, ctx.Prompt)
	if err != nil {
		return err
	}

	plan := strings.TrimSpace(completion.Text)
	ctx.Result.Model = completion.Model
	if plan == "" {
		return ctx.Skip("Empty plan.")
	}

	ctx.Plan = plan
	ctx.Result.Plan = plan
	return nil
}
