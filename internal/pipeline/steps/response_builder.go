// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-01-28
// Last Modified: 2026-10-17

package steps

import (
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
)

// TriggerMarker makes the agent workflow act on a comment
const TriggerMarker = "/agent"

// ResponseBuilder constructs the trigger comment body from the plan.
type ResponseBuilder struct{}

// NewResponseBuilder creates a new response builder step
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

func (s *ResponseBuilder) Name() string {
	return "response_builder"
}

func (s *ResponseBuilder) Run(ctx *core.Context) error {
	if ctx.Plan == "" {
		return fmt.Errorf("plan not generated")
	}
	ctx.CommentBody = BuildComment(ctx.Plan, ctx.Config.Workflow.DashboardURL)
	ctx.Result.CommentBody = ctx.CommentBody
	return nil
}

// BuildComment returns the trigger marker, a space and the plan, followed by a
// dashboard link when one is configured.
func BuildComment(plan, dashboardURL string) string {
	var sb strings.Builder
	sb.WriteString(TriggerMarker)
	sb.WriteString(" ")
	sb.WriteString(plan)

	if dashboardURL != "" {
		sb.WriteString(fmt.Sprintf("\n\n---\n<sub>🤖 Posted by gh-agentctl · [agent runs](%s)</sub>", dashboardURL))
	}

	return sb.String()
}
