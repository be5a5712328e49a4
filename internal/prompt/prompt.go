// Package prompt renders the instruction request sent to the text-generation
// service.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

const (
	// RecentComments is how many trailing comments are quoted
	RecentComments = 6
	// MaxCommentChars bounds each quoted comment body
	MaxCommentChars = 4000
	// PlanMode is the token the generated instruction must start with
	PlanMode = "full"
	// MaxPlanSteps caps the numbered plan
	MaxPlanSteps = 8
	// DefaultGoal is used when no goal is configured
	DefaultGoal = "drive this issue to completion end-to-end (fix the build, deploy, then the core features)"
)

// Input gathers everything the prompt embeds
type Input struct {
	Goal        string
	Issue       *models.Issue
	PullRequest *models.PullRequest
	LastRun     *models.WorkflowRun
	DiffSummary string
}

// Build renders the fixed instruction template
func Build(in Input) string {
	goal := strings.TrimSpace(in.Goal)
	if goal == "" {
		goal = DefaultGoal
	}

	var title, body string
	var comments []models.Comment
	if in.Issue != nil {
		title = in.Issue.Title
		body = in.Issue.Body
		comments = in.Issue.LastComments(RecentComments)
	}

	diff := in.DiffSummary
	if diff == "" {
		diff = NoPullRequest
	}

	var sb strings.Builder
	sb.WriteString("You are an autonomous controller that drives a GitHub repo forward by posting a single actionable /agent instruction as an issue comment.\n\n")
	sb.WriteString(fmt.Sprintf("Goal: %s. Use the issue + latest PR diff as state.\n\n", goal))
	sb.WriteString("Rules:\n")
	sb.WriteString("- Output ONLY the instruction body (plain text), no commentary.\n")
	sb.WriteString(fmt.Sprintf("- The instruction must start with: %s\n", PlanMode))
	sb.WriteString(fmt.Sprintf("- Then a numbered plan (max %d steps).\n", MaxPlanSteps))
	sb.WriteString("- Include exact file paths to edit/create.\n")
	sb.WriteString("- If there is an open PR, focus on finishing/adjusting that PR (or the next small PR).\n")
	sb.WriteString("- Prefer small, mergeable changes that unblock build/deploy first.\n\n")

	sb.WriteString(fmt.Sprintf("Issue: %s\n", title))
	sb.WriteString("Issue body:\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")

	sb.WriteString("Recent issue conversation:\n")
	sb.WriteString(formatConversation(comments))
	sb.WriteString("\n\n")

	if pr := in.PullRequest; pr != nil {
		sb.WriteString(fmt.Sprintf("OPEN PR: #%d %s\nURL: %s\n", pr.Number, pr.Title, pr.URL))
	}
	sb.WriteString("\n")
	if run := in.LastRun; run != nil {
		sb.WriteString(fmt.Sprintf("Last agent run: %s status=%s conclusion=%s\n", run.URL, run.Status, run.Conclusion))
	}
	sb.WriteString("\n\n")

	sb.WriteString("PR diff context:\n")
	sb.WriteString(diff)

	return strings.TrimSpace(sb.String())
}

func formatConversation(comments []models.Comment) string {
	convo := make([]string, 0, len(comments))
	for _, c := range comments {
		convo = append(convo, fmt.Sprintf("[%s]\n%s\n", c.Author, Truncate(c.Body, MaxCommentChars)))
	}
	return strings.TrimSpace(strings.Join(convo, "\n"))
}

// Truncate cuts s to at most maxChars characters without splitting a rune
func Truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
