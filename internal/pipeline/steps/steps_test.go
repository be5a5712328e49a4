package steps

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/internal/prompt"
	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

func TestIssueLoader(t *testing.T) {
	gh := &fakeGitHub{
		issue:    &models.Issue{Org: "acme", Repo: "widgets", Number: 2, Title: "Ship it", URL: "https://github.com/acme/widgets/issues/2"},
		comments: makeComments(5),
	}
	ctx := newTestContext(testConfig())

	if err := NewIssueLoader(gh).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Issue == nil || len(ctx.Issue.Comments) != 5 {
		t.Fatalf("Issue = %+v", ctx.Issue)
	}
	if ctx.Result.IssueNumber != 2 || ctx.Result.CommentCount != 5 || ctx.Result.IssueURL != "https://github.com/acme/widgets/issues/2" {
		t.Errorf("Result = %+v", ctx.Result)
	}
}

func TestIssueLoader_PropagatesErrors(t *testing.T) {
	ctx := newTestContext(testConfig())
	err := NewIssueLoader(&fakeGitHub{}).Run(ctx)
	if err == nil || errors.Is(err, core.ErrSkipPipeline) {
		t.Errorf("Run() error = %v, want a hard failure", err)
	}
}

func TestPullRequestContext_NoPulls(t *testing.T) {
	gh := &fakeGitHub{}
	ctx := newTestContext(testConfig())

	if err := NewPullRequestContext(gh).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.PullRequest != nil || ctx.DiffSummary != prompt.NoPullRequest {
		t.Errorf("PullRequest = %+v, DiffSummary = %q", ctx.PullRequest, ctx.DiffSummary)
	}
	if len(gh.filesFetched) != 0 {
		t.Errorf("files fetched for %v, want none", gh.filesFetched)
	}
}

func TestPullRequestContext_PicksMostRecentlyUpdated(t *testing.T) {
	gh := &fakeGitHub{
		pulls: []models.PullRequest{
			{Number: 3, Title: "old", UpdatedAt: testNow.Add(-48 * time.Hour)},
			{Number: 7, Title: "fresh", UpdatedAt: testNow.Add(-time.Hour)},
			{Number: 5, Title: "middle", UpdatedAt: testNow.Add(-24 * time.Hour)},
		},
		files: map[int][]models.ChangedFile{
			7: {{Path: "app/page.tsx", Status: "modified", Additions: 2, Deletions: 1}},
		},
	}
	ctx := newTestContext(testConfig())

	if err := NewPullRequestContext(gh).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.PullRequest == nil || ctx.PullRequest.Number != 7 {
		t.Fatalf("PullRequest = %+v, want #7", ctx.PullRequest)
	}
	if ctx.DiffSummary != "- app/page.tsx [modified] (+2/-1)" {
		t.Errorf("DiffSummary = %q", ctx.DiffSummary)
	}
	if ctx.Result.PullRequest != 7 {
		t.Errorf("Result.PullRequest = %d, want 7", ctx.Result.PullRequest)
	}
}

func TestPromptBuilder(t *testing.T) {
	cfg := testConfig()
	cfg.Prompt.Goal = "ship the widget store"
	ctx := newTestContext(cfg)
	ctx.Issue = &models.Issue{Title: "Widgets", Comments: makeComments(2)}
	ctx.LastRun = &models.WorkflowRun{URL: "https://example/runs/1", Status: "completed", Conclusion: "failure"}
	ctx.DiffSummary = prompt.NoPullRequest

	if err := NewPromptBuilder().Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"Goal: ship the widget store.", "Issue: Widgets", "status=completed conclusion=failure"} {
		if !strings.Contains(ctx.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPlanGenerator(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		err      error
		wantSkip bool
		wantErr  bool
		wantPlan string
	}{
		{name: "plan trimmed", text: "  full\n1. Fix build\n2. Deploy\n", wantPlan: "full\n1. Fix build\n2. Deploy"},
		{name: "empty plan", text: "   \n", wantSkip: true},
		{name: "generation error", err: errors.New("503"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text, err: tt.err}
			ctx := newTestContext(testConfig())
			ctx.Prompt = "prompt"

			err := NewPlanGenerator(gen).Run(ctx)
			switch {
			case tt.wantSkip:
				if !errors.Is(err, core.ErrSkipPipeline) || ctx.SkipReason != "Empty plan." {
					t.Fatalf("Run() error = %v, reason %q", err, ctx.SkipReason)
				}
			case tt.wantErr:
				if err == nil || errors.Is(err, core.ErrSkipPipeline) {
					t.Fatalf("Run() error = %v, want hard failure", err)
				}
			default:
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				if ctx.Plan != tt.wantPlan {
					t.Errorf("Plan = %q, want %q", ctx.Plan, tt.wantPlan)
				}
			}
		})
	}
}

func TestBuildComment(t *testing.T) {
	tests := []struct {
		name      string
		plan      string
		dashboard string
		want      string
	}{
		{
			name: "marker and plan",
			plan: "full\n1. Fix build\n2. Deploy",
			want: "/agent full\n1. Fix build\n2. Deploy",
		},
		{
			name:      "dashboard trailer",
			plan:      "full\n1. Fix build",
			dashboard: "https://github.com/acme/widgets/actions",
			want:      "/agent full\n1. Fix build\n\n---\n<sub>🤖 Posted by gh-agentctl · [agent runs](https://github.com/acme/widgets/actions)</sub>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildComment(tt.plan, tt.dashboard)
			if got != tt.want {
				t.Errorf("BuildComment() = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(got, TriggerMarker+" ") {
				t.Errorf("comment must start with %q", TriggerMarker+" ")
			}
		})
	}
}

func TestActionExecutor(t *testing.T) {
	tests := []struct {
		name           string
		dryRun         bool
		postErr        error
		dispatchErr    error
		wantErr        bool
		wantPosted     bool
		wantDispatched bool
	}{
		{name: "posts and dispatches", wantPosted: true, wantDispatched: true},
		{name: "dispatch failure is swallowed", dispatchErr: errors.New("422"), wantPosted: true},
		{name: "post failure propagates", postErr: errors.New("403"), wantErr: true},
		{name: "dry run writes nothing", dryRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := &fakeGitHub{postErr: tt.postErr, dispatchErr: tt.dispatchErr}
			ctx := newTestContext(testConfig())
			ctx.CommentBody = "/agent full"

			err := NewActionExecutor(gh, gh, tt.dryRun).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ctx.Result.CommentPosted != tt.wantPosted || ctx.Result.Dispatched != tt.wantDispatched {
				t.Errorf("Result = %+v", ctx.Result)
			}
			if tt.wantPosted && (len(gh.posted) != 1 || gh.posted[0] != "/agent full") {
				t.Errorf("posted = %v", gh.posted)
			}
			if tt.wantDispatched && (len(gh.dispatchedRef) != 1 || gh.dispatchedRef[0] != "main") {
				t.Errorf("dispatched refs = %v, want [main]", gh.dispatchedRef)
			}
			if tt.dryRun && (len(gh.posted) != 0 || len(gh.dispatchedRef) != 0 || !ctx.Result.DryRun) {
				t.Errorf("dry run wrote: posted %v dispatched %v", gh.posted, gh.dispatchedRef)
			}
		})
	}
}
