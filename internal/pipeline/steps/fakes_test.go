package steps

import (
	"context"
	"errors"
	"time"

	"github.com/Kavirubc/gh-agentctl/internal/config"
	"github.com/Kavirubc/gh-agentctl/internal/llm"
	"github.com/Kavirubc/gh-agentctl/internal/logging"
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// fakeGitHub records calls and serves canned data
type fakeGitHub struct {
	issue       *models.Issue
	comments    []models.Comment
	runs        []models.WorkflowRun
	pulls       []models.PullRequest
	files       map[int][]models.ChangedFile
	postErr     error
	dispatchErr error

	runPages      []int
	filesFetched  []int
	posted        []string
	dispatchedRef []string
}

func (f *fakeGitHub) GetIssue(ctx context.Context, org, repo string, number int) (*models.Issue, error) {
	if f.issue == nil {
		return nil, errors.New("issue not found")
	}
	issue := *f.issue
	return &issue, nil
}

func (f *fakeGitHub) ListComments(ctx context.Context, org, repo string, number int) ([]models.Comment, error) {
	return f.comments, nil
}

func (f *fakeGitHub) ListWorkflowRuns(ctx context.Context, org, repo, workflowFile string, perPage int) ([]models.WorkflowRun, error) {
	f.runPages = append(f.runPages, perPage)
	runs := f.runs
	if len(runs) > perPage {
		runs = runs[:perPage]
	}
	return append([]models.WorkflowRun(nil), runs...), nil
}

func (f *fakeGitHub) ListOpenPullRequests(ctx context.Context, org, repo string, perPage int) ([]models.PullRequest, error) {
	return append([]models.PullRequest(nil), f.pulls...), nil
}

func (f *fakeGitHub) ListPullRequestFiles(ctx context.Context, org, repo string, number, perPage int) ([]models.ChangedFile, error) {
	f.filesFetched = append(f.filesFetched, number)
	return f.files[number], nil
}

func (f *fakeGitHub) PostComment(ctx context.Context, org, repo string, number int, body string) error {
	if f.postErr != nil {
		return f.postErr
	}
	f.posted = append(f.posted, body)
	return nil
}

func (f *fakeGitHub) DispatchWorkflow(ctx context.Context, org, repo, workflowFile, ref string) error {
	if f.dispatchErr != nil {
		return f.dispatchErr
	}
	f.dispatchedRef = append(f.dispatchedRef, ref)
	return nil
}

// fakeGenerator returns a fixed completion
type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(ctx context.Context, model, prompt string) (*llm.Completion, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return nil, g.err
	}
	return &llm.Completion{Text: g.text, Model: model}, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Repository = "acme/widgets"
	cfg.GitHub.Token = "ghp_test"
	cfg.LLM.APIKey = "sk-test"
	return cfg
}

func newTestContext(cfg *config.Config) *core.Context {
	return &core.Context{
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logging.Discard(),
		Now:    func() time.Time { return testNow },
		Result: &core.CycleResult{},
	}
}

func makeComments(n int) []models.Comment {
	comments := make([]models.Comment, n)
	for i := range comments {
		comments[i] = models.Comment{ID: int64(i + 1), Author: "dev", Body: "note"}
	}
	return comments
}
