package steps

import (
	"context"

	"github.com/Kavirubc/gh-agentctl/internal/llm"
	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// IssueReader defines the subset of github.Client needed to load the issue
type IssueReader interface {
	GetIssue(ctx context.Context, org, repo string, number int) (*models.Issue, error)
	ListComments(ctx context.Context, org, repo string, number int) ([]models.Comment, error)
}

// RunLister defines the subset of github.Client needed by the run guards
type RunLister interface {
	ListWorkflowRuns(ctx context.Context, org, repo, workflowFile string, perPage int) ([]models.WorkflowRun, error)
}

// PullRequestReader defines the subset of github.Client needed for PR context
type PullRequestReader interface {
	ListOpenPullRequests(ctx context.Context, org, repo string, perPage int) ([]models.PullRequest, error)
	ListPullRequestFiles(ctx context.Context, org, repo string, number, perPage int) ([]models.ChangedFile, error)
}

// CommentWriter defines the subset of github.Client needed to post the trigger
type CommentWriter interface {
	PostComment(ctx context.Context, org, repo string, number int, body string) error
}

// Dispatcher defines the subset of github.Client needed to start the workflow
type Dispatcher interface {
	DispatchWorkflow(ctx context.Context, org, repo, workflowFile, ref string) error
}

// Generator produces a plan for a prompt, reporting the model that answered
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (*llm.Completion, error)
}
