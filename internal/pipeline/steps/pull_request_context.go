package steps

import (
	"fmt"
	"sort"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
	"github.com/Kavirubc/gh-agentctl/internal/prompt"
)

const (
	openPullsPerPage = 50
	pullFilesPerPage = 100
)

// PullRequestContext selects the most recently updated open pull request and
// summarises its changes.
type PullRequestContext struct {
	gh PullRequestReader
}

// NewPullRequestContext creates a new pull request context step
func NewPullRequestContext(gh PullRequestReader) *PullRequestContext {
	return &PullRequestContext{gh: gh}
}

func (s *PullRequestContext) Name() string {
	return "pull_request_context"
}

func (s *PullRequestContext) Run(ctx *core.Context) error {
	cfg := ctx.Config

	pulls, err := s.gh.ListOpenPullRequests(ctx.Ctx, cfg.Owner(), cfg.Repo(), openPullsPerPage)
	if err != nil {
		return err
	}

	if len(pulls) == 0 {
		ctx.DiffSummary = prompt.NoPullRequest
		return nil
	}

	sort.SliceStable(pulls, func(i, j int) bool {
		return pulls[i].UpdatedAt.After(pulls[j].UpdatedAt)
	})
	pr := pulls[0]

	files, err := s.gh.ListPullRequestFiles(ctx.Ctx, cfg.Owner(), cfg.Repo(), pr.Number, pullFilesPerPage)
	if err != nil {
		return fmt.Errorf("failed to load files of #%d: %w", pr.Number, err)
	}
	pr.Files = files

	ctx.PullRequest = &pr
	ctx.DiffSummary = prompt.SummarizeDiff(files)
	ctx.Result.PullRequest = pr.Number

	ctx.Logger.Debug("Selected pull request", "number", pr.Number, "files", len(files))
	return nil
}
