package steps

import (
	"github.com/Kavirubc/gh-agentctl/internal/pipeline/core"
)

// IssueLoader fetches the tracked issue and its comments
type IssueLoader struct {
	gh IssueReader
}

// NewIssueLoader creates a new issue loader step
func NewIssueLoader(gh IssueReader) *IssueLoader {
	return &IssueLoader{gh: gh}
}

func (s *IssueLoader) Name() string {
	return "issue_loader"
}

func (s *IssueLoader) Run(ctx *core.Context) error {
	cfg := ctx.Config

	issue, err := s.gh.GetIssue(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.IssueNumber)
	if err != nil {
		return err
	}

	comments, err := s.gh.ListComments(ctx.Ctx, cfg.Owner(), cfg.Repo(), cfg.IssueNumber)
	if err != nil {
		return err
	}
	issue.Comments = comments

	ctx.Issue = issue
	ctx.Result.IssueNumber = issue.Number
	ctx.Result.IssueURL = issue.URL
	ctx.Result.CommentCount = len(comments)

	ctx.Logger.Debug("Loaded issue", "repo", issue.FullRepo(), "issue", issue.Number, "comments", len(comments), "state", issue.State)
	return nil
}
