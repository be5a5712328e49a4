package github

import (
	"context"
	"fmt"
	"time"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// PullRequest represents a pull request from the API
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PullRequestFile represents one entry of the pull request files listing
type PullRequestFile struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch"`
}

// ListOpenPullRequests fetches up to perPage open pull requests
func (c *Client) ListOpenPullRequests(ctx context.Context, org, repo string, perPage int) ([]models.PullRequest, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/pulls?state=open&per_page=%d", org, repo, perPage)

	var apiPulls []PullRequest
	if err := c.get(ctx, endpoint, &apiPulls); err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	pulls := make([]models.PullRequest, 0, len(apiPulls))
	for _, p := range apiPulls {
		pulls = append(pulls, models.PullRequest{
			Number:    p.Number,
			Title:     p.Title,
			URL:       p.HTMLURL,
			UpdatedAt: p.UpdatedAt,
		})
	}

	return pulls, nil
}

// ListPullRequestFiles fetches up to perPage changed files of a pull request
func (c *Client) ListPullRequestFiles(ctx context.Context, org, repo string, number, perPage int) ([]models.ChangedFile, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/pulls/%d/files?per_page=%d", org, repo, number, perPage)

	var apiFiles []PullRequestFile
	if err := c.get(ctx, endpoint, &apiFiles); err != nil {
		return nil, fmt.Errorf("failed to list pull request files: %w", err)
	}

	files := make([]models.ChangedFile, 0, len(apiFiles))
	for _, f := range apiFiles {
		files = append(files, models.ChangedFile{
			Path:      f.Filename,
			Status:    f.Status,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Patch:     f.Patch,
		})
	}

	return files, nil
}
