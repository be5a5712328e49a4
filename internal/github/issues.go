package github

import (
	"context"
	"fmt"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// Issue represents a GitHub issue from the API
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	User    User   `json:"user"`
}

// ToModel converts API Issue to models.Issue
func (i *Issue) ToModel(org, repo string) *models.Issue {
	return &models.Issue{
		Org:    org,
		Repo:   repo,
		Number: i.Number,
		Title:  i.Title,
		Body:   i.Body,
		State:  i.State,
		URL:    i.HTMLURL,
	}
}

// GetIssue fetches a single issue without its comments
func (c *Client) GetIssue(ctx context.Context, org, repo string, number int) (*models.Issue, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d", org, repo, number)

	var ai Issue
	if err := c.get(ctx, endpoint, &ai); err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	return ai.ToModel(org, repo), nil
}
