package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// Comment represents a GitHub comment
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ToModel converts API Comment to models.Comment
func (c *Comment) ToModel() models.Comment {
	return models.Comment{
		ID:        c.ID,
		Author:    c.User.Login,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// ListComments fetches the first page (up to 100) of comments on an issue,
// oldest first.
func (c *Client) ListComments(ctx context.Context, org, repo string, number int) ([]models.Comment, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d/comments?per_page=100", org, repo, number)

	var apiComments []Comment
	if err := c.get(ctx, endpoint, &apiComments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]models.Comment, 0, len(apiComments))
	for i := range apiComments {
		comments = append(comments, apiComments[i].ToModel())
	}

	return comments, nil
}

// PostComment adds a comment to an issue
func (c *Client) PostComment(ctx context.Context, org, repo string, number int, body string) error {
	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d/comments", org, repo, number)

	payload := map[string]string{"body": body}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := c.post(ctx, endpoint, bytes.NewReader(jsonBody), nil); err != nil {
		return fmt.Errorf("failed to post comment: %w", err)
	}

	return nil
}
