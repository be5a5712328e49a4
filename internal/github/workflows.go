package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

// WorkflowRun represents a GitHub Actions run from the API
type WorkflowRun struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	CreatedAt  time.Time `json:"created_at"`
	HTMLURL    string    `json:"html_url"`
}

type workflowRunsResponse struct {
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

// ListWorkflowRuns fetches up to perPage runs of the workflow identified by
// its file name, in the order the API returns them.
func (c *Client) ListWorkflowRuns(ctx context.Context, org, repo, workflowFile string, perPage int) ([]models.WorkflowRun, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/actions/workflows/%s/runs?per_page=%d",
		org, repo, url.PathEscape(workflowFile), perPage)

	var resp workflowRunsResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list workflow runs: %w", err)
	}

	runs := make([]models.WorkflowRun, 0, len(resp.WorkflowRuns))
	for _, r := range resp.WorkflowRuns {
		runs = append(runs, models.WorkflowRun{
			ID:         r.ID,
			Status:     r.Status,
			Conclusion: r.Conclusion,
			CreatedAt:  r.CreatedAt,
			URL:        r.HTMLURL,
		})
	}

	return runs, nil
}

// DispatchWorkflow triggers a workflow_dispatch event on the given ref
func (c *Client) DispatchWorkflow(ctx context.Context, org, repo, workflowFile, ref string) error {
	endpoint := fmt.Sprintf("repos/%s/%s/actions/workflows/%s/dispatches",
		org, repo, url.PathEscape(workflowFile))

	payload := map[string]string{"ref": ref}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := c.post(ctx, endpoint, bytes.NewReader(jsonBody), nil); err != nil {
		return fmt.Errorf("failed to dispatch workflow: %w", err)
	}

	return nil
}
