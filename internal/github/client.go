package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

const (
	userAgent  = "gh-agentctl"
	apiVersion = "2022-11-28"
)

// Client wraps GitHub REST API operations
type Client struct {
	rest *api.RESTClient
}

// NewClient creates a GitHub client authenticated with an explicit token.
// host is "github.com" or a GitHub Enterprise hostname.
func NewClient(host, token string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	return newClient(api.ClientOptions{
		Host:      host,
		AuthToken: token,
	})
}

func newClient(opts api.ClientOptions) (*Client, error) {
	opts.Headers = map[string]string{
		"Accept":               "application/vnd.github+json",
		"User-Agent":           userAgent,
		"X-GitHub-Api-Version": apiVersion,
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	rest, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{rest: rest}, nil
}

// Close releases resources
func (c *Client) Close() error {
	return nil
}

// ParseRepo splits "owner/repo" into owner and repo
func ParseRepo(fullRepo string) (string, string, error) {
	parts := strings.Split(fullRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", fullRepo)
	}
	return parts[0], parts[1], nil
}

// StatusCode extracts the HTTP status of a failed API call, or 0 when the
// request never got a response.
func StatusCode(err error) int {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.rest.DoWithContext(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body io.Reader, out interface{}) error {
	return c.rest.DoWithContext(ctx, http.MethodPost, endpoint, body, out)
}

// User represents a GitHub user
type User struct {
	Login string `json:"login"`
}
