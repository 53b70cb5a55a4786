package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// GitHub fetches developer-activity metrics from the GitHub REST API.
type GitHub struct {
	client  *Client
	baseURL string
}

// NewGitHub creates a GitHub connector.
func NewGitHub(client *Client, baseURL string) *GitHub {
	return &GitHub{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// WeeklyCommitActivity returns 52 weeks of commit activity for a repository.
// GitHub answers 202 while it is still generating the statistic; that comes
// back as a friendly message rather than an error, so callers can retry
// later. Repositories past 10k commits yield a 422 from GitHub, which is
// surfaced as an error.
func (g *GitHub) WeeklyCommitActivity(ctx context.Context, owner, repo string) (any, error) {
	rawURL := fmt.Sprintf("%s/repos/%s/%s/stats/commit_activity", g.baseURL, owner, repo)
	headers := map[string]string{"Accept": "application/vnd.github+json"}

	status, body, err := g.client.get(ctx, rawURL, headers)
	if err != nil {
		return nil, fmt.Errorf("github commit activity: %w", err)
	}
	if status == http.StatusAccepted {
		return map[string]any{"message": "GitHub is generating the statistics, please retry later"}, nil
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("github commit activity: unexpected status: %d", status)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("github commit activity: decode response: %w", err)
	}
	return payload, nil
}
