package utils

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

type GithubApi interface {
	CreateCheckRun(ctx context.Context, owner, repo string, opts github.CreateCheckRunOptions) (*github.CheckRun, error)
	UpdateCheckRun(ctx context.Context, owner, repo string, id int64, opts github.UpdateCheckRunOptions) error
}

type GithubApiClient struct {
	client *github.Client
}

func NewGithubApiClient() GithubApiClient {
	ctx := context.Background()
	token := os.Getenv("GITHUB_TOKEN")
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(ctx, ts)
		return GithubApiClient{client: newGithubClient(tc)}
	}
	return GithubApiClient{client: newGithubClient(nil)}
}

// newGithubClient honours GITHUB_API_URL so the action also works against
// GitHub Enterprise Server.
func newGithubClient(tc *http.Client) *github.Client {
	if apiURL := os.Getenv("GITHUB_API_URL"); apiURL != "" && apiURL != "https://api.github.com" {
		if enterprise, err := github.NewEnterpriseClient(apiURL, apiURL, tc); err == nil {
			return enterprise
		}
	}
	return github.NewClient(tc)
}

func (apiClient GithubApiClient) CreateCheckRun(ctx context.Context, owner, repo string, opts github.CreateCheckRunOptions) (*github.CheckRun, error) {
	run, _, err := apiClient.client.Checks.CreateCheckRun(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create check run on %s/%s: %w", owner, repo, err)
	}
	return run, nil
}

func (apiClient GithubApiClient) UpdateCheckRun(ctx context.Context, owner, repo string, id int64, opts github.UpdateCheckRunOptions) error {
	_, _, err := apiClient.client.Checks.UpdateCheckRun(ctx, owner, repo, id, opts)
	if err != nil {
		return fmt.Errorf("failed to update check run %d on %s/%s: %w", id, owner, repo, err)
	}
	return nil
}

// SplitRepository splits an "owner/repo" string such as GITHUB_REPOSITORY.
func SplitRepository(fullName string) (string, string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", fullName)
	}
	return owner, repo, nil
}
