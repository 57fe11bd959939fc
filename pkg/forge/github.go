package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
)

// GitHubParams contains parameters for NewGitHub.
type GitHubParams struct {
	Repository *Repository
	// Token authenticates API calls when set.
	Token string
	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL string
	// HTTPClient is the underlying transport, http.DefaultClient when nil.
	HTTPClient *http.Client
}

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client     *github.Client
	repository *Repository
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params GitHubParams) (*GitHub, error) {
	if params.Repository == nil {
		return nil, fmt.Errorf("%w: no repository given", ErrInvalidRepositoryURL)
	}

	httpClient := params.HTTPClient
	// Add authentication if available
	if params.Token != "" {
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: params.Token}))
	}

	client := github.NewClient(httpClient)
	if params.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(params.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %s: %w", params.BaseURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHub{
		client:     client,
		repository: params.Repository,
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetIssue fetches the issue side of a pull request from GitHub API.
func (g *GitHub) GetIssue(ctx context.Context, number int) (*Issue, error) {
	issue, resp, err := g.client.Issues.Get(ctx, g.repository.Owner, g.repository.Name, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, number)
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return &Issue{
		Number: issue.GetNumber(),
		State:  issue.GetState(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labels,
	}, nil
}

// GetPullRequest fetches the pull request details from GitHub API.
func (g *GitHub) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	pr, resp, err := g.client.PullRequests.Get(ctx, g.repository.Owner, g.repository.Name, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, number)
	}

	return &PullRequest{
		Number: pr.GetNumber(),
		State:  pr.GetState(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Head:   convertBranch(pr.GetHead()),
		Base:   convertBranch(pr.GetBase()),
	}, nil
}

// convertBranch converts a github.PullRequestBranch, which may be nil, to our Branch type.
func convertBranch(branch *github.PullRequestBranch) Branch {
	return Branch{
		Label: branch.GetLabel(),
		Ref:   branch.GetRef(),
		SHA1:  branch.GetSHA(),
	}
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, number int) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: GitHub API rate limit exceeded: %w", ErrRateLimited, err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %w", ErrPullRequestNotFound, g.repository.PullRequestURL(number), err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the GitHub token: %w", ErrUnauthorized, err)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded: %w", ErrRateLimited, err)
			}
			return fmt.Errorf("%w: access forbidden: %w", ErrUnauthorized, err)
		}
	}
	return fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
}
