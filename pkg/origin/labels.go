package origin

import (
	"context"
	"fmt"
	"slices"

	"github.com/lerenn/pr-origin/pkg/forge"
)

// pullRequestMetadata is what the forge tells about a pull request, read fresh on each resolution.
type pullRequestMetadata struct {
	issue       *forge.Issue
	pullRequest *forge.PullRequest
}

// fetchMetadata reads the issue and the pull request views of a pull request.
func (o *realOrigin) fetchMetadata(ctx context.Context, prNumber int) (*pullRequestMetadata, error) {
	issue, err := o.forge.GetIssue(ctx, prNumber)
	if err != nil {
		return nil, err
	}

	pr, err := o.forge.GetPullRequest(ctx, prNumber)
	if err != nil {
		return nil, err
	}

	return &pullRequestMetadata{issue: issue, pullRequest: pr}, nil
}

// checkPolicy enforces the required state and the required labels of a pull request.
func (o *realOrigin) checkPolicy(prNumber int, metadata *pullRequestMetadata) error {
	url := o.repository.PullRequestURL(prNumber)

	if o.config.RequiredState != "" && metadata.pullRequest.State != o.config.RequiredState {
		return &PullRequestStateError{
			URL:      url,
			State:    metadata.pullRequest.State,
			Required: o.config.RequiredState,
		}
	}

	missing := missingLabels(o.config.RequiredLabels, metadata.issue.Labels)
	if len(missing) > 0 {
		o.logger.Logf("Pull request %s is missing labels %v", url, missing)
		return &MissingLabelsError{URL: url, Missing: missing}
	}

	if len(o.config.RequiredLabels) > 0 {
		o.logger.Logf("Pull request %s has all required labels", url)
	}
	return nil
}

// missingLabels returns the required labels absent from labels, in the required order.
func missingLabels(required, labels []string) []string {
	var missing []string
	for _, label := range required {
		if !slices.Contains(labels, label) && !slices.Contains(missing, label) {
			missing = append(missing, label)
		}
	}
	return missing
}

// integrateLabelValue formats the integrate label of a pull request revision.
func integrateLabelValue(url, headLabel, headSHA1 string) string {
	return fmt.Sprintf("%s from %s %s", url, headLabel, headSHA1)
}
