package origin

import (
	"context"
	"errors"
	"strconv"

	"github.com/lerenn/pr-origin/pkg/git"
	"github.com/lerenn/pr-origin/pkg/mirror"
)

// Resolve resolves a reference into a validated revision.
// Pull requests are validated against the forge before anything is fetched into the mirror.
func (o *realOrigin) Resolve(ctx context.Context, reference string) (*Revision, error) {
	ref := ParseReference(reference, o.repository)

	switch ref.Kind {
	case ReferencePullRequest:
		return o.resolvePullRequest(ctx, ref.PRNumber)
	case ReferenceCommit:
		return o.resolveCommit(ref)
	default:
		return nil, &InvalidReferenceError{Input: reference}
	}
}

func (o *realOrigin) resolvePullRequest(ctx context.Context, prNumber int) (*Revision, error) {
	url := o.repository.PullRequestURL(prNumber)
	o.logger.Logf("Resolving pull request %s", url)

	metadata, err := o.fetchMetadata(ctx, prNumber)
	if err != nil {
		return nil, err
	}
	if err := o.checkPolicy(prNumber, metadata); err != nil {
		return nil, err
	}

	result, err := o.mirror.Fetch(prNumber)
	if err != nil {
		return nil, err
	}

	pr := metadata.pullRequest
	labels := map[string]string{
		PRNumberLabel:           strconv.Itoa(prNumber),
		o.config.IntegrateLabel: integrateLabelValue(url, pr.Head.Label, result.HeadSHA1),
		PRHeadSHALabel:          result.HeadSHA1,
		BaseBranchLabel:         pr.Base.Ref,
		PRTitleLabel:            pr.Title,
	}

	return NewRevision(result.HeadSHA1, mirror.HeadRef(prNumber), labels)
}

// resolveCommit accepts a commit id only when the mirror already holds it.
func (o *realOrigin) resolveCommit(ref Reference) (*Revision, error) {
	sha1, err := o.mirror.ResolveCommit(ref.Commit)
	if err != nil {
		if errors.Is(err, git.ErrReferenceNotFound) {
			o.logger.Logf("Commit %s is not in the mirror", ref.Commit)
			return nil, &InvalidReferenceError{Input: ref.Input}
		}
		return nil, err
	}

	return NewRevision(sha1, ref.Commit, nil)
}
