package origin

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
)

// Label keys set on the revisions of pull requests.
const (
	// PRNumberLabel holds the decimal pull request number.
	PRNumberLabel = "GITHUB_PR_NUMBER"
	// PRHeadSHALabel holds the sha1 of the pull request head.
	PRHeadSHALabel = "GITHUB_PR_HEAD_SHA"
	// PRTitleLabel holds the pull request title.
	PRTitleLabel = "GITHUB_PR_TITLE"
	// BaseBranchLabel holds the name of the branch the pull request targets.
	BaseBranchLabel = "GITHUB_BASE_BRANCH"
)

var sha1Pattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Revision is an immutable resolved source revision.
type Revision struct {
	sha1       string
	contextRef string
	labels     map[string]string
}

// NewRevision creates a revision. sha1 must be 40 lowercase hexadecimal characters.
func NewRevision(sha1, contextRef string, labels map[string]string) (*Revision, error) {
	if !sha1Pattern.MatchString(sha1) {
		return nil, fmt.Errorf("%w: %q is not a full sha1", ErrInvalidRevision, sha1)
	}

	return &Revision{
		sha1:       sha1,
		contextRef: contextRef,
		labels:     maps.Clone(labels),
	}, nil
}

// SHA1 returns the commit id of the revision.
func (r *Revision) SHA1() string {
	return r.sha1
}

// ContextReference returns the reference the revision was resolved from.
func (r *Revision) ContextReference() string {
	return r.contextRef
}

// Labels returns a copy of the labels of the revision.
func (r *Revision) Labels() map[string]string {
	labels := make(map[string]string, len(r.labels))
	maps.Copy(labels, r.labels)
	return labels
}

// Label returns the value of a label.
func (r *Revision) Label(key string) (string, bool) {
	value, ok := r.labels[key]
	return value, ok
}

// PRNumber returns the pull request number of the revision, if it was resolved from one.
func (r *Revision) PRNumber() (int, bool) {
	value, ok := r.labels[PRNumberLabel]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *Revision) String() string {
	return r.sha1
}
