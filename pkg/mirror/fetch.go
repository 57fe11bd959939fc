package mirror

import (
	"errors"
	"fmt"

	"github.com/lerenn/pr-origin/pkg/git"
)

// Fetch fetches the head ref of a pull request, then tries its merge ref.
// A missing or unfetchable merge ref is recorded as absent and does not fail the fetch.
func (m *realMirror) Fetch(prNumber int) (FetchResult, error) {
	if prNumber <= 0 {
		return FetchResult{}, fmt.Errorf("%w: %d", ErrInvalidPullRequestNumber, prNumber)
	}

	if err := m.ensureInitialized(); err != nil {
		return FetchResult{}, err
	}

	plan := NewFetchPlan(prNumber)
	result := FetchResult{Plan: plan}

	headSHA1, err := m.fetchRef(plan.HeadRef)
	if err != nil {
		return FetchResult{}, err
	}
	result.HeadSHA1 = headSHA1

	mergeSHA1, err := m.fetchRef(plan.MergeRef)
	if err != nil {
		if errors.Is(err, git.ErrRemoteRefNotFound) {
			m.logger.Logf("No merge reference %s on %s", plan.MergeRef, m.remoteURL)
		} else {
			m.logger.Logf("Failed to fetch merge reference %s: %v", plan.MergeRef, err)
		}
		delete(m.refs, plan.MergeRef)
		return result, nil
	}
	result.MergeSHA1 = mergeSHA1
	result.HasMerge = true

	return result, nil
}

// fetchRef fetches a single ref into the mirror and records the commit it points to.
func (m *realMirror) fetchRef(ref string) (string, error) {
	m.logger.Logf("Fetching %s from %s", ref, m.remoteURL)
	if err := m.git.FetchRefs(git.FetchRefsParams{
		RepoPath:  m.path,
		RemoteURL: m.remoteURL,
		Refspecs:  []string{refspec(ref)},
	}); err != nil {
		return "", err
	}

	sha1, err := m.git.ResolveCommit(m.path, ref)
	if err != nil {
		return "", fmt.Errorf("failed to resolve fetched reference %s: %w", ref, err)
	}

	m.refs[ref] = sha1
	return sha1, nil
}
