package mirror

import "fmt"

// HeadRef returns the ref of the tip of a pull request branch.
func HeadRef(prNumber int) string {
	return fmt.Sprintf("refs/pull/%d/head", prNumber)
}

// MergeRef returns the ref of the merge of a pull request into its base, when the forge computed one.
func MergeRef(prNumber int) string {
	return fmt.Sprintf("refs/pull/%d/merge", prNumber)
}

// FetchPlan is the set of remote refs fetched for a pull request.
// The head ref is required, the merge ref is best effort.
type FetchPlan struct {
	PRNumber int
	HeadRef  string
	MergeRef string
}

// NewFetchPlan builds the fetch plan of a pull request.
func NewFetchPlan(prNumber int) FetchPlan {
	return FetchPlan{
		PRNumber: prNumber,
		HeadRef:  HeadRef(prNumber),
		MergeRef: MergeRef(prNumber),
	}
}

// refspec maps a remote ref onto the same name in the mirror, allowing force pushes.
func refspec(ref string) string {
	return "+" + ref + ":" + ref
}

// FetchResult is the state of the mirror for a pull request after a fetch.
type FetchResult struct {
	Plan      FetchPlan
	HeadSHA1  string
	MergeSHA1 string
	// HasMerge is false when the merge ref could not be fetched.
	HasMerge bool
}
