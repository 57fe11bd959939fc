// Package forge provides access to the hosting API of a repository.
package forge

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mockforge.gen.go -package=forge

// Forge interface defines the read-only hosting API calls needed to validate a pull request.
// A Forge is bound to a single repository.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetIssue fetches the issue side of a pull request, which carries its labels
	GetIssue(ctx context.Context, number int) (*Issue, error)

	// GetPullRequest fetches the pull request details, which carry its branches
	GetPullRequest(ctx context.Context, number int) (*PullRequest, error)
}

// Issue is the issue view of a pull request.
type Issue struct {
	Number int
	State  string
	Title  string
	Body   string
	Labels []string
}

// Branch is one side of a pull request.
type Branch struct {
	// Label is the owner qualified branch name, e.g. "octocat:feature".
	Label string
	// Ref is the branch name.
	Ref  string
	SHA1 string
}

// PullRequest is the pull request view of a pull request.
type PullRequest struct {
	Number int
	State  string
	Title  string
	Body   string
	Head   Branch
	Base   Branch
}
