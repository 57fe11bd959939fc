package forge

import "errors"

// Forge-specific errors
var (
	ErrInvalidRepositoryURL = errors.New("invalid repository URL")
	ErrPullRequestNotFound  = errors.New("pull request not found")
	ErrRateLimited          = errors.New("rate limited by forge API")
	ErrUnauthorized         = errors.New("unauthorized access to forge API")
)
