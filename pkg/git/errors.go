// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrFetchFailed       = errors.New("failed to fetch from remote")
	ErrRemoteRefNotFound = errors.New("reference not found on remote")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrNoCommonAncestor  = errors.New("no common ancestor")
	ErrMalformedLogEntry = errors.New("malformed git log entry")
)
