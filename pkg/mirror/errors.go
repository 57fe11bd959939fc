package mirror

import "errors"

// Mirror-specific errors.
var (
	ErrMirrorInit               = errors.New("failed to initialize mirror")
	ErrClosed                   = errors.New("mirror is closed")
	ErrInvalidPullRequestNumber = errors.New("invalid pull request number")
)
