package fs

import "errors"

// FS-specific errors.
var (
	ErrNotADirectory = errors.New("not a directory")
)
