package origin

import (
	"errors"
	"fmt"
	"strings"
)

// Origin-specific errors. Validation errors are terminal and must not be retried.
var (
	ErrInvalidReference      = errors.New("invalid pull request reference")
	ErrMissingRequiredLabels = errors.New("missing required labels")
	ErrMergeRefUnavailable   = errors.New("merge reference unavailable")
	ErrPullRequestState      = errors.New("pull request is not in the required state")
	ErrInvalidRevision       = errors.New("invalid revision")
	ErrInvalidConfig         = errors.New("invalid origin configuration")
)

// InvalidReferenceError is returned when an input matches no known reference form.
type InvalidReferenceError struct {
	Input string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("'%s' is not a valid reference for a GitHub Pull Request", e.Input)
}

// Is reports whether target is ErrInvalidReference.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// MissingLabelsError is returned when a pull request lacks some of the required labels.
// Missing keeps the configured order.
type MissingLabelsError struct {
	URL     string
	Missing []string
}

func (e *MissingLabelsError) Error() string {
	return fmt.Sprintf("Cannot migrate %s because it is missing the following labels: [%s]",
		e.URL, strings.Join(e.Missing, ", "))
}

// Is reports whether target is ErrMissingRequiredLabels.
func (e *MissingLabelsError) Is(target error) bool {
	return target == ErrMissingRequiredLabels
}

// MergeRefUnavailableError is returned when a merge checkout is requested for a pull request
// that has no merge ref in the mirror.
type MergeRefUnavailableError struct {
	PRNumber int
}

func (e *MergeRefUnavailableError) Error() string {
	return fmt.Sprintf("Cannot find a merge reference for Pull Request %d", e.PRNumber)
}

// Is reports whether target is ErrMergeRefUnavailable.
func (e *MergeRefUnavailableError) Is(target error) bool {
	return target == ErrMergeRefUnavailable
}

// PullRequestStateError is returned when the pull request state differs from the required one.
type PullRequestStateError struct {
	URL      string
	State    string
	Required string
}

func (e *PullRequestStateError) Error() string {
	return fmt.Sprintf("Cannot migrate %s because it is %s, expected %s", e.URL, e.State, e.Required)
}

// Is reports whether target is ErrPullRequestState.
func (e *PullRequestStateError) Is(target error) bool {
	return target == ErrPullRequestState
}

// IsValidationError tells terminal validation failures apart from transport failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrMissingRequiredLabels) ||
		errors.Is(err, ErrMergeRefUnavailable) ||
		errors.Is(err, ErrPullRequestState)
}
