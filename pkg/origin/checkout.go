package origin

import (
	"fmt"

	"github.com/lerenn/pr-origin/pkg/git"
	"github.com/lerenn/pr-origin/pkg/mirror"
)

// Checkout replaces the content of destination with the tree of a revision.
// With use_merge, pull request revisions are checked out from their merge ref, which must have
// been fetched. The destination is left untouched when no tree can be selected.
func (o *realOrigin) Checkout(rev *Revision, destination string) error {
	if rev == nil {
		return fmt.Errorf("%w: nothing to check out", ErrInvalidRevision)
	}

	target, err := o.checkoutTarget(rev)
	if err != nil {
		return err
	}

	o.logger.Logf("Checking out %s into %s", target, destination)
	if err := o.fs.ClearDirectory(destination); err != nil {
		return fmt.Errorf("failed to clear %s: %w", destination, err)
	}

	return o.git.CheckoutTree(git.CheckoutTreeParams{
		RepoPath: o.mirror.Path(),
		Rev:      target,
		WorkTree: destination,
	})
}

// checkoutTarget selects the commit to check out for a revision.
func (o *realOrigin) checkoutTarget(rev *Revision) (string, error) {
	prNumber, ok := rev.PRNumber()
	if !ok || !o.config.UseMerge {
		return rev.SHA1(), nil
	}

	mergeSHA1, ok := o.mirror.Ref(mirror.MergeRef(prNumber))
	if !ok {
		return "", &MergeRefUnavailableError{PRNumber: prNumber}
	}
	return mergeSHA1, nil
}
