package git

import (
	"fmt"
	"strings"
)

// ResolveCommit resolves a revision to the full sha1 of the commit it points to.
// Unknown or ambiguous revisions yield ErrReferenceNotFound.
func (g *realGit) ResolveCommit(repoPath, rev string) (string, error) {
	output, err := g.runGit(repoPath, nil, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil {
		if exitCode(err) == 1 {
			return "", fmt.Errorf("%w: %s", ErrReferenceNotFound, rev)
		}
		return "", err
	}
	return strings.TrimSpace(output), nil
}
