package git

import (
	"fmt"
	"strings"
)

// MergeBase gets the best common ancestor of two commits.
func (g *realGit) MergeBase(repoPath, first, second string) (string, error) {
	output, err := g.runGit(repoPath, nil, "merge-base", first, second)
	if err != nil {
		if exitCode(err) == 1 {
			return "", fmt.Errorf("%w: %s and %s", ErrNoCommonAncestor, first, second)
		}
		return "", err
	}
	return strings.TrimSpace(output), nil
}
