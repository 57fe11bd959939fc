package git

// IsAncestor checks if ancestor is reachable from descendant.
func (g *realGit) IsAncestor(repoPath, ancestor, descendant string) (bool, error) {
	_, err := g.runGit(repoPath, nil, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	// Exit status 1 is a negative answer, anything else is a failure (e.g. unknown commit).
	if exitCode(err) == 1 {
		return false, nil
	}
	return false, err
}
