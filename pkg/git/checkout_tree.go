package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// CheckoutTree writes the tree of a revision into a directory outside the repository.
// A throwaway index is used so the repository index and HEAD are left untouched.
// Files already present in the work tree are overwritten but never removed.
func (g *realGit) CheckoutTree(params CheckoutTreeParams) error {
	gitDir, err := filepath.Abs(params.RepoPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path of %s: %w", params.RepoPath, err)
	}
	workTree, err := filepath.Abs(params.WorkTree)
	if err != nil {
		return fmt.Errorf("failed to get absolute path of %s: %w", params.WorkTree, err)
	}
	if err := os.MkdirAll(workTree, 0755); err != nil {
		return fmt.Errorf("failed to create work tree %s: %w", workTree, err)
	}

	indexDir, err := os.MkdirTemp("", "git-index-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary index directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(indexDir)
	}()
	env := []string{
		"GIT_DIR=" + gitDir,
		"GIT_WORK_TREE=" + workTree,
		"GIT_INDEX_FILE=" + filepath.Join(indexDir, "index"),
	}

	if _, err := g.runGit(workTree, env, "read-tree", params.Rev); err != nil {
		return err
	}
	_, err = g.runGit(workTree, env, "checkout-index", "--all", "--force")
	return err
}
