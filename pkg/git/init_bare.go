package git

import (
	"fmt"
	"os"
)

// InitBare executes `git init --bare` at the specified path, creating the directory if needed.
// Running it on an existing repository is safe.
func (g *realGit) InitBare(repoPath string) error {
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		return fmt.Errorf("failed to create repository directory %s: %w", repoPath, err)
	}
	_, err := g.runGit(repoPath, nil, "init", "--bare", "--quiet")
	return err
}
