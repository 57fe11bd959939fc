package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository on branch master for testing.
// It can be used directly as a fetch remote.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := t.TempDir()

	RunGit(t, repoPath, "init", "--quiet")
	RunGit(t, repoPath, "symbolic-ref", "HEAD", "refs/heads/master")
	RunGit(t, repoPath, "config", "user.name", "Test User")
	RunGit(t, repoPath, "config", "user.email", "test@example.com")
	RunGit(t, repoPath, "config", "commit.gpgsign", "false")

	return repoPath
}

// SetupBareRepo creates a temporary bare git repository for testing.
func SetupBareRepo(t *testing.T) string {
	t.Helper()
	repoPath := t.TempDir()
	RunGit(t, repoPath, "init", "--bare", "--quiet")
	return repoPath
}

// RunGit executes a git command in dir, failing the test on error, and returns its trimmed output.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v, output: %s", strings.Join(args, " "), err, string(output))
	}
	return strings.TrimSpace(string(output))
}

// CommitFiles writes files into the work tree of repoPath, commits them with msg and
// returns the sha1 of the new commit.
func CommitFiles(t *testing.T, repoPath, msg string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(repoPath, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	RunGit(t, repoPath, "add", "--all")
	RunGit(t, repoPath, "commit", "--quiet", "--allow-empty", "-m", msg)
	return RunGit(t, repoPath, "rev-parse", "HEAD")
}

// UpdateRef points ref at sha1 in repoPath.
func UpdateRef(t *testing.T, repoPath, ref, sha1 string) {
	t.Helper()
	RunGit(t, repoPath, "update-ref", ref, sha1)
}
