package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// FetchRefs fetches the given refspecs from a remote URL into the repository.
// A refspec naming a ref that does not exist on the remote yields ErrRemoteRefNotFound.
func (g *realGit) FetchRefs(params FetchRefsParams) error {
	args := []string{"fetch", "--no-tags", "--quiet", params.RemoteURL}
	args = append(args, params.Refspecs...)

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		sentinel := ErrFetchFailed
		if strings.Contains(string(output), "couldn't find remote ref") {
			sentinel = ErrRemoteRefNotFound
		}
		return fmt.Errorf("%w: git fetch failed: %w (command: git %s, output: %s)",
			sentinel, err, strings.Join(args, " "), strings.TrimSpace(string(output)))
	}
	return nil
}
