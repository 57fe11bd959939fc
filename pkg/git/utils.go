package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitEnv returns the environment for git subprocesses. Prompts are disabled so that
// a missing credential fails the command instead of blocking it.
func gitEnv(extra ...string) []string {
	env := append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	return append(env, extra...)
}

// runGit executes git in dir and returns its standard output.
func (g *realGit) runGit(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = gitEnv(env...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return string(output), fmt.Errorf("git %s failed: %w (command: git %s, output: %s)",
			args[0], err, strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return string(output), nil
}

// exitCode returns the exit status carried by err, or -1 if the process did not exit normally.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
