//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/pr-origin/configs"
	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/logger"
	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const (
	headSHA1 = "e597746de9c1704e648ddc3ffa0d2096b146d600"
	baseSHA1 = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c"
)

// runCommand executes the root command with a mocked origin and returns its output.
func runCommand(t *testing.T, mockOrigin origin.Origin, args ...string) (string, error) {
	t.Helper()

	originalNewOrigin := newOrigin
	newOrigin = func(cfg *config.Config, _ logger.Logger) (origin.Origin, error) {
		assert.Equal(t, "https://github.com/google/example", cfg.URL)
		return mockOrigin, nil
	}
	defer func() { newOrigin = originalNewOrigin }()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: https://github.com/google/example\n"), 0644))
	return path
}

func mustRevision(t *testing.T, sha1, contextRef string, labels map[string]string) *origin.Revision {
	t.Helper()
	rev, err := origin.NewRevision(sha1, contextRef, labels)
	require.NoError(t, err)
	return rev
}

func TestResolveCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)
	rev := mustRevision(t, headSHA1, "refs/pull/123/head", map[string]string{
		origin.PRNumberLabel: "123",
		"INTEGRATE_REVIEW":   "https://github.com/google/example/pull/123 from googletestuser:example-branch " + headSHA1,
	})

	mockOrigin.EXPECT().Resolve(gomock.Any(), "123").Return(rev, nil)
	mockOrigin.EXPECT().Close().Return(nil)

	out, err := runCommand(t, mockOrigin, "resolve", "123", "-q", "-c", writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, headSHA1+" refs/pull/123/head\n"+
		"  GITHUB_PR_NUMBER: 123\n"+
		"  INTEGRATE_REVIEW: https://github.com/google/example/pull/123 from googletestuser:example-branch "+headSHA1+"\n",
		out)
}

func TestResolveCmd_YAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)
	rev := mustRevision(t, headSHA1, "refs/pull/123/head", map[string]string{origin.PRNumberLabel: "123"})

	mockOrigin.EXPECT().Resolve(gomock.Any(), "123").Return(rev, nil)
	mockOrigin.EXPECT().Close().Return(nil)

	out, err := runCommand(t, mockOrigin, "resolve", "123", "-q", "-o", "yaml", "-c", writeConfig(t))
	require.NoError(t, err)

	var parsed revisionOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, revisionOutput{
		SHA1:             headSHA1,
		ContextReference: "refs/pull/123/head",
		Labels:           map[string]string{origin.PRNumberLabel: "123"},
	}, parsed)
}

func TestResolveCmd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)

	mockOrigin.EXPECT().Resolve(gomock.Any(), "master").Return(nil, &origin.InvalidReferenceError{Input: "master"})
	mockOrigin.EXPECT().Close().Return(nil)

	_, err := runCommand(t, mockOrigin, "resolve", "master", "-q", "-c", writeConfig(t))
	assert.ErrorIs(t, err, origin.ErrInvalidReference)
}

func TestChangesCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)
	head := mustRevision(t, headSHA1, "refs/pull/123/head", nil)
	baseline := mustRevision(t, baseSHA1, baseSHA1, nil)
	date := time.Unix(1700000000, 0)

	gomock.InOrder(
		mockOrigin.EXPECT().Resolve(gomock.Any(), "123").Return(head, nil),
		mockOrigin.EXPECT().Resolve(gomock.Any(), baseSHA1).Return(baseline, nil),
		mockOrigin.EXPECT().Changes(baseline, head).Return([]origin.Change{
			{SHA1: "1111111111111111111111111111111111111111", Message: "one", Date: date},
			{SHA1: "2222222222222222222222222222222222222222", Message: "two\n\nbody", Date: date},
		}, nil),
		mockOrigin.EXPECT().Close().Return(nil),
	)

	out, err := runCommand(t, mockOrigin, "changes", baseSHA1, "123", "-q", "-c", writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "111111111111 one\n222222222222 two\n", out)
}

func TestCheckoutCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)
	rev := mustRevision(t, headSHA1, "refs/pull/123/head", nil)
	destination := t.TempDir()

	mockOrigin.EXPECT().Resolve(gomock.Any(), "123").Return(rev, nil)
	mockOrigin.EXPECT().Checkout(rev, destination).Return(nil)
	mockOrigin.EXPECT().Close().Return(nil)

	out, err := runCommand(t, mockOrigin, "checkout", "123", destination, "-c", writeConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Checked out "+headSHA1)
}

func TestLoadConfig_Overrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrigin := origin.NewMockOrigin(ctrl)
	rev := mustRevision(t, headSHA1, "refs/pull/1/head", nil)

	originalNewOrigin := newOrigin
	var loaded *config.Config
	newOrigin = func(cfg *config.Config, _ logger.Logger) (origin.Origin, error) {
		loaded = cfg
		return mockOrigin, nil
	}
	defer func() { newOrigin = originalNewOrigin }()

	mockOrigin.EXPECT().Resolve(gomock.Any(), "1").Return(rev, nil)
	mockOrigin.EXPECT().Close().Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"resolve", "1", "-q",
		"-c", filepath.Join(t.TempDir(), "missing.yaml"),
		"--url", "https://github.com/google/other",
		"--use-merge",
		"--required-label", "foo: yes",
		"--required-label", "bar: yes",
		"--fetch-url", "/srv/hub.git",
	})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, loaded)
	assert.Equal(t, "https://github.com/google/other", loaded.URL)
	assert.True(t, loaded.UseMerge)
	assert.Equal(t, []string{"foo: yes", "bar: yes"}, loaded.RequiredLabels)
	assert.Equal(t, "/srv/hub.git", loaded.RemoteURL())
}

func TestLoadConfig_MissingURL(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"resolve", "1", "-q", "-c", filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, config.ErrURLEmpty)
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prorigin", "config.yaml")

	_, err := runCommand(t, nil, "init", "-q", "-c", path)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, content)

	// An existing configuration is kept
	_, err = runCommand(t, nil, "init", "-q", "-c", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = runCommand(t, nil, "init", "-q", "--force", "-c", path,
		"--url", "https://github.com/google/example", "--required-label", "foo: yes")
	require.NoError(t, err)

	cfg, err := config.NewManager().LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/google/example", cfg.URL)
	assert.Equal(t, []string{"foo: yes"}, cfg.RequiredLabels)
}
