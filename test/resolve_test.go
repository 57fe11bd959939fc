//go:build e2e

package test

import (
	"context"
	"testing"

	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PullRequestForms(t *testing.T) {
	setup := setupTestEnvironment(t)
	o := setup.newOrigin(t, nil)

	for _, reference := range []string{
		"123",
		"https://github.com/google/example/pull/123",
		"refs/pull/123/head",
	} {
		t.Run(reference, func(t *testing.T) {
			rev, err := o.Resolve(context.Background(), reference)
			require.NoError(t, err)

			assert.Equal(t, setup.Two, rev.SHA1())
			assert.Equal(t, "refs/pull/123/head", rev.ContextReference())

			number, ok := rev.Label(origin.PRNumberLabel)
			assert.True(t, ok)
			assert.Equal(t, "123", number)

			integrate, ok := rev.Label(config.DefaultIntegrateLabel)
			assert.True(t, ok)
			assert.Equal(t,
				"https://github.com/google/example/pull/123 from googletestuser:example-branch "+setup.Two,
				integrate)
		})
	}
}

func TestResolve_CommitAfterFetch(t *testing.T) {
	setup := setupTestEnvironment(t)
	o := setup.newOrigin(t, nil)

	// Not fetched yet
	_, err := o.Resolve(context.Background(), setup.Two+" PR 123 (googletestuser:example-branch)")
	assert.ErrorIs(t, err, origin.ErrInvalidReference)

	_, err = o.Resolve(context.Background(), "123")
	require.NoError(t, err)

	rev, err := o.Resolve(context.Background(), setup.Two+" PR 123 (googletestuser:example-branch)")
	require.NoError(t, err)
	assert.Equal(t, setup.Two, rev.SHA1())

	// Ancestors of the fetched head are known too
	rev, err = o.Resolve(context.Background(), setup.Base[:10]+" base")
	require.NoError(t, err)
	assert.Equal(t, setup.Base, rev.SHA1())
}

func TestResolve_RequiredLabels(t *testing.T) {
	setup := setupTestEnvironment(t)

	t.Run("present", func(t *testing.T) {
		o := setup.newOrigin(t, func(cfg *config.Config) {
			cfg.RequiredLabels = []string{"foo: yes", "bar: yes"}
		})
		_, err := o.Resolve(context.Background(), "123")
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		setup.API.addPullRequest(pullRequest{
			Number:    125,
			Labels:    []string{"bar: yes"},
			HeadLabel: "googletestuser:example-branch",
			HeadRef:   "example-branch",
			HeadSHA1:  setup.Two,
		})
		o := setup.newOrigin(t, func(cfg *config.Config) {
			cfg.RequiredLabels = []string{"foo: yes", "bar: yes"}
			// A fresh mirror shows whether anything was fetched
			cfg.MirrorDir = ""
		})

		_, err := o.Resolve(context.Background(), "125")
		require.Error(t, err)
		assert.EqualError(t, err,
			"Cannot migrate https://github.com/google/example/pull/125 because it is missing the following labels: [foo: yes]")
		assert.True(t, origin.IsValidationError(err))

		// Validation happens before fetching
		_, err = o.Resolve(context.Background(), setup.Two)
		assert.ErrorIs(t, err, origin.ErrInvalidReference)
	})

	t.Run("none required", func(t *testing.T) {
		o := setup.newOrigin(t, nil)
		_, err := o.Resolve(context.Background(), "124")
		assert.NoError(t, err)
	})
}

func TestResolve_InvalidReference(t *testing.T) {
	setup := setupTestEnvironment(t)
	o := setup.newOrigin(t, nil)

	_, err := o.Resolve(context.Background(), "master")
	require.Error(t, err)
	assert.EqualError(t, err, "'master' is not a valid reference for a GitHub Pull Request")
}

func TestResolve_UnknownPullRequest(t *testing.T) {
	setup := setupTestEnvironment(t)
	o := setup.newOrigin(t, nil)

	_, err := o.Resolve(context.Background(), "999")
	require.Error(t, err)
	assert.False(t, origin.IsValidationError(err))
}

func TestResolve_PersistentMirror(t *testing.T) {
	setup := setupTestEnvironment(t)

	first := setup.newOrigin(t, nil)
	_, err := first.Resolve(context.Background(), "123")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Resolution on a new instance fetches again into the same mirror
	second := setup.newOrigin(t, nil)
	rev, err := second.Resolve(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, setup.Two, rev.SHA1())
	assert.DirExists(t, setup.MirrorDir+"/github.com/google/example.git")
}
