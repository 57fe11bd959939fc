// CI functions of prorigin: lint and the three test suites.
//
// Unit tests only need Go; integration and end-to-end tests drive the git
// binary against temporary repositories.
package main

import (
	"context"
	"runtime"

	"pr-origin/dagger/internal/dagger"

	"golang.org/x/sync/errgroup"
)

type PrOrigin struct{}

// Lint runs golangci-lint on the main repo (./...) only.
func (ci *PrOrigin) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	c = ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir)

	return c.WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *PrOrigin) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=unit ./...",
		})
}

// IntegrationTests returns a container that runs the integration tests.
func (ci *PrOrigin) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := ci.withGit(dag.Container().From("golang:" + goVersion() + "-alpine"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=integration ./...",
		})
}

// EndToEndTests returns a container that runs the end-to-end tests against a local
// hub repository and a fake GitHub API.
func (ci *PrOrigin) EndToEndTests(sourceDir *dagger.Directory) *dagger.Container {
	c := ci.withGit(dag.Container().From("golang:" + goVersion() + "-alpine"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=e2e ./test/ -v",
		})
}

// Check runs the linter and every test suite in parallel.
func (ci *PrOrigin) Check(ctx context.Context, sourceDir *dagger.Directory) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range []*dagger.Container{
		ci.Lint(sourceDir),
		ci.UnitTests(sourceDir),
		ci.IntegrationTests(sourceDir),
		ci.EndToEndTests(sourceDir),
	} {
		g.Go(func() error {
			_, err := c.Sync(ctx)
			return err
		})
	}
	return g.Wait()
}

func (ci *PrOrigin) withGit(c *dagger.Container) *dagger.Container {
	return c.
		WithExec([]string{"apk", "add", "--no-cache", "git"}).
		WithExec([]string{"git", "config", "--global", "user.name", "Test User"}).
		WithExec([]string{"git", "config", "--global", "user.email", "test@example.com"})
}

func (ci *PrOrigin) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	containerPath := "/go/src/github.com/lerenn/pr-origin"
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
