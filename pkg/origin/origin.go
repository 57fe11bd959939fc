// Package origin resolves references to GitHub pull requests into revisions,
// computes the changes they introduce and checks them out.
package origin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/forge"
	"github.com/lerenn/pr-origin/pkg/fs"
	"github.com/lerenn/pr-origin/pkg/git"
	"github.com/lerenn/pr-origin/pkg/logger"
	"github.com/lerenn/pr-origin/pkg/mirror"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=origin.go -destination=mockorigin.gen.go -package=origin

// Origin is the source side of a migration: it turns pull request references into revisions.
// An Origin owns its mirror and is not safe for concurrent use.
type Origin interface {
	// Resolve resolves a reference into a validated revision.
	Resolve(ctx context.Context, reference string) (*Revision, error)

	// Changes lists the commits reachable from head but not from baseline, oldest first.
	Changes(baseline, head *Revision) ([]Change, error)

	// Checkout replaces the content of destination with the tree of a revision.
	Checkout(rev *Revision, destination string) error

	// Close releases the mirror of the origin.
	Close() error
}

// NewOriginParams contains parameters for creating a new Origin instance.
// Only Config is required; the other collaborators are built from it when nil.
type NewOriginParams struct {
	Config *config.Config
	Git    git.Git
	FS     fs.FS
	Forge  forge.Forge
	Mirror mirror.Mirror
	Logger logger.Logger
}

type realOrigin struct {
	config     *config.Config
	repository *forge.Repository
	git        git.Git
	fs         fs.FS
	forge      forge.Forge
	mirror     mirror.Mirror
	logger     logger.Logger
}

// New creates a new Origin instance.
func New(params NewOriginParams) (Origin, error) {
	if params.Config == nil {
		return nil, fmt.Errorf("%w: no configuration", ErrInvalidConfig)
	}
	cfg := *params.Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	repository, err := forge.ParseRepositoryURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	o := &realOrigin{
		config:     &cfg,
		repository: repository,
		git:        params.Git,
		fs:         params.FS,
		forge:      params.Forge,
		mirror:     params.Mirror,
		logger:     params.Logger,
	}

	if o.logger == nil {
		o.logger = logger.NewNoopLogger()
	}
	if o.git == nil {
		o.git = git.NewGit()
	}
	if o.fs == nil {
		o.fs = fs.NewFS()
	}

	if o.forge == nil {
		o.forge, err = forge.NewGitHub(forge.GitHubParams{
			Repository: repository,
			Token:      cfg.Token(),
			BaseURL:    cfg.APIURL,
		})
		if err != nil {
			return nil, err
		}
	}

	if o.mirror == nil {
		o.mirror = mirror.NewMirror(mirror.NewMirrorParams{
			Git:       o.git,
			FS:        o.fs,
			Logger:    o.logger,
			RemoteURL: cfg.RemoteURL(),
			Path:      mirrorPath(cfg.MirrorDir, repository),
		})
	}

	return o, nil
}

// mirrorPath returns the persistent mirror of a repository, or empty for a temporary one.
func mirrorPath(mirrorDir string, repository *forge.Repository) string {
	if mirrorDir == "" {
		return ""
	}
	return filepath.Join(mirrorDir, repository.Host, repository.Owner, repository.Name+".git")
}

// Close releases the mirror of the origin.
func (o *realOrigin) Close() error {
	return o.mirror.Close()
}
