// Package mirror stages the refs of pull requests in a local bare repository.
package mirror

import (
	"fmt"

	"github.com/lerenn/pr-origin/pkg/fs"
	"github.com/lerenn/pr-origin/pkg/git"
	"github.com/lerenn/pr-origin/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=mirror.go -destination=mockmirror.gen.go -package=mirror

// Mirror is a local object store that accumulates the refs of pull requests fetched from one remote.
// The refs it knows about are tracked explicitly: a ref is only reported once it was fetched through
// this instance, whatever the underlying repository contains.
type Mirror interface {
	// Path returns the path of the bare repository. A temporary mirror has no path before its first fetch.
	Path() string

	// Fetch fetches the head ref of a pull request, then tries its merge ref.
	Fetch(prNumber int) (FetchResult, error)

	// Ref returns the commit a fetched ref points to.
	Ref(name string) (string, bool)

	// ResolveCommit resolves a revision reachable from a ref fetched through this instance.
	ResolveCommit(rev string) (string, error)

	// Close releases the mirror, removing it when it is temporary.
	Close() error
}

// NewMirrorParams contains parameters for creating a new Mirror instance.
type NewMirrorParams struct {
	Git       git.Git
	FS        fs.FS
	Logger    logger.Logger
	RemoteURL string
	// Path of the bare repository. A temporary repository is created on first use when empty.
	Path string
}

type realMirror struct {
	git       git.Git
	fs        fs.FS
	logger    logger.Logger
	remoteURL string
	path      string
	temporary bool

	initialized bool
	closed      bool
	refs        map[string]string
}

// NewMirror creates a new Mirror instance. Nothing is written to disk before the first fetch.
func NewMirror(params NewMirrorParams) Mirror {
	gitInstance := params.Git
	if gitInstance == nil {
		gitInstance = git.NewGit()
	}

	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}

	lg := params.Logger
	if lg == nil {
		lg = logger.NewNoopLogger()
	}

	return &realMirror{
		git:       gitInstance,
		fs:        fsInstance,
		logger:    lg,
		remoteURL: params.RemoteURL,
		path:      params.Path,
		temporary: params.Path == "",
		refs:      make(map[string]string),
	}
}

// Path returns the path of the bare repository.
func (m *realMirror) Path() string {
	return m.path
}

// Ref returns the commit a fetched ref points to.
func (m *realMirror) Ref(name string) (string, bool) {
	sha1, ok := m.refs[name]
	return sha1, ok
}

// Close releases the mirror. Persistent mirrors are kept on disk.
func (m *realMirror) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.refs = make(map[string]string)

	if !m.temporary || !m.initialized {
		return nil
	}

	m.logger.Logf("Removing temporary mirror %s", m.path)
	if err := m.fs.RemoveAll(m.path); err != nil {
		return fmt.Errorf("failed to remove mirror %s: %w", m.path, err)
	}
	return nil
}

// ensureInitialized creates the bare repository on first use.
func (m *realMirror) ensureInitialized() error {
	if m.closed {
		return ErrClosed
	}
	if m.initialized {
		return nil
	}

	if m.temporary {
		path, err := m.fs.MkdirTemp("prorigin-mirror-*")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMirrorInit, err)
		}
		m.path = path
	}

	m.logger.Logf("Initializing mirror at %s", m.path)
	if err := m.git.InitBare(m.path); err != nil {
		return fmt.Errorf("%w: %w", ErrMirrorInit, err)
	}

	m.initialized = true
	return nil
}
