package mirror

import (
	"fmt"
	"slices"

	"github.com/lerenn/pr-origin/pkg/git"
)

// ResolveCommit resolves a revision among the commits reachable from the refs fetched by this instance.
// Objects left in a persistent mirror by earlier runs are not visible.
func (m *realMirror) ResolveCommit(rev string) (string, error) {
	if m.closed {
		return "", ErrClosed
	}
	if !m.initialized || len(m.refs) == 0 {
		return "", fmt.Errorf("%w: %s (empty mirror)", git.ErrReferenceNotFound, rev)
	}

	sha1, err := m.git.ResolveCommit(m.path, rev)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(m.refs))
	for name := range m.refs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		reachable, err := m.git.IsAncestor(m.path, sha1, m.refs[name])
		if err != nil {
			return "", err
		}
		if reachable {
			return sha1, nil
		}
	}

	return "", fmt.Errorf("%w: %s (not fetched by this origin)", git.ErrReferenceNotFound, rev)
}
