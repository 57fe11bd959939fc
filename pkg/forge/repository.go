package forge

import (
	"fmt"
	"regexp"
)

// repositoryURLPattern matches HTTPS and SSH repository URLs:
// https://github.com/owner/repo(.git) and git@github.com:owner/repo(.git).
var repositoryURLPattern = regexp.MustCompile(`^(?:https?://|git@)([^/:@]+)[/:]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// Repository identifies a repository on a forge.
type Repository struct {
	Host  string
	Owner string
	Name  string
}

// ParseRepositoryURL parses a repository URL into its components.
func ParseRepositoryURL(repoURL string) (*Repository, error) {
	matches := repositoryURLPattern.FindStringSubmatch(repoURL)
	if matches == nil {
		return nil, fmt.Errorf("%w: %s (expected: https://github.com/owner/repo)", ErrInvalidRepositoryURL, repoURL)
	}

	return &Repository{
		Host:  matches[1],
		Owner: matches[2],
		Name:  matches[3],
	}, nil
}

// FullName returns the owner/name form of the repository.
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// URL returns the canonical web URL of the repository.
func (r *Repository) URL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.Host, r.Owner, r.Name)
}

// PullRequestURL returns the canonical web URL of a pull request.
func (r *Repository) PullRequestURL(number int) string {
	return fmt.Sprintf("%s/pull/%d", r.URL(), number)
}
