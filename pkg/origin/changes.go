package origin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lerenn/pr-origin/pkg/git"
)

// Change is a commit introduced by a revision.
type Change struct {
	SHA1        string
	AuthorName  string
	AuthorEmail string
	Date        time.Time
	Message     string
}

// Author returns the author identity as "Name <email>".
func (c Change) Author() string {
	return fmt.Sprintf("%s <%s>", c.AuthorName, c.AuthorEmail)
}

// Summary returns the first line of the commit message.
func (c Change) Summary() string {
	summary, _, _ := strings.Cut(c.Message, "\n")
	return summary
}

// Changes lists the commits reachable from head but not from baseline, oldest first.
// When baseline is not an ancestor of head, their merge base is used as the lower bound so that
// commits of a diverged baseline branch never show up. Without common history, the whole
// history of head is returned.
func (o *realOrigin) Changes(baseline, head *Revision) ([]Change, error) {
	if baseline == nil || head == nil {
		return nil, fmt.Errorf("%w: changes need a baseline and a head", ErrInvalidRevision)
	}
	if baseline.SHA1() == head.SHA1() {
		return []Change{}, nil
	}

	repoPath := o.mirror.Path()
	exclude, err := o.changesLowerBound(repoPath, baseline.SHA1(), head.SHA1())
	if err != nil {
		return nil, err
	}

	commits, err := o.git.Log(git.LogParams{
		RepoPath: repoPath,
		Head:     head.SHA1(),
		Exclude:  exclude,
	})
	if err != nil {
		return nil, err
	}

	changes := make([]Change, 0, len(commits))
	for _, commit := range commits {
		changes = append(changes, Change{
			SHA1:        commit.SHA1,
			AuthorName:  commit.AuthorName,
			AuthorEmail: commit.AuthorEmail,
			Date:        commit.AuthorDate,
			Message:     commit.Message,
		})
	}
	return changes, nil
}

// changesLowerBound returns the commit whose history is excluded from the changes, empty for none.
func (o *realOrigin) changesLowerBound(repoPath, baseline, head string) (string, error) {
	isAncestor, err := o.git.IsAncestor(repoPath, baseline, head)
	if err != nil {
		return "", err
	}
	if isAncestor {
		return baseline, nil
	}

	mergeBase, err := o.git.MergeBase(repoPath, baseline, head)
	if errors.Is(err, git.ErrNoCommonAncestor) {
		o.logger.Logf("%s and %s share no history, listing every commit of %s", baseline, head, head)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	o.logger.Logf("%s is not an ancestor of %s, using merge base %s", baseline, head, mergeBase)
	return mergeBase, nil
}
