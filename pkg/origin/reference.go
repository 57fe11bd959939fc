package origin

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lerenn/pr-origin/pkg/forge"
)

// ReferenceKind is the kind of a parsed reference.
type ReferenceKind int

const (
	// ReferenceUnrecognized is an input matching no known form.
	ReferenceUnrecognized ReferenceKind = iota
	// ReferencePullRequest designates a pull request by number.
	ReferencePullRequest
	// ReferenceCommit designates a commit that must already be in the mirror.
	ReferenceCommit
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferencePullRequest:
		return "pull request"
	case ReferenceCommit:
		return "commit"
	default:
		return "unrecognized"
	}
}

// Reference is the parsed form of a user supplied reference.
type Reference struct {
	Kind  ReferenceKind
	Input string
	// PRNumber is set for ReferencePullRequest.
	PRNumber int
	// Commit is the lowercase commit id candidate, set for ReferenceCommit.
	Commit string
}

var (
	numberPattern  = regexp.MustCompile(`^[0-9]+$`)
	headRefPattern = regexp.MustCompile(`^refs/pull/([0-9]+)/head$`)
	commitPattern  = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)
)

type matcher func(input string) (Reference, bool)

// ParseReference parses input into a reference to a pull request of repo or to a commit.
// Forms are tried in order: pull request URL, number, head ref path, commit id.
// A decimal input is always a pull request number, even when it could abbreviate a commit id.
func ParseReference(input string, repo *forge.Repository) Reference {
	trimmed := strings.TrimSpace(input)
	matchers := []matcher{
		urlMatcher(repo),
		numberMatcher,
		headRefMatcher,
		commitMatcher,
	}

	for _, match := range matchers {
		if ref, ok := match(trimmed); ok {
			ref.Input = input
			return ref
		}
	}
	return Reference{Kind: ReferenceUnrecognized, Input: input}
}

func urlMatcher(repo *forge.Repository) matcher {
	if repo == nil {
		return func(string) (Reference, bool) { return Reference{}, false }
	}

	pattern := regexp.MustCompile(`^https?://` +
		regexp.QuoteMeta(repo.Host+"/"+repo.Owner+"/"+repo.Name) +
		`/pull/([0-9]+)/?$`)
	return func(input string) (Reference, bool) {
		groups := pattern.FindStringSubmatch(input)
		if groups == nil {
			return Reference{}, false
		}
		return pullRequestReference(groups[1])
	}
}

func numberMatcher(input string) (Reference, bool) {
	if !numberPattern.MatchString(input) {
		return Reference{}, false
	}
	return pullRequestReference(input)
}

func headRefMatcher(input string) (Reference, bool) {
	groups := headRefPattern.FindStringSubmatch(input)
	if groups == nil {
		return Reference{}, false
	}
	return pullRequestReference(groups[1])
}

// commitMatcher only looks at the first whitespace delimited token,
// so that "<sha1> some description" designates <sha1>.
func commitMatcher(input string) (Reference, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || !commitPattern.MatchString(fields[0]) {
		return Reference{}, false
	}
	return Reference{Kind: ReferenceCommit, Commit: strings.ToLower(fields[0])}, true
}

func pullRequestReference(number string) (Reference, bool) {
	n, err := strconv.Atoi(number)
	if err != nil || n <= 0 {
		return Reference{}, false
	}
	return Reference{Kind: ReferencePullRequest, PRNumber: n}, true
}
