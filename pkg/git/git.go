package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides the Git plumbing used to stage pull request refs in a mirror.
type Git interface {
	// InitBare executes `git init --bare` at the specified path, creating the directory if needed.
	InitBare(repoPath string) error

	// FetchRefs fetches the given refspecs from a remote URL into the repository.
	FetchRefs(params FetchRefsParams) error

	// ResolveCommit resolves a revision to the full sha1 of the commit it points to.
	ResolveCommit(repoPath, rev string) (string, error)

	// IsAncestor checks if ancestor is reachable from descendant.
	IsAncestor(repoPath, ancestor, descendant string) (bool, error)

	// MergeBase gets the best common ancestor of two commits.
	MergeBase(repoPath, first, second string) (string, error)

	// Log lists the commits of a revision range, oldest first.
	Log(params LogParams) ([]Commit, error)

	// CheckoutTree writes the tree of a revision into a directory outside the repository.
	CheckoutTree(params CheckoutTreeParams) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
