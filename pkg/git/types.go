package git

import "time"

// FetchRefsParams contains parameters for FetchRefs.
type FetchRefsParams struct {
	RepoPath  string
	RemoteURL string
	Refspecs  []string
}

// LogParams contains parameters for Log.
// Commits reachable from Exclude are left out; an empty Exclude lists the whole history of Head.
type LogParams struct {
	RepoPath string
	Head     string
	Exclude  string
}

// CheckoutTreeParams contains parameters for CheckoutTree.
type CheckoutTreeParams struct {
	RepoPath string
	Rev      string
	WorkTree string
}

// Commit is a single entry of a commit log.
type Commit struct {
	SHA1        string
	AuthorName  string
	AuthorEmail string
	AuthorDate  time.Time
	Message     string
}
