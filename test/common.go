//go:build e2e

package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/git"
	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/stretchr/testify/require"
)

const repositoryURL = "https://github.com/google/example"

// pullRequest is a pull request served by the fake GitHub API.
type pullRequest struct {
	Number    int
	State     string
	Title     string
	Labels    []string
	HeadLabel string
	HeadRef   string
	HeadSHA1  string
}

// fakeGitHub serves the issue and pull request resources of google/example.
type fakeGitHub struct {
	server *httptest.Server

	mu           sync.Mutex
	pullRequests map[int]pullRequest
	requests     []string
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	api := &fakeGitHub{pullRequests: make(map[int]pullRequest)}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)
	return api
}

func (f *fakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.URL.Path)

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 5 || parts[0] != "repos" || parts[1] != "google" || parts[2] != "example" {
		http.NotFound(w, r)
		return
	}
	number, err := strconv.Atoi(parts[4])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	pr, ok := f.pullRequests[number]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
		return
	}

	var body any
	switch parts[3] {
	case "issues":
		labels := make([]map[string]any, 0, len(pr.Labels))
		for i, label := range pr.Labels {
			labels = append(labels, map[string]any{"id": 111111 + i, "name": label, "color": "009800"})
		}
		body = map[string]any{
			"number": pr.Number,
			"state":  pr.State,
			"title":  pr.Title,
			"body":   pr.Title,
			"labels": labels,
		}
	case "pulls":
		body = map[string]any{
			"number": pr.Number,
			"state":  pr.State,
			"title":  pr.Title,
			"body":   pr.Title,
			"head":   map[string]any{"label": pr.HeadLabel, "ref": pr.HeadRef, "sha": pr.HeadSHA1},
			"base":   map[string]any{"label": "google:master", "ref": "master"},
		}
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeGitHub) addPullRequest(pr pullRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pr.State == "" {
		pr.State = "open"
	}
	if pr.Title == "" {
		pr.Title = "test summary"
	}
	f.pullRequests[pr.Number] = pr
}

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir   string
	HubPath   string
	MirrorDir string
	API       *fakeGitHub

	// Commits of the hub: base <- one <- two (pull request 123),
	// base <- master change (master), and the merge of 123 into master.
	Base         string
	One          string
	Two          string
	MasterChange string
	Merge        string
}

// setupTestEnvironment creates a hub repository, standing for github.com/google/example, with
// pull request 123 (head and merge refs) and pull request 124 (head ref only).
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()
	tempDir := t.TempDir()
	hub := git.SetupTestRepo(t)

	setup := &TestSetup{
		TempDir:   tempDir,
		HubPath:   hub,
		MirrorDir: filepath.Join(tempDir, "mirrors"),
		API:       newFakeGitHub(t),
	}

	setup.Base = git.CommitFiles(t, hub, "base", map[string]string{"base.txt": "base\n"})

	git.RunGit(t, hub, "checkout", "--quiet", "-b", "example-branch")
	setup.One = git.CommitFiles(t, hub, "one", map[string]string{"one.txt": "one\n"})
	setup.Two = git.CommitFiles(t, hub, "two", map[string]string{"two.txt": "two\n"})

	git.RunGit(t, hub, "checkout", "--quiet", "master")
	setup.MasterChange = git.CommitFiles(t, hub, "master change", map[string]string{"master.txt": "master\n"})

	git.RunGit(t, hub, "checkout", "--quiet", "-b", "merge-123")
	git.RunGit(t, hub, "merge", "--quiet", "--no-ff", "-m", "Merge pull request #123", "example-branch")
	setup.Merge = git.RunGit(t, hub, "rev-parse", "HEAD")
	git.RunGit(t, hub, "checkout", "--quiet", "master")
	git.RunGit(t, hub, "branch", "--quiet", "-D", "merge-123")

	git.RunGit(t, hub, "checkout", "--quiet", "-b", "other-branch", setup.Base)
	other := git.CommitFiles(t, hub, "other", map[string]string{"other.txt": "other\n"})
	git.RunGit(t, hub, "checkout", "--quiet", "master")

	git.UpdateRef(t, hub, "refs/pull/123/head", setup.Two)
	git.UpdateRef(t, hub, "refs/pull/123/merge", setup.Merge)
	git.UpdateRef(t, hub, "refs/pull/124/head", other)

	setup.API.addPullRequest(pullRequest{
		Number:    123,
		Labels:    []string{"foo: yes", "bar: yes"},
		HeadLabel: "googletestuser:example-branch",
		HeadRef:   "example-branch",
		HeadSHA1:  setup.Two,
	})
	setup.API.addPullRequest(pullRequest{
		Number:    124,
		HeadLabel: "googletestuser:other-branch",
		HeadRef:   "other-branch",
		HeadSHA1:  other,
	})

	return setup
}

// newConfig returns a configuration fetching from the hub and reading the fake API.
func (s *TestSetup) newConfig() *config.Config {
	return &config.Config{
		URL:            repositoryURL,
		IntegrateLabel: config.DefaultIntegrateLabel,
		MirrorDir:      s.MirrorDir,
		FetchURL:       s.HubPath,
		APIURL:         s.API.server.URL,
		TokenEnv:       "PRORIGIN_E2E_UNSET_TOKEN",
	}
}

// newOrigin creates an origin on the test environment, after mutate changed its configuration.
func (s *TestSetup) newOrigin(t *testing.T, mutate func(cfg *config.Config)) origin.Origin {
	t.Helper()
	cfg := s.newConfig()
	if mutate != nil {
		mutate(cfg)
	}

	o, err := origin.New(origin.NewOriginParams{Config: cfg})
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

// listFiles returns the relative paths of the regular files below dir, sorted.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func summaries(changes []origin.Change) []string {
	result := make([]string, 0, len(changes))
	for _, change := range changes {
		result = append(result, change.Summary())
	}
	return result
}
