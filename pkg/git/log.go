package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	logFieldSeparator  = "\x1f"
	logRecordSeparator = "\x1e"
	logFields          = 5
)

// logFormat prints hash, author name, author email, author timestamp and raw message.
var logFormat = strings.Join([]string{"%H", "%an", "%ae", "%at", "%B"}, "%x1f") + "%x1e"

// Log lists the commits of a revision range, oldest first.
func (g *realGit) Log(params LogParams) ([]Commit, error) {
	revRange := params.Head
	if params.Exclude != "" {
		revRange = params.Exclude + ".." + params.Head
	}

	output, err := g.runGit(params.RepoPath, nil, "log", "--reverse", "--format="+logFormat, revRange, "--")
	if err != nil {
		return nil, err
	}
	return parseLog(output)
}

// parseLog parses the output produced by logFormat.
func parseLog(output string) ([]Commit, error) {
	commits := []Commit{}
	for _, record := range strings.Split(output, logRecordSeparator) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}

		fields := strings.SplitN(record, logFieldSeparator, logFields)
		if len(fields) != logFields {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLogEntry, record)
		}

		timestamp, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid author date %q", ErrMalformedLogEntry, fields[3])
		}

		commits = append(commits, Commit{
			SHA1:        fields[0],
			AuthorName:  fields[1],
			AuthorEmail: fields[2],
			AuthorDate:  time.Unix(timestamp, 0).UTC(),
			Message:     strings.TrimRight(fields[4], "\n"),
		})
	}
	return commits, nil
}
