package artifact

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// SearchMatch is one matching line from a commis artifact file, with the
// surrounding lines for context.
type SearchMatch struct {
	CommisID string   `json:"commis_id"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Content  string   `json:"content"`
	Before   []string `json:"before,omitempty"`
	After    []string `json:"after,omitempty"`
}

// searchMaxMatches caps total results from a single Search call.
const searchMaxMatches = 500

// searchContextLines is how many lines are kept on each side of a match.
const searchContextLines = 2

// Search greps commis artifacts for a regex pattern. fileGlob filters file
// names ("*.txt" by default); commisIDs restricts the search to specific
// commis, otherwise all indexed commis are searched.
func (s *Store) Search(pattern, fileGlob string, commisIDs []string) ([]SearchMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	if fileGlob == "" {
		fileGlob = "*.txt"
	}

	if len(commisIDs) == 0 {
		for _, entry := range s.readIndex() {
			commisIDs = append(commisIDs, entry.CommisID)
		}
	}

	var matches []SearchMatch
	for _, commisID := range commisIDs {
		dir := s.Dir(commisID)
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ok, _ := filepath.Match(fileGlob, d.Name())
			if !ok {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			found, err := grepFile(path, re, commisID, rel, searchMaxMatches-len(matches))
			if err != nil {
				return nil
			}
			matches = append(matches, found...)
			if len(matches) >= searchMaxMatches {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			continue
		}
		if len(matches) >= searchMaxMatches {
			break
		}
	}
	return matches, nil
}

func grepFile(path string, re *regexp.Regexp, commisID, rel string, limit int) ([]SearchMatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var matches []SearchMatch
	for i, line := range lines {
		if !re.MatchString(line) {
			continue
		}
		lo := max(i-searchContextLines, 0)
		hi := min(i+searchContextLines+1, len(lines))
		matches = append(matches, SearchMatch{
			CommisID: commisID,
			File:     rel,
			Line:     i + 1,
			Content:  line,
			Before:   append([]string(nil), lines[lo:i]...),
			After:    append([]string(nil), lines[i+1:hi]...),
		})
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}
