package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk searches the folder tree rooted at root for the session's term.
// Skipped directories are pruned without being counted; kept directories
// increment the folder counter. When recurse is false only root itself is
// searched. Every in-scope file is extracted and its byte/line totals
// recorded whether or not it matched; each match is handed to the
// session's printer in traversal order and collected in the returned
// slice.
//
// Enumeration order is whatever the underlying storage exposes; callers
// must not rely on match sequence order.
//
// Per-file extraction problems are reported as warnings and never abort
// the walk. An empty search term returns immediately with no traversal.
func (s *Session) Walk(root string, recurse bool) ([]Match, error) {
	if s.Term == "" {
		return nil, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	var matches []Match
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.warnf("cannot access %s: %v", path, err)
			return nil // keep walking
		}

		if d.IsDir() {
			// The classifier applies to subdirectories only; an
			// explicitly requested root is always searched.
			if path != root {
				if SkipDir(d.Name(), s.Skipped) {
					return filepath.SkipDir
				}
				if !recurse {
					return filepath.SkipDir
				}
			}
			s.recordFolder()
			return nil
		}

		if !InScope(d.Name(), s.Extensions) {
			return nil
		}

		ex, exErr := Extract(path, s.Term)
		s.recordFile(ex.Bytes, ex.Lines)
		if exErr != nil {
			s.warnf("skipping file: %v", exErr)
			return nil
		}

		for _, m := range ex.Matches {
			if s.Printer != nil {
				s.Printer.PrintMatch(m)
			}
			matches = append(matches, m)
		}
		return nil
	})
	if err != nil {
		return matches, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return matches, nil
}
