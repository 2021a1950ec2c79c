package search

import "fmt"

// MatchPrinter receives matches and warnings as the walker finds them.
// Implemented by display.Printer; a nil printer disables all output.
type MatchPrinter interface {
	PrintMatch(m Match)
	PrintWarning(msg string)
}

// Session carries search configuration, running totals, and the output
// sink across one or more folder walks sharing a single invocation.
// Counters only ever increase and accumulate across all walks.
type Session struct {
	Term       string
	Extensions map[string]bool
	Skipped    map[string]bool

	FoldersScanned int
	FilesScanned   int
	LinesScanned   int
	BytesScanned   int64

	// Printer receives matches and warnings in traversal order. Optional.
	Printer MatchPrinter
}

// NewSession creates a session for one search term. The extension list
// is normalized via ExtensionSet; skippedFolders feeds the path
// classifier (use DefaultSkippedFolders when in doubt).
func NewSession(term string, extensions, skippedFolders []string) *Session {
	skipped := make(map[string]bool, len(skippedFolders))
	for _, name := range skippedFolders {
		skipped[name] = true
	}
	return &Session{
		Term:       term,
		Extensions: ExtensionSet(extensions),
		Skipped:    skipped,
	}
}

func (s *Session) recordFolder() {
	s.FoldersScanned++
}

func (s *Session) recordFile(bytes int64, lines int) {
	s.FilesScanned++
	s.BytesScanned += bytes
	s.LinesScanned += lines
}

func (s *Session) warnf(format string, args ...any) {
	if s.Printer != nil {
		s.Printer.PrintWarning(fmt.Sprintf(format, args...))
	}
}

// SummaryText returns the single summary line for the session totals.
func (s *Session) SummaryText() string {
	return fmt.Sprintf("%d folders / %d files / %d lines / %d bytes scanned",
		s.FoldersScanned, s.FilesScanned, s.LinesScanned, s.BytesScanned)
}
