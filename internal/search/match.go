package search

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// LocationKind distinguishes line-oriented matches from notebook cell matches.
type LocationKind int

const (
	// LineLocation is a 1-based line number in a plain text file.
	LineLocation LocationKind = iota
	// CellLocation is a 0-based code cell index in a notebook file.
	CellLocation
)

// Location identifies where in a file a match was found.
type Location struct {
	Kind  LocationKind
	Index int
}

// String renders the location the way it appears in results: "3" for a
// line number, "Cell 1" for a notebook cell.
func (l Location) String() string {
	if l.Kind == CellLocation {
		return fmt.Sprintf("Cell %d", l.Index)
	}
	return strconv.Itoa(l.Index)
}

// Label returns the left-column display label, e.g. "line 12:" or "cell 3:".
func (l Location) Label() string {
	if l.Kind == CellLocation {
		return fmt.Sprintf("cell %d:", l.Index)
	}
	return fmt.Sprintf("line %d:", l.Index)
}

// Match is one occurrence of the search term in one line or cell fragment.
// The term is stored per-match so highlighting is self-contained.
type Match struct {
	File     string // full path of the searched file
	Folder   string // containing folder of the file
	Filename string // base name of the file
	Text     string // raw matched line or cell source fragment, not trimmed
	Location Location
	Term     string // search term that produced this match
}

func newMatch(path, text string, loc Location, term string) Match {
	return Match{
		File:     path,
		Folder:   filepath.Dir(path),
		Filename: filepath.Base(path),
		Text:     text,
		Location: loc,
		Term:     term,
	}
}
