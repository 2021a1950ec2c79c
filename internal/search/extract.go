package search

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// notebookExt is the extension that selects the notebook extraction
// strategy; everything else in scope is treated as line-oriented text.
const notebookExt = ".ipynb"

// maxLineBytes bounds a single scanned line. Longer lines fail the scan
// for that file only.
const maxLineBytes = 1024 * 1024

// Extraction is the result of scanning one file's content.
type Extraction struct {
	Matches []Match
	Lines   int   // lines or cell source fragments examined, matched or not
	Bytes   int64 // file size from metadata
}

// Extract scans a single file for the term and returns every match along
// with the line and byte totals for the file. The byte count comes from
// file metadata and is valid even when the content cannot be decoded or
// parsed; in that case Extract returns the partial Extraction together
// with the error so callers can still account for the bytes.
func Extract(path, term string) (Extraction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to access %s: %w", path, err)
	}

	ex := Extraction{Bytes: info.Size()}
	if strings.EqualFold(filepath.Ext(path), notebookExt) {
		err = extractNotebook(path, term, &ex)
	} else {
		err = extractLines(path, term, &ex)
	}
	return ex, err
}

// extractLines enumerates the file's lines with 1-based line numbers.
// Undecodable byte sequences are replaced rather than treated as errors.
func extractLines(path, term string, ex *Extraction) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lowerTerm := strings.ToLower(term)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ToValidUTF8(scanner.Text(), string(utf8.RuneError))
		if strings.Contains(strings.ToLower(line), lowerTerm) {
			loc := Location{Kind: LineLocation, Index: lineNo}
			ex.Matches = append(ex.Matches, newMatch(path, line, loc, term))
		}
	}
	ex.Lines = lineNo

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
