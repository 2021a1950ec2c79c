package search

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// notebook models the subset of the Jupyter document format the search
// needs: an ordered list of cells, each with a type and source text.
type notebook struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string      `json:"cell_type"`
	Source   sourceLines `json:"source"`
}

// sourceLines accepts both encodings notebooks use for cell source: a
// JSON array of fragments or a single string.
type sourceLines []string

func (s *sourceLines) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = sourceLines{single}
	return nil
}

// extractNotebook parses the whole file as JSON and examines the source
// fragments of every code cell. A malformed notebook is an error for this
// file only; the walker logs it and moves on.
func extractNotebook(path, term string, ex *Extraction) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read notebook %s: %w", path, err)
	}

	var nb notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return fmt.Errorf("failed to parse notebook %s: %w", path, err)
	}

	lowerTerm := strings.ToLower(term)
	for i, cell := range nb.Cells {
		if cell.CellType != "code" {
			continue
		}
		for _, src := range cell.Source {
			ex.Lines++
			if strings.Contains(strings.ToLower(src), lowerTerm) {
				loc := Location{Kind: CellLocation, Index: i}
				ex.Matches = append(ex.Matches, newMatch(path, src, loc, term))
			}
		}
	}
	return nil
}
