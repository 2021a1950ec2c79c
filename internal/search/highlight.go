package search

import "strings"

// Role classifies a highlighted segment for rendering.
type Role int

const (
	// Plain is ordinary window text.
	Plain Role = iota
	// Matched is the first occurrence of the search term in the window.
	Matched
)

// Segment is one run of window text with its rendering role.
type Segment struct {
	Text string
	Role Role
}

// Highlight fits line into at most maxWidth characters while guaranteeing
// the first case-insensitive occurrence of term inside the chosen window
// is flagged Matched. The window is chosen in priority order: the front of
// the line if the term occurs there, then the tail, then a window centered
// on the match midpoint, shifted as needed to stay within line bounds.
// The concatenation of the returned segments is exactly the window.
//
// Only the first occurrence in the window is flagged; later occurrences on
// the same line render as plain text.
func Highlight(line, term string, maxWidth int) []Segment {
	if term == "" || maxWidth <= 0 {
		return []Segment{{Text: line, Role: Plain}}
	}

	lowerTerm := strings.ToLower(term)

	var window string
	switch {
	case len(line) <= maxWidth:
		window = line
	case strings.Contains(strings.ToLower(line[:maxWidth]), lowerTerm):
		window = line[:maxWidth]
	case strings.Contains(strings.ToLower(line[len(line)-maxWidth:]), lowerTerm):
		window = line[len(line)-maxWidth:]
	default:
		start := strings.Index(strings.ToLower(line), lowerTerm)
		if start < 0 {
			// term not in line at all; show the front
			return []Segment{{Text: line[:maxWidth], Role: Plain}}
		}
		center := start + len(term)/2
		from := center - maxWidth/2
		// shift the window back inside the line, keeping the match in view
		if from+maxWidth > len(line) {
			from = len(line) - maxWidth
		}
		if from < 0 {
			from = 0
		}
		window = line[from : from+maxWidth]
	}

	idx := strings.Index(strings.ToLower(window), lowerTerm)
	if idx < 0 {
		return []Segment{{Text: window, Role: Plain}}
	}

	segments := make([]Segment, 0, 3)
	if idx > 0 {
		segments = append(segments, Segment{Text: window[:idx], Role: Plain})
	}
	segments = append(segments, Segment{Text: window[idx : idx+len(term)], Role: Matched})
	if rest := window[idx+len(term):]; rest != "" {
		segments = append(segments, Segment{Text: rest, Role: Plain})
	}
	return segments
}
