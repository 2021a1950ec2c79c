// Package search implements the pyfind engine: recursive folder traversal
// with a skip-list, per-file content extraction for plain text and Jupyter
// notebook files, case-insensitive substring matching, and a windowed
// highlighter that fits long matched lines into a bounded display width.
//
// All matching is literal, case-insensitive containment; there is no regex
// or fuzzy matching, no index, and no persisted state. A Session carries the
// search configuration and running totals across one or more Walk calls and
// is strictly single-threaded.
package search
