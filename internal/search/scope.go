package search

import (
	"path/filepath"
	"strings"
)

// DefaultSkippedFolders are directory names that are never searched:
// version-control metadata, tool caches, editor state, and archive folders.
var DefaultSkippedFolders = []string{
	".git",
	".mypy_cache",
	".pytest_cache",
	".vscode",
	"__pycache__",
	"archive",
	"backup",
	"backups",
}

// SkipDir reports whether a directory should be skipped entirely. A
// directory is skipped when its base name is in the deny set or when it
// ends with the packaging-metadata suffix.
func SkipDir(name string, skipped map[string]bool) bool {
	if skipped[name] {
		return true
	}
	return strings.HasSuffix(name, ".egg-info")
}

// InScope reports whether a file's lowercased extension (including the
// leading dot) is a member of the extension set.
func InScope(filename string, extensions map[string]bool) bool {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtensionSet builds a lookup set from a list of extensions. Extensions
// are lowercased and a missing leading dot is added.
func ExtensionSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return set
}
