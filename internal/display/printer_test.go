package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmahugh/pyfind/internal/search"
)

// disableColor forces plain output for the duration of a test so
// assertions can compare literal strings.
func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func lineMatch(folder, filename string, line int, text, term string) search.Match {
	return search.Match{
		File:     folder + "/" + filename,
		Folder:   folder,
		Filename: filename,
		Text:     text,
		Location: search.Location{Kind: search.LineLocation, Index: line},
		Term:     term,
	}
}

func newTestPrinter(out *bytes.Buffer, showHeaders, showHits bool) *Printer {
	return NewPrinter(out, DefaultScheme(), 12, 80, showHeaders, showHits)
}

func TestPrinterHeadersOnlyOnChange(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, true, true)

	p.PrintMatch(lineMatch("/proj", "a.py", 3, "import pathlib", "pathlib"))
	p.PrintMatch(lineMatch("/proj", "a.py", 9, "from pathlib import Path", "pathlib"))
	p.PrintMatch(lineMatch("/proj", "b.py", 1, "import pathlib", "pathlib"))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "/proj\n"), "folder header should print once")
	assert.Equal(t, 1, strings.Count(text, "a.py\n"))
	assert.Equal(t, 1, strings.Count(text, "b.py\n"))
	assert.Contains(t, text, "     line 3: import pathlib")
	assert.Contains(t, text, "     line 9: from pathlib import Path")
}

func TestPrinterFolderChangeReannouncesFilename(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, true, true)

	// same filename under two folders must be announced under each
	p.PrintMatch(lineMatch("/proj/one", "util.py", 1, "import pathlib", "pathlib"))
	p.PrintMatch(lineMatch("/proj/two", "util.py", 1, "import pathlib", "pathlib"))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "util.py\n"))
	assert.Contains(t, text, "/proj/one")
	assert.Contains(t, text, "/proj/two")
}

func TestPrinterLabelColumn(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, false, true)

	p.PrintMatch(lineMatch("/p", "a.py", 3, "import pathlib", "pathlib"))
	p.PrintMatch(search.Match{
		Folder: "/p", Filename: "n.ipynb", File: "/p/n.ipynb",
		Text:     "import requests",
		Location: search.Location{Kind: search.CellLocation, Index: 1},
		Term:     "requests",
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// labels right-justified to the 12-character prefix column
	assert.Equal(t, "     line 3: import pathlib", lines[0])
	assert.Equal(t, "     cell 1: import requests", lines[1])
}

func TestPrinterTrimsMatchText(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, false, true)

	p.PrintMatch(lineMatch("/p", "a.py", 1, "    indented pathlib line   \n", "pathlib"))

	assert.Contains(t, out.String(), "     line 1: indented pathlib line\n")
}

func TestPrinterSuppression(t *testing.T) {
	disableColor(t)

	t.Run("no headers", func(t *testing.T) {
		var out bytes.Buffer
		p := newTestPrinter(&out, false, true)
		p.PrintMatch(lineMatch("/proj", "a.py", 3, "import pathlib", "pathlib"))

		text := out.String()
		assert.NotContains(t, text, "a.py")
		assert.NotContains(t, text, "/proj")
		assert.Contains(t, text, "line 3:")
	})

	t.Run("no hits", func(t *testing.T) {
		var out bytes.Buffer
		p := newTestPrinter(&out, true, false)
		p.PrintMatch(lineMatch("/proj", "a.py", 3, "import pathlib", "pathlib"))

		text := out.String()
		assert.Contains(t, text, "a.py")
		assert.NotContains(t, text, "line 3:")
	})

	t.Run("neither", func(t *testing.T) {
		var out bytes.Buffer
		p := newTestPrinter(&out, false, false)
		p.PrintMatch(lineMatch("/proj", "a.py", 3, "import pathlib", "pathlib"))

		assert.Empty(t, out.String())
	})
}

func TestPrinterLongLineBounded(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, false, true)

	long := strings.Repeat("x", 300) + "pathlib" + strings.Repeat("y", 300)
	p.PrintMatch(lineMatch("/p", "a.py", 1, long, "pathlib"))

	line := strings.TrimRight(out.String(), "\n")
	assert.LessOrEqual(t, len(line), 80)
	assert.Contains(t, line, "pathlib")
}

func TestPrintWarning(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, true, true)

	p.PrintWarning("skipping /nope: no such folder")

	assert.Equal(t, "skipping /nope: no such folder\n", out.String())
}

func TestPrintSummaryRightJustified(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, true, true)

	p.PrintSummary("2 folders / 3 files / 40 lines / 512 bytes scanned")

	line := strings.TrimRight(out.String(), "\n")
	assert.Len(t, line, 80)
	assert.True(t, strings.HasSuffix(line, "512 bytes scanned"))
	assert.True(t, strings.HasPrefix(line, " "))
}

func TestPrinterFolderHeaderRule(t *testing.T) {
	disableColor(t)
	var out bytes.Buffer
	p := newTestPrinter(&out, true, false)

	p.PrintMatch(lineMatch("/proj", "a.py", 1, "x", "x"))

	header := strings.Split(out.String(), "\n")[0]
	assert.True(t, strings.HasSuffix(header, " /proj"))
	assert.Len(t, header, 80)
	assert.True(t, strings.HasPrefix(header, "----"))
}
