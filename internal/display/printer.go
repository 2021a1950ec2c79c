package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmahugh/pyfind/internal/search"
)

// sentinel can never equal a real path or filename, so the first match of
// a session always prints both headers.
const sentinel = "\x00"

// minDashes is the shortest folder-header rule printed before long paths.
const minDashes = 4

// Printer writes folder headers, filename headers, and highlighted match
// lines as the walker reports matches. Headers print only when the folder
// or filename changes; a folder change resets the filename state so a
// same-named file under a different folder is always re-announced.
type Printer struct {
	out          io.Writer
	scheme       *Scheme
	prefixWidth  int // width of the right-justified "line N:" label column
	consoleWidth int
	showHeaders  bool
	showHits     bool

	lastFolder   string
	lastFilename string
}

// NewPrinter creates a printer for one session's output. prefixWidth is
// the label column width; consoleWidth bounds the full match line.
func NewPrinter(out io.Writer, scheme *Scheme, prefixWidth, consoleWidth int, showHeaders, showHits bool) *Printer {
	return &Printer{
		out:          out,
		scheme:       scheme,
		prefixWidth:  prefixWidth,
		consoleWidth: consoleWidth,
		showHeaders:  showHeaders,
		showHits:     showHits,
		lastFolder:   sentinel,
		lastFilename: sentinel,
	}
}

// PrintMatch displays one search hit, printing folder and filename
// headers first when they differ from the previously printed ones.
func (p *Printer) PrintMatch(m search.Match) {
	if p.showHeaders {
		if m.Folder != p.lastFolder {
			p.printFolderHeader(m.Folder)
			p.lastFolder = m.Folder
			p.lastFilename = sentinel
		}
		if m.Filename != p.lastFilename {
			p.scheme.Filename.Fprintln(p.out, m.Filename)
			p.lastFilename = m.Filename
		}
	}

	if !p.showHits {
		return
	}

	label := rightJustify(m.Location.Label(), p.prefixWidth)
	p.scheme.MatchLine.Fprint(p.out, label)

	maxWidth := p.consoleWidth - len(label)
	for _, seg := range search.Highlight(strings.TrimSpace(m.Text), m.Term, maxWidth) {
		if seg.Role == search.Matched {
			p.scheme.MatchText.Fprint(p.out, seg.Text)
		} else {
			p.scheme.MatchLine.Fprint(p.out, seg.Text)
		}
	}
	fmt.Fprintln(p.out)
}

// PrintWarning displays a non-fatal problem (unreadable file, malformed
// notebook, missing project folder).
func (p *Printer) PrintWarning(msg string) {
	p.scheme.Warning.Fprintln(p.out, msg)
}

// PrintSummary displays the session totals right-justified to the
// console width.
func (p *Printer) PrintSummary(text string) {
	if pad := p.consoleWidth - len(text); pad > 0 {
		text = strings.Repeat(" ", pad) + text
	}
	p.scheme.Summary.Fprintln(p.out, text)
}

// printFolderHeader writes a dashed rule ending with the folder path so
// folder boundaries stand out in scrolling output.
func (p *Printer) printFolderHeader(folder string) {
	dashes := p.consoleWidth - len(folder) - 1
	if dashes < minDashes {
		dashes = minDashes
	}
	p.scheme.Folder.Fprintf(p.out, "%s %s\n", strings.Repeat("-", dashes), folder)
}

// rightJustify pads s on the left to width and appends a separating
// space, matching the fixed label column of the output format.
func rightJustify(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return strings.Repeat(" ", width-len(s)) + s + " "
}
