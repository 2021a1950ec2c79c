package display

import (
	"strings"

	"github.com/fatih/color"
)

// Scheme defines consistent colors for each kind of console output.
// Folder and filename headers, match lines, the highlighted match text,
// the summary line, and warnings each get their own role so the mapping
// can be overridden from the config file.
type Scheme struct {
	Folder    *color.Color
	Filename  *color.Color
	MatchLine *color.Color
	MatchText *color.Color
	Summary   *color.Color
	Warning   *color.Color
}

// DefaultScheme creates the standard color scheme.
func DefaultScheme() *Scheme {
	return &Scheme{
		Folder:    color.New(color.FgGreen),
		Filename:  color.New(color.FgWhite),
		MatchLine: color.New(color.FgCyan),
		MatchText: color.New(color.FgGreen),
		Summary:   color.New(color.FgGreen),
		Warning:   color.New(color.FgRed),
	}
}

var colorsByName = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// SchemeFromNames builds a scheme from a role -> color-name map, as read
// from the config file. Unknown roles and unknown color names are ignored
// and keep their defaults.
func SchemeFromNames(names map[string]string) *Scheme {
	s := DefaultScheme()
	for role, name := range names {
		attr, ok := colorsByName[strings.ToLower(name)]
		if !ok {
			continue
		}
		c := color.New(attr)
		switch role {
		case "folder":
			s.Folder = c
		case "filename":
			s.Filename = c
		case "match_line":
			s.MatchLine = c
		case "match_text":
			s.MatchText = c
		case "summary":
			s.Summary = c
		case "warning":
			s.Warning = c
		}
	}
	return s
}
