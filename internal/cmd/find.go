package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <searchfor> [startdir]",
		Short: "Search a folder tree for a text string",
		Long: `Search the files under a folder for a text string.

SEARCHFOR is the text to search for (not case-sensitive) and STARTDIR is
the folder to be searched, defaulting to the current directory. Files are
selected by extension (.py and .ipynb unless configured otherwise); for
notebook files the code cells are searched.

Examples:
  pyfind find pathlib                 # search *.py/*.ipynb in .
  pyfind find "import os" ~/src -s    # include subdirectories
  pyfind find requests . --ext .py --ext .txt
  pyfind find todo . --nohits         # only folders, files, summary`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFind,
	}

	addSearchFlags(cmd)

	return cmd
}

// runFind implements the find command logic
func runFind(cmd *cobra.Command, args []string) error {
	term := args[0]
	start := "."
	if len(args) == 2 {
		start = args[1]
	}

	session, printer, _, err := buildSession(cmd, term)
	if err != nil {
		return err
	}

	subdirs, _ := cmd.Flags().GetBool("subdirs")
	if _, err := session.Walk(start, subdirs); err != nil {
		// a bad start folder is reported, not fatal
		printer.PrintWarning(fmt.Sprintf("cannot search %s: %v", start, err))
	}

	printer.PrintSummary(session.SummaryText())
	return nil
}
