package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pyfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pyfind",
		Short: "Recursive case-insensitive search of Python source trees",
		Long: `Pyfind searches folder trees for a text string and prints every
matching line, or code cell for Jupyter notebook files.

Matching is literal, case-insensitive substring containment. Output groups
hits under folder and filename headers and ends with a one-line summary of
folders, files, lines, and bytes scanned.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewProjectsCommand())

	return cmd
}
