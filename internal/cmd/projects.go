package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmahugh/pyfind/internal/search"
)

// NewProjectsCommand creates the projects command
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects <searchfor>",
		Short: "Search every project folder listed in the projects file",
		Long: `Search all project root folders for a text string.

Project roots are read from the projects file (one folder per non-empty
line, '#' starts a comment). Counters accumulate across all roots and a
single summary is printed at the end. A listed folder that doesn't exist
is reported and the remaining roots are still searched.`,
		Args: cobra.ExactArgs(1),
		RunE: runProjects,
	}

	addSearchFlags(cmd)
	cmd.Flags().String("projects-file", "", "Path to the project list (default from config)")

	return cmd
}

// runProjects implements the projects command logic
func runProjects(cmd *cobra.Command, args []string) error {
	session, printer, cfg, err := buildSession(cmd, args[0])
	if err != nil {
		return err
	}

	listPath, _ := cmd.Flags().GetString("projects-file")
	if listPath == "" {
		listPath = cfg.ResolveProjectsFile()
	}

	roots, err := search.ReadProjectList(listPath)
	if err != nil {
		return err
	}

	subdirs, _ := cmd.Flags().GetBool("subdirs")
	for _, root := range roots {
		if _, err := session.Walk(root, subdirs); err != nil {
			printer.PrintWarning(fmt.Sprintf("skipping %s: %v", root, err))
		}
	}

	printer.PrintSummary(session.SummaryText())
	return nil
}
