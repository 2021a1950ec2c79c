package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmahugh/pyfind/internal/config"
	"github.com/dmahugh/pyfind/internal/display"
	"github.com/dmahugh/pyfind/internal/search"
)

// defaultConsoleWidth is used when stdout is not a terminal.
const defaultConsoleWidth = 80

// addSearchFlags registers the flags shared by the find and projects
// commands.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("subdirs", "s", false, "Search subdirectories")
	cmd.Flags().StringSlice("ext", nil, "File extensions to search (default from config)")
	cmd.Flags().Bool("nohits", false, "Don't display matching lines")
	cmd.Flags().Bool("nofiles", false, "Don't display folder and filename headers")
	cmd.Flags().String("config", "", "Path to config file (default: ~/.pyfind.yaml)")
}

// buildSession wires a search session and its printer from the config
// file and command flags.
func buildSession(cmd *cobra.Command, term string) (*search.Session, *display.Printer, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	extensions, _ := cmd.Flags().GetStringSlice("ext")
	if len(extensions) == 0 {
		extensions = cfg.Extensions
	}
	noHits, _ := cmd.Flags().GetBool("nohits")
	noFiles, _ := cmd.Flags().GetBool("nofiles")

	scheme := display.SchemeFromNames(cfg.Colors)
	width := display.ConsoleWidth(defaultConsoleWidth)
	printer := display.NewPrinter(cmd.OutOrStdout(), scheme, cfg.PrefixLength, width, !noFiles, !noHits)

	session := search.NewSession(term, extensions, cfg.SkippedFolders)
	session.Printer = printer

	return session, printer, cfg, nil
}
