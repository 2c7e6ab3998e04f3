// Package main provides the entry point for the habitmd CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/habitmd/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// now supplies the default --year. Tests replace it.
var now = time.Now

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// newPrinter builds the printer for a command: results on stdout, human
// errors and hints on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command, which renders a habit table.
func newRootCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "habitmd <yaml_file>",
		Short: "Generate habit tracker markdown from a YAML date list",
		Long: `habitmd turns a YAML list of completion dates into a markdown habit tracker.

The monthly template has a row per day of the month, a column per month and a
totals row. The weekly template (--weekly) has a row per week, starting on the
Monday on or before January 1, and a column per weekday.

Examples:
  habitmd running.yaml                       # Monthly table for the current year
  habitmd running.yaml -y 2024 -e 🏃         # Custom year and marker
  habitmd running.yaml --weekly --japanese   # Weekly table with kanji weekdays
  habitmd running.yaml -o running.md         # Write to a file
  habitmd running.yaml -o running.html       # Write an HTML table

Defaults for --emoji, --weekly and --japanese can be set in config.yaml in the
config directory or with HABITMD_EMOJI, HABITMD_WEEKLY and HABITMD_LABELS.`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runRender(cmd, opts, args[0])
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	addRenderFlags(cmd, opts)

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "report", Title: "Report Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newStatsCmd(), "report")
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
