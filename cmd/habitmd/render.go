// Package main provides the entry point for the habitmd CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/habitmd/internal/calendar"
	"github.com/gorewood/habitmd/internal/config"
	"github.com/gorewood/habitmd/internal/export"
	"github.com/gorewood/habitmd/internal/grid"
	"github.com/gorewood/habitmd/internal/habitfile"
	"github.com/gorewood/habitmd/internal/output"
)

// renderOptions holds the root command's flag values.
type renderOptions struct {
	year     int
	emoji    string
	weekly   bool
	japanese bool
	output   string
	format   string
}

// renderResult is the --json payload for a table written to stdout.
type renderResult struct {
	Year    int    `json:"year"`
	Mode    string `json:"mode"`
	Format  string `json:"format"`
	Marked  int    `json:"marked"`
	Content string `json:"content"`
}

// table is a rendered grid before format conversion.
type table struct {
	mode     string
	markdown string
	marked   int
}

// addRenderFlags registers the table flags on the root command.
func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().IntVarP(&opts.year, "year", "y", now().Year(), "Year to build the table for")
	cmd.Flags().StringVarP(&opts.emoji, "emoji", "e", config.DefaultEmoji, "Marker for completed days")
	cmd.Flags().BoolVarP(&opts.weekly, "weekly", "w", false, "Use the weekly template")
	cmd.Flags().BoolVarP(&opts.japanese, "japanese", "j", false, "Use Japanese kanji for the weekday headers")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "File to write the table to (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: md or html (default: from --output extension, else md)")
}

// runRender loads the habit file and writes the table.
func runRender(cmd *cobra.Command, opts *renderOptions, path string) error {
	printer := newPrinter(cmd)

	if err := applySettings(cmd, opts); err != nil {
		printer.Error(err)
		return err
	}

	format, err := export.DetermineFormat(opts.format, opts.output)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	dates, err := loadDates(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	tbl := buildTable(dates, opts)
	content, err := export.Render(format, tbl.markdown)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	if opts.output != "" {
		return writeToFile(printer, opts, tbl, format, content)
	}
	return writeToStdout(printer, opts, tbl, format, content)
}

// applySettings fills flags the user did not set from config.yaml and the
// environment.
func applySettings(cmd *cobra.Command, opts *renderOptions) error {
	settings, err := config.Load()
	if err != nil {
		return output.NewUserErrorWithCause(err.Error(), err)
	}

	flags := cmd.Flags()
	if !flags.Changed("emoji") {
		opts.emoji = settings.Emoji
	}
	if !flags.Changed("weekly") {
		opts.weekly = settings.Weekly
	}
	if !flags.Changed("japanese") {
		opts.japanese = settings.UseAltLabels()
	}
	return nil
}

// loadDates reads the habit file, classifying failures by exit code.
// Unreadable input is a system error; anything else is the user's to fix.
func loadDates(path string) ([]calendar.Date, error) {
	dates, err := habitfile.Load(path)
	if err == nil {
		return dates, nil
	}
	if errors.Is(err, habitfile.ErrUnreadable) {
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	}
	return nil, output.NewUserErrorWithCause(err.Error(), err)
}

// buildTable lays dates out in the selected template.
func buildTable(dates []calendar.Date, opts *renderOptions) table {
	if opts.weekly {
		weekly := grid.BuildWeekly(dates, opts.year)
		return table{
			mode:     "weekly",
			markdown: weekly.Markdown(opts.emoji, grid.LabelsFor(opts.japanese)),
			marked:   weekly.Total(),
		}
	}

	monthly := grid.BuildMonthly(dates, opts.year)
	return table{
		mode:     "monthly",
		markdown: monthly.Markdown(opts.emoji),
		marked:   monthly.Total(),
	}
}

// writeToStdout prints the table, or its JSON envelope with --json.
func writeToStdout(printer *output.Printer, opts *renderOptions, tbl table, format export.Format, content string) error {
	if printer.IsJSON() {
		return printer.WriteJSON(renderResult{
			Year:    opts.year,
			Mode:    tbl.mode,
			Format:  string(format),
			Marked:  tbl.marked,
			Content: content,
		})
	}
	printer.Println(content)
	return nil
}

// writeToFile writes the table to --output and reports where it went.
func writeToFile(printer *output.Printer, opts *renderOptions, tbl table, format export.Format, content string) error {
	if err := export.WriteFile(opts.output, content); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("Wrote %s table to %s", tbl.mode, opts.output),
			"path":    opts.output,
			"format":  string(format),
			"marked":  tbl.marked,
		})
	}
	printer.Stderr("Wrote %s table for %d to %s\n", tbl.mode, opts.year, opts.output)
	return nil
}
