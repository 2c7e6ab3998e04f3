// Package main provides the entry point for the habitmd CLI.
package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/habitmd/internal/calendar"
	"github.com/gorewood/habitmd/internal/config"
	"github.com/gorewood/habitmd/internal/grid"
	"github.com/gorewood/habitmd/internal/output"
)

// statsColumn is one month or weekday in the stats report.
type statsColumn struct {
	Label string `json:"label"`
	Done  int    `json:"done"`
	Days  int    `json:"days,omitempty"`
}

// statsResult is the stats report, also the --json payload.
type statsResult struct {
	Year        int           `json:"year"`
	Mode        string        `json:"mode"`
	Total       int           `json:"total"`
	OutsideYear int           `json:"outside_year"`
	Columns     []statsColumn `json:"columns"`
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	var yearFlag int
	var weeklyFlag bool

	cmd := &cobra.Command{
		Use:   "stats <yaml_file>",
		Short: "Count completions per month or weekday",
		Long: `Count the completed days in a habit file for one year.

Counts come from the same grids the tables are built from, so they match the
totals row of the monthly table.

Examples:
  habitmd stats running.yaml              # Per-month counts for the current year
  habitmd stats running.yaml -y 2024 -w   # Per-weekday counts for 2024
  habitmd stats running.yaml --json       # Structured output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0], yearFlag, weeklyFlag)
		},
	}

	cmd.Flags().IntVarP(&yearFlag, "year", "y", now().Year(), "Year to count")
	cmd.Flags().BoolVarP(&weeklyFlag, "weekly", "w", false, "Count per weekday instead of per month")

	return cmd
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, path string, year int, weekly bool) error {
	printer := newPrinter(cmd)

	if !cmd.Flags().Changed("weekly") {
		settings, err := config.Load()
		if err != nil {
			userErr := output.NewUserErrorWithCause(err.Error(), err)
			printer.Error(userErr)
			return userErr
		}
		weekly = settings.Weekly
	}

	dates, err := loadDates(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	result := buildStats(dates, year, weekly)
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printStats(printer, result, len(dates))
	return nil
}

// buildStats counts marked cells per column of the selected grid.
func buildStats(dates []calendar.Date, year int, weekly bool) statsResult {
	result := statsResult{
		Year:        year,
		OutsideYear: grid.OutsideYear(dates, year),
	}

	if weekly {
		built := grid.BuildWeekly(dates, year)
		result.Mode = "weekly"
		result.Total = built.Total()
		for i, done := range built.WeekdayTotals() {
			result.Columns = append(result.Columns, statsColumn{Label: grid.DefaultLabels[i], Done: done})
		}
		return result
	}

	built := grid.BuildMonthly(dates, year)
	result.Mode = "monthly"
	result.Total = built.Total()
	for i, done := range built.Totals() {
		result.Columns = append(result.Columns, statsColumn{
			Label: grid.MonthAbbrevs[i],
			Done:  done,
			Days:  calendar.DaysIn(year, time.Month(i+1)),
		})
	}
	return result
}

// printStats renders the human-readable report.
func printStats(printer *output.Printer, result statsResult, inputCount int) {
	if result.Total == 0 && inputCount > 0 {
		printer.Warn("none of the %d dates fall in %d", inputCount, result.Year)
	}

	printer.Section(strconv.Itoa(result.Year) + " " + result.Mode)

	headers := []string{"Weekday", "Done"}
	if result.Mode == "monthly" {
		headers = []string{"Month", "Done", "Days"}
	}

	rows := make([][]string, 0, len(result.Columns))
	for _, column := range result.Columns {
		row := []string{column.Label, strconv.Itoa(column.Done)}
		if result.Mode == "monthly" {
			row = append(row, strconv.Itoa(column.Days))
		}
		rows = append(rows, row)
	}
	printer.Table(headers, rows)

	printer.Println()
	printer.KeyValue("Total", strconv.Itoa(result.Total))
	printer.KeyValue("Outside year", strconv.Itoa(result.OutsideYear))
}
