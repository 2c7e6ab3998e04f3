package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/habitmd/internal/calendar"
	"github.com/gorewood/habitmd/internal/config"
	"github.com/gorewood/habitmd/internal/grid"
	"github.com/gorewood/habitmd/internal/habitfile"
)

// --- render_grid tool ---

// RenderInput is the input for the render_grid tool.
type RenderInput struct {
	Dates     []string `json:"dates"                jsonschema:"completion dates as YYYY-MM-DD or RFC 3339 timestamps"`
	Year      int      `json:"year"                 jsonschema:"year to lay out; dates from other years are ignored"`
	Marker    string   `json:"marker,omitempty"     jsonschema:"cell content for completed days (default ✅)"`
	Weekly    bool     `json:"weekly,omitempty"     jsonschema:"use the week-by-weekday layout instead of month-by-day"`
	AltLabels bool     `json:"alt_labels,omitempty" jsonschema:"use Japanese weekday labels in the weekly layout"`
}

// RenderOutput is the output for the render_grid tool.
type RenderOutput struct {
	Markdown string `json:"markdown" jsonschema:"the rendered markdown table"`
	Marked   int    `json:"marked"   jsonschema:"number of marked cells"`
}

func handleRenderGrid(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
	dates, err := parseDates(input.Dates)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	marker := input.Marker
	if marker == "" {
		marker = config.DefaultEmoji
	}

	if input.Weekly {
		weekly := grid.BuildWeekly(dates, input.Year)
		return nil, RenderOutput{
			Markdown: weekly.Markdown(marker, grid.LabelsFor(input.AltLabels)),
			Marked:   weekly.Total(),
		}, nil
	}

	monthly := grid.BuildMonthly(dates, input.Year)
	return nil, RenderOutput{
		Markdown: monthly.Markdown(marker),
		Marked:   monthly.Total(),
	}, nil
}

// --- grid_stats tool ---

// StatsInput is the input for the grid_stats tool.
type StatsInput struct {
	Dates  []string `json:"dates"            jsonschema:"completion dates as YYYY-MM-DD or RFC 3339 timestamps"`
	Year   int      `json:"year"             jsonschema:"year to count"`
	Weekly bool     `json:"weekly,omitempty" jsonschema:"count per weekday instead of per month"`
}

// StatsOutput is the output for the grid_stats tool.
type StatsOutput struct {
	Total       int      `json:"total"        jsonschema:"number of marked cells"`
	Labels      []string `json:"labels"       jsonschema:"column labels (months or weekdays)"`
	Columns     []int    `json:"columns"      jsonschema:"marked cells per column, aligned with labels"`
	OutsideYear int      `json:"outside_year" jsonschema:"number of input dates not in the requested year"`
}

func handleGridStats(_ context.Context, _ *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
	dates, err := parseDates(input.Dates)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	out := StatsOutput{OutsideYear: grid.OutsideYear(dates, input.Year)}
	if input.Weekly {
		weekly := grid.BuildWeekly(dates, input.Year)
		totals := weekly.WeekdayTotals()
		out.Total = weekly.Total()
		out.Labels = append([]string(nil), grid.DefaultLabels[:]...)
		out.Columns = totals[:]
		return nil, out, nil
	}

	monthly := grid.BuildMonthly(dates, input.Year)
	totals := monthly.Totals()
	out.Total = monthly.Total()
	out.Labels = append([]string(nil), grid.MonthAbbrevs[:]...)
	out.Columns = totals[:]
	return nil, out, nil
}

// parseDates converts tool input strings into dates.
func parseDates(values []string) ([]calendar.Date, error) {
	dates := make([]calendar.Date, 0, len(values))
	for i, value := range values {
		d, err := habitfile.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("dates[%d]: %w", i, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
