package grid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/habitmd/internal/calendar"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.New(year, month, day)
}

// tableLines splits rendered markdown into lines, dropping the final newline.
func tableLines(t *testing.T, markdown string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(markdown, "\n"), "table should end with a newline")
	return strings.Split(strings.TrimSuffix(markdown, "\n"), "\n")
}

// cellsOf returns the trimmed cell contents of a table line.
func cellsOf(line string) []string {
	parts := strings.Split(line, "|")
	parts = parts[1 : len(parts)-1]
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func TestMonthlyMarkdown_Scenario(t *testing.T) {
	dates := []calendar.Date{date(2024, time.January, 1), date(2024, time.December, 31)}

	markdown := MonthlyMarkdown(dates, 2024, "✅")
	lines := tableLines(t, markdown)

	require.Len(t, lines, 2+31+1)
	assert.Equal(t, "| 2024 | Jan | Feb | Mar | Apr | May | Jun | Jul | Aug | Sep | Oct | Nov | Dec |", lines[0])
	assert.Equal(t, "|"+strings.Repeat(":---:|", 13), lines[1])
	assert.Equal(t, "| 1  | ✅ |   |   |   |   |   |   |   |   |   |   |   |", lines[2])
	assert.Equal(t, "| 31  |   |   |   |   |   |   |   |   |   |   |   | ✅ |", lines[32])
	assert.Equal(t,
		"| **Σ: 2**| **1** | **0** | **0** | **0** | **0** | **0** | **0** | **0** | **0** | **0** | **0** | **1** |",
		lines[33])

	for day := 2; day <= 30; day++ {
		assert.NotContains(t, lines[day+1], "✅", "row for day %d should be empty", day)
	}
}

func TestMonthlyMarkdown_Empty(t *testing.T) {
	for _, year := range []int{0, 1999, 2024, 9999} {
		monthly := BuildMonthly(nil, year)

		assert.Equal(t, 0, monthly.Total())
		assert.Equal(t, [12]int{}, monthly.Totals())

		lines := tableLines(t, monthly.Markdown("X"))
		require.Len(t, lines, 34)
		assert.NotContains(t, strings.Join(lines, "\n"), "X")
		assert.True(t, strings.HasPrefix(lines[33], "| **Σ: 0**"))
		assert.Equal(t, 12, strings.Count(lines[33], "| **0** "))
	}
}

func TestBuildMonthly_SingleDateMarksOneCell(t *testing.T) {
	dates := []calendar.Date{
		date(2023, time.February, 28),
		date(2024, time.July, 4),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
	}

	for _, target := range dates {
		t.Run(target.String(), func(t *testing.T) {
			monthly := BuildMonthly([]calendar.Date{target}, target.Year)

			for day := 1; day <= 31; day++ {
				for month := time.January; month <= time.December; month++ {
					want := day == target.Day && month == target.Month
					assert.Equal(t, want, monthly.Marked(day, month), "day %d month %s", day, month)
				}
			}
			assert.Equal(t, 1, monthly.Total())
		})
	}
}

func TestBuildMonthly_SkipsOtherYears(t *testing.T) {
	dates := []calendar.Date{
		date(2023, time.December, 31),
		date(2024, time.June, 15),
		date(2025, time.January, 1),
	}

	monthly := BuildMonthly(dates, 2024)

	assert.Equal(t, 1, monthly.Total())
	assert.True(t, monthly.Marked(15, time.June))
	assert.False(t, monthly.Marked(31, time.December))
	assert.False(t, monthly.Marked(1, time.January))
}

func TestBuildMonthly_TotalsCountDistinctCells(t *testing.T) {
	dates := []calendar.Date{
		date(2024, time.March, 3),
		date(2024, time.March, 3),
		date(2024, time.March, 4),
		date(2024, time.May, 1),
		date(2024, time.May, 1),
		date(2024, time.November, 30),
	}

	monthly := BuildMonthly(dates, 2024)
	totals := monthly.Totals()

	assert.Equal(t, 2, totals[time.March-1])
	assert.Equal(t, 1, totals[time.May-1])
	assert.Equal(t, 1, totals[time.November-1])
	assert.Equal(t, 4, monthly.Total())

	sum := 0
	for _, total := range totals {
		sum += total
	}
	assert.Equal(t, monthly.Total(), sum)
}

func TestMonthlyMarkdown_OrderIndependentAndIdempotent(t *testing.T) {
	dates := []calendar.Date{
		date(2024, time.January, 5),
		date(2024, time.August, 17),
		date(2024, time.April, 30),
	}
	reversed := []calendar.Date{dates[2], dates[1], dates[0]}

	first := MonthlyMarkdown(dates, 2024, "x")
	assert.Equal(t, first, MonthlyMarkdown(dates, 2024, "x"))
	assert.Equal(t, first, MonthlyMarkdown(reversed, 2024, "x"))
}

func TestMonthlyMarkdown_ConsistentColumnCount(t *testing.T) {
	dates := []calendar.Date{date(2024, time.February, 29), date(2024, time.October, 10)}

	for _, line := range tableLines(t, MonthlyMarkdown(dates, 2024, "🔥")) {
		assert.Len(t, cellsOf(line), 13, "line %q", line)
	}
}

func TestMonthlyMarkdown_MarkerUsedVerbatim(t *testing.T) {
	markdown := MonthlyMarkdown([]calendar.Date{date(2024, time.May, 2)}, 2024, "**done**")

	lines := tableLines(t, markdown)
	assert.Equal(t, "**done**", cellsOf(lines[3])[5])
	assert.True(t, strings.HasPrefix(lines[33], "| **Σ: 1**"))
}
