// Package calendar provides a naive calendar date type and the small set of
// calendar helpers the grid builders need.
//
// Dates carry no time of day and no zone. All arithmetic goes through the
// time package at UTC midnight, so leap years and ISO week numbering follow
// the standard library rules.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for the given year, month and day.
// Out-of-range values are normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the wall-clock date of t in t's own location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the weekday index with Monday = 0 and Sunday = 6.
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// ISOWeek returns the ISO 8601 year, week number and weekday
// (1 = Monday through 7 = Sunday).
func (d Date) ISOWeek() (year, week, weekday int) {
	year, week = d.Time().ISOWeek()
	return year, week, d.Weekday() + 1
}

// AddDays returns the date shifted by n days (negative n moves backward).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Label formats the date as DD/MM, the row label used by the weekly grid.
func (d Date) Label() string {
	return fmt.Sprintf("%02d/%02d", d.Day, int(d.Month))
}

// MondayOnOrBefore returns the Monday of the week containing d.
func MondayOnOrBefore(d Date) Date {
	return d.AddDays(-d.Weekday())
}

// DaysIn returns the number of days in the given month of year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
