// Package model provides value objects for widget parameter validation.
package model

import (
	"fmt"
	"time"
)

// YearMonth represents a calendar month value object.
type YearMonth struct {
	year  int
	month time.Month
}

// NewYearMonth creates a new year-month value object from a "YYYY-MM" string.
func NewYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month parameter. Use YYYY-MM format")
	}
	return YearMonth{year: t.Year(), month: t.Month()}, nil
}

// YearMonthOf builds a year-month from its components. Out-of-range months are
// normalized the way time.Date normalizes them.
func YearMonthOf(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{year: t.Year(), month: t.Month()}
}

// YearMonthFromTime extracts the calendar month containing t.
func YearMonthFromTime(t time.Time) YearMonth {
	return YearMonth{year: t.Year(), month: t.Month()}
}

// Year returns the calendar year.
func (ym YearMonth) Year() int {
	return ym.year
}

// Month returns the calendar month.
func (ym YearMonth) Month() time.Month {
	return ym.month
}

// String returns the "YYYY-MM" form.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.month))
}

// First returns midnight on the first day of the month.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.year, ym.month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (ym YearMonth) Next() YearMonth {
	return YearMonthFromTime(ym.First().AddDate(0, 1, 0))
}

// Before reports whether ym precedes other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.year != other.year {
		return ym.year < other.year
	}
	return ym.month < other.month
}

// After reports whether ym follows other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}
