// Package calendar parses the date and time strings accepted by the reading
// endpoints into plain integer components.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date with no time zone attached.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// FormatError reports a date or time string that could not be split into
// integer components.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	switch e.Field {
	case "birthTime":
		return fmt.Sprintf("invalid %s %q: expected HH:MM", e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD", e.Field, e.Value)
	}
}

// ParseDate splits a YYYY-MM-DD string into its components. It does not check
// that the date exists; use Date.Valid for that.
func ParseDate(value string) (Date, error) {
	parts, ok := splitInts(value, "-", 3)
	if !ok {
		return Date{}, &FormatError{Field: "birthDate", Value: value}
	}
	return Date{Year: parts[0], Month: parts[1], Day: parts[2]}, nil
}

// ParseClock splits an HH:MM string into its components.
func ParseClock(value string) (Clock, error) {
	parts, ok := splitInts(value, ":", 2)
	if !ok {
		return Clock{}, &FormatError{Field: "birthTime", Value: value}
	}
	return Clock{Hour: parts[0], Minute: parts[1]}, nil
}

// Valid reports whether the date exists in the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && int(t.Month()) == d.Month
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid reports whether the clock is within 00:00-23:59.
func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func splitInts(value, sep string, want int) ([]int, bool) {
	fields := strings.Split(strings.TrimSpace(value), sep)
	if len(fields) != want {
		return nil, false
	}
	out := make([]int, 0, want)
	for _, field := range fields {
		if field == "" || strings.ContainsAny(field, "+-") {
			return nil, false
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
