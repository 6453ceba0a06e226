package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months|year|years) ago$`)
	inPattern  = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months|year|years)$`)
)

// Parser converts relative date expressions into absolute cutoff instants.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative expression to the start of the resulting day.
// Supported: "today", "yesterday", "tomorrow", "far future", "N <unit> ago", "in N <unit>"
// with unit one of day, week, month, year (singular or plural).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "far future":
		return p.FarFuture(), nil
	}

	if m := agoPattern.FindStringSubmatch(relative); m != nil {
		return p.shift(m[1], m[2], baseTime, -1)
	}
	if m := inPattern.FindStringSubmatch(relative); m != nil {
		return p.shift(m[1], m[2], baseTime, 1)
	}

	return baseTime, fmt.Errorf("unsupported relative date: %q", relative)
}

func (p *Parser) shift(amountRaw, unit string, baseTime time.Time, sign int) (time.Time, error) {
	amount, err := strconv.Atoi(amountRaw)
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount %q: %w", amountRaw, err)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	case strings.HasPrefix(unit, "year"):
		return p.StartOfDay(baseTime.AddDate(amount, 0, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// FarFuture is the cutoff used to mean "every item regardless of age".
func (p *Parser) FarFuture() time.Time {
	return time.Date(FarFutureYear, time.January, 1, 0, 0, 0, 0, p.location)
}

// DateString formats t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) DateString(t time.Time) string {
	return t.In(p.location).Format(DateFormat)
}
