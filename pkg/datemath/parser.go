package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned for reference strings none of the supported
// forms match.
var ErrUnrecognized = errors.New("unrecognized date expression")

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves calendar reference dates, absolute or relative, in a fixed
// timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
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

// Parse resolves expr to midnight of the referenced day. Supported forms:
// "2006-01-02", "today", "tomorrow", "yesterday", "in N days|weeks|months",
// "next <weekday>". An empty expression means today.
func (p *Parser) Parse(expr string, now time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return p.StartOfDay(now), nil
	case "tomorrow":
		return p.StartOfDay(now.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(now.In(p.location).AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", expr, p.location); err == nil {
		return t, nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, now)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, now)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

func (p *Parser) parseInDuration(expr string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	base := now.In(p.location)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(expr string, now time.Time) (time.Time, error) {
	target, ok := weekdays[strings.TrimPrefix(expr, "next ")]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
	}

	base := now.In(p.location)
	days := int(target - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return p.StartOfDay(base.AddDate(0, 0, days)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return StartOfDay(t.In(p.location))
}
