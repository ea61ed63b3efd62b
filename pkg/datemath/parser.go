package datemath

import (
	"fmt"
	"time"
)

// Parser anchors relative date arithmetic to an IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Los_Angeles"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WeekdayByName resolves a lower-cased English weekday name.
func WeekdayByName(name string) (time.Weekday, bool) {
	wd, ok := weekdaysByName[name]
	return wd, ok
}

// UpcomingWeekday returns the next occurrence of target counting from base.
// When base already falls on target the base day itself is returned (zero
// days added), not the following week.
func UpcomingWeekday(base time.Time, target time.Weekday) time.Time {
	daysToAdd := (int(target) + 7 - int(base.Weekday())) % 7
	return base.AddDate(0, 0, daysToAdd)
}
