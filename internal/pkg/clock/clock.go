// Package clock pins every wall-clock decision to the organization's civil
// time zone.
package clock

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type zoneClock struct {
	loc *time.Location
}

func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}

// Fixed always reports the same instant. Used by tests and the CLI.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

func (f Fixed) Location() *time.Location {
	return f.At.Location()
}

// Today truncates t to midnight in its own location.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// At returns day at hh:mm in day's location.
func At(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}
