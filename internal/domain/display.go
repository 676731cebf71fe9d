package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones must resolve on hosts without a zoneinfo database
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

const (
	displayDateLayout = "January 2, 2006"
	displayTimeLayout = "3:04 PM"
	timeTBA           = "Time TBA"
	dateTBA           = "Date TBA"
)

// EventDisplay renders an event's schedule for people.
type EventDisplay interface {
	FormatDate() string
	FormatTime() string
}

// ZonedDisplay renders an absolute start instant in the event's own timezone.
type ZonedDisplay struct {
	Instant  time.Time
	Location *time.Location
}

// LegacyDisplay renders the raw stored date and time strings without zone conversion.
// Timezone, when known, is only appended as a label.
type LegacyDisplay struct {
	Date     string
	Time     string
	Timezone string
}

// NewEventDisplay selects ZonedDisplay when both timezone and startAtUTC are present
// and the timezone resolves; otherwise LegacyDisplay.
func NewEventDisplay(date, clock, timezone string, startAtUTC *time.Time) EventDisplay {
	if timezone != "" && startAtUTC != nil && !startAtUTC.IsZero() {
		if loc, err := LoadZone(timezone); err == nil {
			return ZonedDisplay{Instant: *startAtUTC, Location: loc}
		}
	}
	return LegacyDisplay{Date: date, Time: clock, Timezone: timezone}
}

// FormatEventDate renders e.g. "June 10, 2026".
func FormatEventDate(date, timezone string, startAtUTC *time.Time) string {
	return NewEventDisplay(date, "", timezone, startAtUTC).FormatDate()
}

// FormatEventTime renders e.g. "9:00 AM (Europe/Amsterdam)", or "Time TBA" when unknown.
func FormatEventTime(clock, timezone string, startAtUTC *time.Time) string {
	return NewEventDisplay("", clock, timezone, startAtUTC).FormatTime()
}

// LoadZone resolves an IANA timezone name. Empty and "Local" are rejected so the
// result never depends on the host configuration.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}
	return time.LoadLocation(name)
}

func (d ZonedDisplay) FormatDate() string {
	return d.Instant.In(d.Location).Format(displayDateLayout)
}

func (d ZonedDisplay) FormatTime() string {
	label := d.Instant.In(d.Location).Format(displayTimeLayout)
	return fmt.Sprintf("%s (%s)", label, zoneLabel(d.Location.String()))
}

func (d LegacyDisplay) FormatDate() string {
	raw := strings.TrimSpace(d.Date)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.Format(displayDateLayout)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(displayDateLayout)
	}
	return dateTBA
}

func (d LegacyDisplay) FormatTime() string {
	hours, minutes, ok := strings.Cut(strings.TrimSpace(d.Time), ":")
	if !ok {
		return timeTBA
	}
	hour, err := strconv.Atoi(hours)
	if err != nil || hour < 0 || hour > 23 {
		return timeTBA
	}
	minute, err := strconv.Atoi(minutes)
	if err != nil || len(minutes) != 2 || minute < 0 || minute > 59 {
		return timeTBA
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	label := fmt.Sprintf("%d:%s %s", displayHour, minutes, ampm)
	if d.Timezone != "" {
		return fmt.Sprintf("%s (%s)", label, zoneLabel(d.Timezone))
	}
	return label
}

func zoneLabel(timezone string) string {
	return strings.ReplaceAll(timezone, "_", " ")
}
