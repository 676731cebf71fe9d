package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"devevents/internal/domain"
)

var (
	// timeRegex matches 24-hour HH:MM; the leading zero of the hour is optional.
	timeRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	// emailRegex matches local@domain with at least one dot in domain and no whitespace.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	slugStripRegex      = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespaceRegex = regexp.MustCompile(`\s+`)
	slugHyphenRegex     = regexp.MustCompile(`-+`)
)

// NormalizeEventInput validates raw event input and returns a canonical, persist-ready
// event with trimmed fields, slug, UTC-midnight date and absolute start instant.
// ID and timestamps are left for the caller. Errors are *domain.ValidationError.
func NormalizeEventInput(in domain.EventInput) (*domain.Event, error) {
	e := &domain.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Overview:    strings.TrimSpace(in.Overview),
		Image:       strings.TrimSpace(in.Image),
		Venue:       strings.TrimSpace(in.Venue),
		Location:    strings.TrimSpace(in.Location),
		Time:        strings.TrimSpace(in.Time),
		Timezone:    strings.TrimSpace(in.Timezone),
		Audience:    strings.TrimSpace(in.Audience),
		Organizer:   strings.TrimSpace(in.Organizer),
	}
	date := strings.TrimSpace(in.Date)
	mode := strings.ToLower(strings.TrimSpace(in.Mode))

	required := []struct {
		field string
		value string
	}{
		{"title", e.Title},
		{"description", e.Description},
		{"overview", e.Overview},
		{"venue", e.Venue},
		{"location", e.Location},
		{"date", date},
		{"time", e.Time},
		{"timezone", e.Timezone},
		{"mode", mode},
		{"audience", e.Audience},
		{"organizer", e.Organizer},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, domain.NewValidationError(domain.ErrMissingField, r.field, r.field+" is required")
		}
	}

	agenda, ok := NormalizeStringList(in.Agenda)
	if !ok || len(agenda) == 0 {
		return nil, domain.NewValidationError(domain.ErrEmptyCollection, "agenda", "agenda must have at least one item")
	}
	tags, ok := NormalizeStringList(in.Tags)
	if !ok || len(tags) == 0 {
		return nil, domain.NewValidationError(domain.ErrEmptyCollection, "tags", "tags must have at least one item")
	}
	e.Agenda = agenda
	e.Tags = tags

	e.Mode = domain.EventMode(mode)
	if !e.Mode.Valid() {
		return nil, domain.NewValidationError(domain.ErrInvalidEnum, "mode", "mode must be online, offline, or hybrid")
	}

	if !timeRegex.MatchString(e.Time) {
		return nil, domain.NewValidationError(domain.ErrInvalidTimeFormat, "time", "time must be in HH:MM format (24-hour)")
	}

	day, startAt, err := ResolveStartAt(date, e.Time, e.Timezone)
	if err != nil {
		return nil, err
	}
	e.Date = day
	e.StartAtUTC = &startAt
	hour, minute, _ := parseClock(e.Time)
	e.Time = fmt.Sprintf("%02d:%02d", hour, minute)
	e.Slug = GenerateSlug(e.Title, day)
	return e, nil
}

// ResolveStartAt interprets date and clock (HH:MM) as wall-clock time in the IANA
// timezone. It returns the calendar date at UTC midnight and the UTC start instant.
// Wall-clock times skipped by a DST transition are rejected.
func ResolveStartAt(date, clock, timezone string) (day time.Time, startAt time.Time, err error) {
	invalid := domain.NewValidationError(domain.ErrInvalidDateTime, "date", "Invalid date, time, or timezone")

	loc, err := domain.LoadZone(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, invalid
	}
	day, err = parseCalendarDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, invalid
	}
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, time.Time{}, invalid
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	if local.Year() != day.Year() || local.YearDay() != day.YearDay() || local.Hour() != hour || local.Minute() != minute {
		return time.Time{}, time.Time{}, invalid
	}
	return day, local.UTC(), nil
}

// GenerateSlug derives the URL slug from title and date: the lowercased title with
// characters outside [word, whitespace, hyphen] removed, whitespace runs and hyphen
// runs collapsed to one hyphen, followed by "-YYYY-MM-DD".
func GenerateSlug(title string, date time.Time) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRegex.ReplaceAllString(s, "")
	s = slugWhitespaceRegex.ReplaceAllString(s, "-")
	s = slugHyphenRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "event"
	}
	return s + "-" + date.UTC().Format(domain.DateLayout)
}

// NormalizeStringList keeps the trimmed, non-empty string elements of an array-shaped
// value. ok is false when v is not an array.
func NormalizeStringList(v any) (items []string, ok bool) {
	var raw []any
	switch vv := v.(type) {
	case []any:
		raw = vv
	case []string:
		raw = make([]any, len(vv))
		for i, s := range vv {
			raw[i] = s
		}
	default:
		return nil, false
	}
	items = make([]string, 0, len(raw))
	for _, item := range raw {
		s, isString := item.(string)
		if !isString {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items, true
}

// NormalizeBookingInput validates raw booking input and returns a booking carrying the
// canonical event ID and the trimmed, lowercased email.
func NormalizeBookingInput(in domain.BookingInput) (*domain.Booking, error) {
	eventID := strings.TrimSpace(in.EventID)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if eventID == "" || email == "" {
		field := "eventId"
		if eventID != "" {
			field = "email"
		}
		return nil, domain.NewValidationError(domain.ErrMissingField, field, "Event ID and email are required")
	}
	id, err := NormalizeID(eventID)
	if err != nil {
		return nil, err
	}
	if !emailRegex.MatchString(email) {
		return nil, domain.NewValidationError(domain.ErrInvalidEmail, "email", "Invalid email format")
	}
	return &domain.Booking{EventID: id, Email: email}, nil
}

// NormalizeID checks that raw is a UUID and returns its canonical lowercase form.
func NormalizeID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", domain.NewValidationError(domain.ErrInvalidID, "eventId", "Invalid event ID")
	}
	return id.String(), nil
}

func parseCalendarDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseClock(s string) (hour, minute int, err error) {
	h, m, _ := strings.Cut(s, ":")
	if hour, err = strconv.Atoi(h); err != nil {
		return 0, 0, err
	}
	if minute, err = strconv.Atoi(m); err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}
