package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEventTime(t *testing.T) {
	amsterdamStart := time.Date(2026, 6, 10, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		clock    string
		timezone string
		startAt  *time.Time
		want     string
	}{
		{"legacy morning", "09:00", "", nil, "9:00 AM"},
		{"legacy noon", "12:30", "", nil, "12:30 PM"},
		{"legacy midnight", "00:05", "", nil, "12:05 AM"},
		{"legacy evening", "18:45", "", nil, "6:45 PM"},
		{"malformed", "bad", "", nil, "Time TBA"},
		{"empty", "", "", nil, "Time TBA"},
		{"hour out of range", "25:00", "", nil, "Time TBA"},
		{"minutes malformed", "09:7", "", nil, "Time TBA"},
		{"legacy with timezone label only", "09:00", "America/New_York", nil, "9:00 AM (America/New York)"},
		{"zoned", "ignored", "Europe/Amsterdam", &amsterdamStart, "9:00 AM (Europe/Amsterdam)"},
		{"unknown zone falls back to legacy", "10:15", "Mars/Olympus", &amsterdamStart, "10:15 AM (Mars/Olympus)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEventTime(tt.clock, tt.timezone, tt.startAt))
		})
	}
}

func TestFormatEventDate(t *testing.T) {
	lateUTC := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		date     string
		timezone string
		startAt  *time.Time
		want     string
	}{
		{"legacy date", "2026-06-10", "", nil, "June 10, 2026"},
		{"legacy rfc3339", "2026-06-10T00:00:00Z", "", nil, "June 10, 2026"},
		{"legacy garbage", "someday", "", nil, "Date TBA"},
		{"zoned crosses midnight", "2026-01-10", "Asia/Kolkata", &lateUTC, "January 11, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEventDate(tt.date, tt.timezone, tt.startAt))
		})
	}
}

func TestNewEventDisplay_SelectsVariant(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	_, zoned := NewEventDisplay("2026-01-10", "09:00", "UTC", &start).(ZonedDisplay)
	assert.True(t, zoned)

	_, legacy := NewEventDisplay("2026-01-10", "09:00", "UTC", nil).(LegacyDisplay)
	assert.True(t, legacy)

	_, legacy = NewEventDisplay("2026-01-10", "09:00", "", &start).(LegacyDisplay)
	assert.True(t, legacy)
}

func TestEvent_Display(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	e := &Event{
		Date:       time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Time:       "09:00",
		Timezone:   "UTC",
		StartAtUTC: &start,
	}
	d := e.Display()
	assert.Equal(t, "January 10, 2026", d.FormatDate())
	assert.Equal(t, "9:00 AM (UTC)", d.FormatTime())
}

func TestLoadZone(t *testing.T) {
	_, err := LoadZone("")
	assert.Error(t, err)
	_, err = LoadZone("Local")
	assert.Error(t, err)
	_, err = LoadZone("Not/AZone")
	assert.Error(t, err)
	loc, err := LoadZone("Europe/Amsterdam")
	assert.NoError(t, err)
	assert.Equal(t, "Europe/Amsterdam", loc.String())
}
