package domain

import (
	"context"
	"time"
)

// EventMode is how attendees take part in an event.
type EventMode string

const (
	ModeOnline  EventMode = "online"
	ModeOffline EventMode = "offline"
	ModeHybrid  EventMode = "hybrid"
)

// Valid reports whether m is one of the known modes.
func (m EventMode) Valid() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}

// Event represents a published developer event (conference, hackathon, meetup).
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image,omitempty"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	// Timezone and StartAtUTC are empty on records created before zoned scheduling.
	Timezone   string     `json:"timezone,omitempty"`
	StartAtUTC *time.Time `json:"startAtUtc,omitempty"`
	Mode       EventMode  `json:"mode"`
	Audience   string     `json:"audience"`
	Organizer  string     `json:"organizer"`
	Agenda     []string   `json:"agenda"`
	Tags       []string   `json:"tags"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Display returns the rendering variant matching the fields present on the event.
func (e *Event) Display() EventDisplay {
	return NewEventDisplay(e.Date.Format(DateLayout), e.Time, e.Timezone, e.StartAtUTC)
}

// EventInput is the raw, untrusted payload for creating an event.
// Agenda and Tags are kept as decoded JSON values because only array-shaped input is accepted.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Overview    string `json:"overview"`
	Image       string `json:"image"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Timezone    string `json:"timezone"`
	Mode        string `json:"mode"`
	Audience    string `json:"audience"`
	Organizer   string `json:"organizer"`
	Agenda      any    `json:"agenda" swaggertype:"array,string"`
	Tags        any    `json:"tags" swaggertype:"array,string"`
}

// EventSort orders catalog listings. The zero value lists newest first.
type EventSort string

const (
	SortNewest   EventSort = ""
	SortDateAsc  EventSort = "date-asc"
	SortDateDesc EventSort = "date-desc"
)

// Valid reports whether s is a known ordering.
func (s EventSort) Valid() bool {
	switch s {
	case SortNewest, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

// EventFilter narrows catalog listings. Zero values match everything.
type EventFilter struct {
	Search string
	Mode   EventMode
	// Tag matches one element exactly, case included.
	Tag  string
	Sort EventSort
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create inserts the event. Returns ErrDuplicateSlug when the slug is taken.
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// List returns one page of events matching filter, ordered by filter.Sort.
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, error)
	Count(ctx context.Context, filter EventFilter) (int, error)
	// ListTagSets returns the tags of every event.
	ListTagSets(ctx context.Context) ([][]string, error)
}

// EventService defines the catalog operations.
type EventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListTags(ctx context.Context) ([]string, error)
}
