package domain

import (
	"context"
	"time"
)

// Booking is an email reservation against an event. At most one exists per (EventID, Email).
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id" csv:"id"`
	EventID   string    `json:"eventId" csv:"eventId"`
	Email     string    `json:"email" csv:"email"`
	CreatedAt time.Time `json:"createdAt" csv:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" csv:"-"`
}

// BookingInput is the raw payload for creating a booking.
type BookingInput struct {
	EventID string `json:"eventId"`
	Email   string `json:"email"`
}

// DuplicateBookingGroup lists bookings sharing one (EventID, Email) pair, oldest first.
type DuplicateBookingGroup struct {
	EventID    string
	Email      string
	BookingIDs []string
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create inserts the booking. Returns ErrDuplicateBooking when the (event, email) pair exists.
	Create(ctx context.Context, booking *Booking) error
	// List returns bookings newest first, restricted to eventID unless it is empty.
	List(ctx context.Context, eventID string) ([]*Booking, error)
	FindDuplicateGroups(ctx context.Context) ([]DuplicateBookingGroup, error)
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}

// DedupeReport summarises a duplicate booking cleanup.
type DedupeReport struct {
	Groups  []DuplicateBookingGroup
	Deleted int
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, input BookingInput) (*Booking, error)
	ListBookings(ctx context.Context, eventID string) ([]*Booking, error)
	// DedupeBookings keeps the oldest booking of each duplicate group and, when apply is true, deletes the rest.
	DedupeBookings(ctx context.Context, apply bool) (*DedupeReport, error)
}
