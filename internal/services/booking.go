package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"devevents/internal/domain"
)

type bookingService struct {
	eventRepo      domain.EventRepository
	bookingRepo    domain.BookingRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewBookingService creates a BookingService. emailService may be nil to skip confirmations.
func NewBookingService(
	eventRepo domain.EventRepository,
	bookingRepo domain.BookingRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		eventRepo:      eventRepo,
		bookingRepo:    bookingRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CreateBooking confirms the event exists, then inserts. Duplicates are detected only
// by the store's unique (event, email) index, so concurrent requests for the same pair
// yield exactly one booking and ErrDuplicateBooking for the rest.
func (s *bookingService) CreateBooking(ctx context.Context, input domain.BookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := NormalizeBookingInput(input)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now().UTC()
	booking.ID = uuid.NewString()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			return nil, domain.ErrDuplicateBooking
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, event, booking)
	return booking, nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, event *domain.Event, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	display := event.Display()
	data := &domain.BookingConfirmationEmailData{
		Email:       booking.Email,
		EventTitle:  event.Title,
		EventSlug:   event.Slug,
		DisplayDate: display.FormatDate(),
		DisplayTime: display.FormatTime(),
		Venue:       event.Venue,
		Location:    event.Location,
		Mode:        event.Mode,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation not sent", "booking_id", booking.ID, "err", err)
	}
}

func (s *bookingService) ListBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if eventID != "" {
		id, err := NormalizeID(eventID)
		if err != nil {
			return nil, err
		}
		eventID = id
	}
	bookings, err := s.bookingRepo.List(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) DedupeBookings(ctx context.Context, apply bool) (*domain.DedupeReport, error) {
	groups, err := s.bookingRepo.FindDuplicateGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("find duplicate bookings: %w", err)
	}
	report := &domain.DedupeReport{Groups: groups}
	if !apply {
		return report, nil
	}

	var extra []string
	for _, g := range groups {
		if len(g.BookingIDs) > 1 {
			extra = append(extra, g.BookingIDs[1:]...)
		}
	}
	if len(extra) == 0 {
		return report, nil
	}
	deleted, err := s.bookingRepo.DeleteByIDs(ctx, extra)
	if err != nil {
		return nil, fmt.Errorf("delete duplicate bookings: %w", err)
	}
	report.Deleted = deleted
	return report, nil
}
