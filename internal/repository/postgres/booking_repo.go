package postgres

import (
	"context"
	"fmt"
	"strings"

	"devevents/internal/domain"
)

type bookingRepository struct {
	store Acquirer
}

func NewBookingRepository(store Acquirer) domain.BookingRepository {
	return &bookingRepository{
		store: store,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (id, event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = db.ExecContext(ctx, rebind(r.store.Dialect(), query),
		b.ID, b.EventID, b.Email, b.CreatedAt.UTC(), b.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBooking
		}
		return err
	}
	return nil
}

// List returns bookings newest first; an empty eventID lists every booking.
func (r *bookingRepository) List(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, event_id, email, created_at, updated_at FROM bookings`
	var args []any
	if eventID != "" {
		query += ` WHERE event_id = $1`
		args = append(args, eventID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.QueryContext(ctx, rebind(r.store.Dialect(), query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.CreatedAt = b.CreatedAt.UTC()
		b.UpdatedAt = b.UpdatedAt.UTC()
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// FindDuplicateGroups returns every (event, email) pair held by more than one booking.
// Emails are compared case-insensitively so rows written before normalization are caught.
func (r *bookingRepository) FindDuplicateGroups(ctx context.Context) ([]domain.DuplicateBookingGroup, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT b.id, b.event_id, LOWER(b.email)
		FROM bookings b
		JOIN (
			SELECT event_id, LOWER(email) AS email
			FROM bookings
			GROUP BY event_id, LOWER(email)
			HAVING COUNT(*) > 1
		) d ON d.event_id = b.event_id AND d.email = LOWER(b.email)
		ORDER BY b.event_id, LOWER(b.email), b.created_at, b.id
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.DuplicateBookingGroup
	for rows.Next() {
		var id, eventID, email string
		if err := rows.Scan(&id, &eventID, &email); err != nil {
			return nil, err
		}
		n := len(groups)
		if n > 0 && groups[n-1].EventID == eventID && groups[n-1].Email == email {
			groups[n-1].BookingIDs = append(groups[n-1].BookingIDs, id)
			continue
		}
		groups = append(groups, domain.DuplicateBookingGroup{
			EventID:    eventID,
			Email:      email,
			BookingIDs: []string{id},
		})
	}
	return groups, rows.Err()
}

func (r *bookingRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `DELETE FROM bookings WHERE id IN (` + strings.Join(placeholders, ", ") + `)`
	res, err := db.ExecContext(ctx, rebind(r.store.Dialect(), query), args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
