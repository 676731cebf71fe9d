package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"devevents/internal/domain"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, start_time, timezone, start_at_utc, mode, audience, organizer, agenda, tags, created_at, updated_at`

type eventRepository struct {
	store Acquirer
}

func NewEventRepository(store Acquirer) domain.EventRepository {
	return &eventRepository{
		store: store,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return err
	}
	agenda, err := domain.EncodeStringList(e.Agenda)
	if err != nil {
		return fmt.Errorf("encode agenda: %w", err)
	}
	tags, err := domain.EncodeStringList(e.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	var timezone sql.NullString
	if e.Timezone != "" {
		timezone = sql.NullString{String: e.Timezone, Valid: true}
	}
	var startAt sql.NullTime
	if e.StartAtUTC != nil {
		startAt = sql.NullTime{Time: e.StartAtUTC.UTC(), Valid: true}
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = db.ExecContext(ctx, rebind(r.store.Dialect(), query),
		e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date.UTC(), e.Time, timezone, startAt, string(e.Mode), e.Audience, e.Organizer,
		agenda, tags, e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE slug = $1`, strings.TrimSpace(slug))
}

func (r *eventRepository) getOne(ctx context.Context, query string, arg string) (*domain.Event, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	e, err := scanEvent(db.QueryRowContext(ctx, rebind(r.store.Dialect(), query), arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	where, args := eventFilterClause(r.store.Dialect(), filter)
	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM events%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, eventColumns, where, eventOrderBy(filter.Sort), n+1, n+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := db.QueryContext(ctx, rebind(r.store.Dialect(), query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	where, args := eventFilterClause(r.store.Dialect(), filter)
	var total int
	if err := db.QueryRowContext(ctx, rebind(r.store.Dialect(), `SELECT COUNT(*) FROM events`+where), args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *eventRepository) ListTagSets(ctx context.Context) ([][]string, error) {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT tags FROM events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sets [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		sets = append(sets, domain.DecodeStringList(raw))
	}
	return sets, rows.Err()
}

// eventOrderBy falls back to the start date for events without a UTC instant.
func eventOrderBy(sort domain.EventSort) string {
	switch sort {
	case domain.SortDateAsc:
		return "COALESCE(start_at_utc, date) ASC, created_at DESC, id DESC"
	case domain.SortDateDesc:
		return "COALESCE(start_at_utc, date) DESC, created_at DESC, id DESC"
	}
	return "created_at DESC, id DESC"
}

// eventFilterClause builds a WHERE clause with placeholders numbered from $1.
func eventFilterClause(dialect string, filter domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	next := func() string { return fmt.Sprintf("$%d", len(args)) }

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		var parts []string
		for _, col := range []string{"title", "location", "description"} {
			args = append(args, pattern)
			parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE %s ESCAPE '\'`, col, next()))
		}
		clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
	}
	if filter.Mode != "" {
		args = append(args, string(filter.Mode))
		clauses = append(clauses, "mode = "+next())
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array; match the JSON-encoded element.
		// LIKE folds ASCII case on sqlite, so use a byte-exact substring search.
		encoded, _ := json.Marshal(filter.Tag)
		args = append(args, string(encoded))
		fn := "strpos"
		if dialect == DriverSQLite {
			fn = "instr"
		}
		clauses = append(clauses, fmt.Sprintf("%s(tags, %s) > 0", fn, next()))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var mode, agenda, tags string
	var timezone sql.NullString
	var startAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &timezone, &startAt, &mode, &e.Audience, &e.Organizer,
		&agenda, &tags, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Mode = domain.EventMode(mode)
	e.Agenda = domain.DecodeStringList(agenda)
	e.Tags = domain.DecodeStringList(tags)
	e.Date = e.Date.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	if timezone.Valid {
		e.Timezone = timezone.String
	}
	if startAt.Valid {
		t := startAt.Time.UTC()
		e.StartAtUTC = &t
	}
	return e, nil
}
