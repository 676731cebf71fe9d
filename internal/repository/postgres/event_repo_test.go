package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"devevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"id", "title", "slug", "description", "overview", "image", "venue", "location",
	"date", "start_time", "timezone", "start_at_utc", "mode", "audience", "organizer",
	"agenda", "tags", "created_at", "updated_at",
}

func sampleEvent() *domain.Event {
	startAt := time.Date(2026, 1, 10, 17, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:          "ev-1",
		Title:       "Test Con",
		Slug:        "test-con-2026-01-10",
		Description: "desc",
		Overview:    "overview",
		Venue:       "Hall A",
		Location:    "San Francisco",
		Date:        time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Timezone:    "America/Los_Angeles",
		StartAtUTC:  &startAt,
		Mode:        domain.ModeHybrid,
		Audience:    "devs",
		Organizer:   "Org",
		Agenda:      []string{"Intro"},
		Tags:        []string{"go", "cloud"},
		CreatedAt:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func addEventRow(rows *sqlmock.Rows, e *domain.Event, agenda, tags string) *sqlmock.Rows {
	var tz, startAt any
	if e.Timezone != "" {
		tz = e.Timezone
	}
	if e.StartAtUTC != nil {
		startAt = *e.StartAtUTC
	}
	return rows.AddRow(
		e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, tz, startAt, string(e.Mode), e.Audience, e.Organizer,
		agenda, tags, e.CreatedAt, e.UpdatedAt,
	)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events \(id, title, slug`).
					WithArgs("ev-1", "Test Con", "test-con-2026-01-10", "desc", "overview", "", "Hall A", "San Francisco",
						time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "09:00", "America/Los_Angeles",
						time.Date(2026, 1, 10, 17, 0, 0, 0, time.UTC), "hybrid", "devs", "Org",
						`["Intro"]`, `["go","cloud"]`, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "events_slug_key"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
			err = repo.Create(ctx, sampleEvent())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		want := sampleEvent()
		mock.ExpectQuery(`SELECT id, title, slug, .* FROM events WHERE slug = \$1`).
			WithArgs("test-con-2026-01-10").
			WillReturnRows(addEventRow(sqlmock.NewRows(eventRowColumns), want, `["Intro"]`, `["go","cloud"]`))

		repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
		got, err := repo.GetBySlug(ctx, "  test-con-2026-01-10 ")
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("legacy record with stringified tags", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		legacy := sampleEvent()
		legacy.Timezone = ""
		legacy.StartAtUTC = nil
		mock.ExpectQuery(`FROM events WHERE slug = \$1`).
			WithArgs("old").
			WillReturnRows(addEventRow(sqlmock.NewRows(eventRowColumns), legacy, `["Intro"]`, `["[\"a\",\"b\"]"]`))

		repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
		got, err := repo.GetBySlug(ctx, "old")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, got.Tags)
		require.Empty(t, got.Timezone)
		require.Nil(t, got.StartAtUTC)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events WHERE slug = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
		got, err := repo.GetBySlug(ctx, "missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := sampleEvent()
	mock.ExpectQuery(`FROM events WHERE id = \$1`).
		WithArgs("ev-1").
		WillReturnRows(addEventRow(sqlmock.NewRows(eventRowColumns), want, `["Intro"]`, `["go","cloud"]`))

	repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
	got, err := repo.GetByID(ctx, "ev-1")
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  domain.EventFilter
		params  domain.PaginationParams
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name:   "no filter",
			params: domain.PaginationParams{Page: 2, Limit: 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$1 OFFSET \$2`).
					WithArgs(10, 10).
					WillReturnRows(addEventRow(sqlmock.NewRows(eventRowColumns), sampleEvent(), `[]`, `[]`))
			},
			wantLen: 1,
		},
		{
			name:   "search mode and tag",
			filter: domain.EventFilter{Search: "Go_Conf", Mode: domain.ModeOnline, Tag: "cloud"},
			params: domain.PaginationParams{Page: 1, Limit: 5},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE \(LOWER\(title\) LIKE \$1 .* OR LOWER\(location\) LIKE \$2 .* OR LOWER\(description\) LIKE \$3 .*\) AND mode = \$4 AND strpos\(tags, \$5\) > 0\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$6 OFFSET \$7`).
					WithArgs(`%go\_conf%`, `%go\_conf%`, `%go\_conf%`, "online", `"cloud"`, 5, 0).
					WillReturnRows(sqlmock.NewRows(eventRowColumns))
			},
			wantLen: 0,
		},
		{
			name:   "date ascending",
			filter: domain.EventFilter{Sort: domain.SortDateAsc},
			params: domain.PaginationParams{Page: 1, Limit: 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events\s+ORDER BY COALESCE\(start_at_utc, date\) ASC, created_at DESC, id DESC\s+LIMIT \$1 OFFSET \$2`).
					WithArgs(10, 0).
					WillReturnRows(addEventRow(sqlmock.NewRows(eventRowColumns), sampleEvent(), `[]`, `[]`))
			},
			wantLen: 1,
		},
		{
			name:   "date descending with tag",
			filter: domain.EventFilter{Tag: "Go", Sort: domain.SortDateDesc},
			params: domain.PaginationParams{Page: 1, Limit: 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE strpos\(tags, \$1\) > 0\s+ORDER BY COALESCE\(start_at_utc, date\) DESC, created_at DESC, id DESC\s+LIMIT \$2 OFFSET \$3`).
					WithArgs(`"Go"`, 10, 0).
					WillReturnRows(sqlmock.NewRows(eventRowColumns))
			},
			wantLen: 0,
		},
		{
			name:   "db error",
			params: domain.PaginationParams{Page: 1, Limit: 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
			got, err := repo.List(ctx, tt.filter, tt.params)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				require.Len(t, got, tt.wantLen)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Count(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE mode = \$1`).
		WithArgs("offline").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
	total, err := repo.Count(ctx, domain.EventFilter{Mode: domain.ModeOffline})
	require.NoError(t, err)
	require.Equal(t, 42, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListTagSets(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT tags FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"tags"}).
			AddRow(`["go","cloud"]`).
			AddRow(`not json`))

	repo := NewEventRepository(NewStaticAcquirer(db, DriverPostgres))
	sets, err := repo.ListTagSets(ctx)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"go", "cloud"}, {}}, sets)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRebind(t *testing.T) {
	q := `SELECT * FROM bookings WHERE event_id = $1 AND email = $2`
	require.Equal(t, q, rebind(DriverPostgres, q))
	require.Equal(t, `SELECT * FROM bookings WHERE event_id = ? AND email = ?`, rebind(DriverSQLite, q))
}
