package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Event
	err     error // if set, every call returns this error
	lastArg domain.EventFilter
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID: make(map[string]*domain.Event),
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Slug == e.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) matching(filter domain.EventFilter) []*domain.Event {
	var out []*domain.Event
	for _, e := range f.byID {
		if filter.Mode != "" && e.Mode != filter.Mode {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, e)
	}
	// Sort by CreatedAt DESC to match repo
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.lastArg = filter
	all := f.matching(filter)
	start := params.Offset()
	if start >= len(all) {
		return nil, nil
	}
	end := min(start+params.Limit, len(all))
	return all[start:end], nil
}

func (f *fakeEventRepo) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.matching(filter)), nil
}

func (f *fakeEventRepo) ListTagSets(ctx context.Context) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var sets [][]string
	for _, e := range f.byID {
		sets = append(sets, e.Tags)
	}
	return sets, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo, 5*time.Second).(*eventService)
	svc.now = fixedClock(time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC))

	e, err := svc.CreateEvent(ctx, validEventInput())
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "test-con-2026-01-10", e.Slug)
	assert.Equal(t, time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC), e.CreatedAt)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	assert.Contains(t, repo.byID, e.ID)

	_, err = svc.CreateEvent(ctx, validEventInput())
	require.ErrorIs(t, err, domain.ErrDuplicateSlug)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.byID, 1)
}

func TestEventService_CreateEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("validation error does not reach the repository", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.Second)
		in := validEventInput()
		in.Mode = "virtual"
		_, err := svc.CreateEvent(ctx, in)
		require.ErrorIs(t, err, domain.ErrInvalidEnum)
		assert.Empty(t, repo.byID)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.err = errors.New("db down")
		svc := NewEventService(repo, time.Second)
		_, err := svc.CreateEvent(ctx, validEventInput())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create event")
		assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"Alpha", "Beta", "Gamma"} {
		repo.byID[title] = &domain.Event{ID: title, Title: title, Slug: strings.ToLower(title), Mode: domain.ModeOnline, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	svc := NewEventService(repo, time.Second)

	events, total, err := svc.ListEvents(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, events, 2)
	assert.Equal(t, "Gamma", events[0].Title)

	events, total, err = svc.ListEvents(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	_, _, err = svc.ListEvents(ctx, domain.EventFilter{Search: "  alp  "}, domain.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "alp", repo.lastArg.Search)

	_, _, err = svc.ListEvents(ctx, domain.EventFilter{Mode: "remote"}, domain.PaginationParams{Page: 1, Limit: 10})
	require.ErrorIs(t, err, domain.ErrInvalidEnum)

	_, _, err = svc.ListEvents(ctx, domain.EventFilter{Sort: domain.SortDateDesc}, domain.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, domain.SortDateDesc, repo.lastArg.Sort)

	_, _, err = svc.ListEvents(ctx, domain.EventFilter{Sort: "price"}, domain.PaginationParams{Page: 1, Limit: 10})
	require.ErrorIs(t, err, domain.ErrInvalidEnum)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "sort", vErr.Field)
}

func TestEventService_GetEventBySlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.byID["ev-1"] = &domain.Event{ID: "ev-1", Slug: "test-con-2026-01-10"}
	svc := NewEventService(repo, time.Second)

	e, err := svc.GetEventBySlug(ctx, " test-con-2026-01-10 ")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", e.ID)

	_, err = svc.GetEventBySlug(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetEventBySlug(ctx, "   ")
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.EqualError(t, err, "Invalid slug parameter")
}

func TestEventService_ListTags(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.byID["a"] = &domain.Event{ID: "a", Slug: "a", Tags: []string{"go", "cloud"}}
	repo.byID["b"] = &domain.Event{ID: "b", Slug: "b", Tags: []string{"ai", "go", ""}}
	svc := NewEventService(repo, time.Second)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "cloud", "go"}, tags)

	empty, err := NewEventService(newFakeEventRepo(), time.Second).ListTags(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
