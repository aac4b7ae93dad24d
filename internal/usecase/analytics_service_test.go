package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/platform/cache"
)

type stubQuerier struct {
	calls int
	rows  storage.Rows
	err   error
}

func (q *stubQuerier) QueryRows(_ context.Context, query string, args ...any) (storage.Rows, error) {
	q.calls++
	if q.err != nil {
		return storage.Rows{}, q.err
	}
	return q.rows, nil
}

func TestRunQueryUnknownName(t *testing.T) {
	svc := NewAnalyticsService(&stubQuerier{}, nil)

	_, err := svc.RunQuery(context.Background(), "no_such_query", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunQueryInvalidParams(t *testing.T) {
	svc := NewAnalyticsService(&stubQuerier{}, nil)

	_, err := svc.RunQuery(context.Background(), "large_venues", map[string]string{"min_capacity": "plenty"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = svc.RunQuery(context.Background(), "large_venues", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing param, got %v", err)
	}
}

func TestRunQueryReturnsRows(t *testing.T) {
	querier := &stubQuerier{rows: storage.Rows{
		Columns: []string{"name", "city", "country", "capacity"},
		Values:  [][]any{{"Melbourne Cricket Ground", "Melbourne", "Australia", int64(100024)}},
	}}
	svc := NewAnalyticsService(querier, nil)

	result, err := svc.RunQuery(context.Background(), "large_venues", map[string]string{"min_capacity": "50000"})
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if result.Entry.Name != "large_venues" {
		t.Fatalf("unexpected entry: %+v", result.Entry)
	}
	if len(result.Rows.Values) != 1 {
		t.Fatalf("unexpected rows: %+v", result.Rows)
	}
}

func TestRunQueryUsesCache(t *testing.T) {
	querier := &stubQuerier{rows: storage.Rows{Columns: []string{"name"}}}
	svc := NewAnalyticsService(querier, cache.NewStore(time.Minute))
	ctx := context.Background()
	params := map[string]string{"min_capacity": "50000"}

	if _, err := svc.RunQuery(ctx, "large_venues", params); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := svc.RunQuery(ctx, "large_venues", params); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if querier.calls != 1 {
		t.Fatalf("expected one backend call, got %d", querier.calls)
	}

	// Different parameters miss the cache.
	if _, err := svc.RunQuery(ctx, "large_venues", map[string]string{"min_capacity": "60000"}); err != nil {
		t.Fatalf("third run: %v", err)
	}
	if querier.calls != 2 {
		t.Fatalf("expected second backend call, got %d", querier.calls)
	}
}

func TestRunQueryTranslatesStorageErrors(t *testing.T) {
	querier := &stubQuerier{err: errors.Join(storage.ErrConnection, errors.New("dial failed"))}
	svc := NewAnalyticsService(querier, nil)

	_, err := svc.RunQuery(context.Background(), "large_venues", map[string]string{"min_capacity": "1"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
