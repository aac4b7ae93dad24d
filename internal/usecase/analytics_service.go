package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cricverse/cricstats/internal/catalog"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/platform/cache"
)

// QueryResult carries a catalog run: the entry that produced it plus
// the rows in declared column order.
type QueryResult struct {
	Entry catalog.Entry
	Rows  storage.Rows
}

type rowQuerier interface {
	QueryRows(ctx context.Context, query string, args ...any) (storage.Rows, error)
}

// AnalyticsService executes catalog entries against the storage
// gateway. Results are cached briefly since the dashboard polls the
// same handful of queries.
type AnalyticsService struct {
	querier rowQuerier
	cache   *cache.Store
}

func NewAnalyticsService(querier rowQuerier, store *cache.Store) *AnalyticsService {
	return &AnalyticsService{
		querier: querier,
		cache:   store,
	}
}

// ListQueries returns every catalog entry, for discovery endpoints.
func (s *AnalyticsService) ListQueries(ctx context.Context) []catalog.Entry {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListQueries")
	defer span.End()

	return catalog.Entries()
}

// RunQuery executes one named catalog entry with the given raw
// parameters. Unknown names surface ErrNotFound, parameter problems
// surface ErrInvalidInput.
func (s *AnalyticsService) RunQuery(ctx context.Context, name string, params map[string]string) (QueryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.RunQuery")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return QueryResult{}, fmt.Errorf("%w: query name is required", ErrInvalidInput)
	}

	entry, ok := catalog.Lookup(name)
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: query=%s", ErrNotFound, name)
	}

	args, err := entry.BindArgs(params)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	load := func(ctx context.Context) (any, error) {
		rows, err := s.querier.QueryRows(ctx, entry.SQL, args...)
		if err != nil {
			return nil, translateStorageError(err, "query="+name)
		}
		return QueryResult{Entry: entry, Rows: rows}, nil
	}

	if s.cache == nil {
		out, err := load(ctx)
		if err != nil {
			return QueryResult{}, err
		}
		return out.(QueryResult), nil
	}

	out, err := s.cache.GetOrLoad(ctx, queryCacheKey(name, params), load)
	if err != nil {
		return QueryResult{}, err
	}

	result, ok := out.(QueryResult)
	if !ok {
		return QueryResult{}, fmt.Errorf("unexpected cached value type %T", out)
	}
	return result, nil
}

func queryCacheKey(name string, params map[string]string) string {
	if len(params) == 0 {
		return "analytics:" + name
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("analytics:")
	b.WriteString(name)
	for _, key := range keys {
		b.WriteByte('|')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(params[key])
	}
	return b.String()
}
