// Package pager drives the page loop shared by every backend adapter. A
// backend exposes its query endpoint as a Source; Collect walks the pages
// serially, maps each record, and accumulates the accepted entities.
package pager

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/rouxdev/salonsms/internal/record"
	"github.com/rouxdev/salonsms/pkg/logx"
	"github.com/rouxdev/salonsms/pkg/types"
)

// PageInterval is the fixed delay between page requests, respecting backend
// rate limits. The first page is never delayed.
const PageInterval = 350 * time.Millisecond

// Page is one page of normalized records. NextCursor is the continuation
// token for the following page; empty means the sequence is exhausted.
type Page struct {
	Records    []record.Record
	NextCursor string
}

// Source fetches one page of a query. cursor is empty for the first page.
type Source interface {
	FetchPage(ctx context.Context, cursor string) (Page, error)
}

// MapFunc converts one record into an entity, or reports false to skip it.
type MapFunc[T any] func(ctx context.Context, r record.Record) (T, bool)

// Collect walks all pages of src and returns the mapped entities in page
// order, server order within each page. The loop is intentionally serial;
// successive pages are paced PageInterval apart.
//
// Any transport or decode failure aborts the whole fetch with no partial
// result and no retry. If the complete fetch saw records but produced no
// entities, Collect returns types.ErrAllRecordsSkipped: an all-invalid
// result means misconfigured field names, not an empty collection. The
// heuristic is evaluated once, over all pages, so a collection whose first
// page happens to hold only malformed rows is not misreported.
func Collect[T any](ctx context.Context, src Source, mapFn MapFunc[T]) ([]T, error) {
	limiter := rate.NewLimiter(rate.Every(PageInterval), 1)
	log := logx.FromContext(ctx)

	out := []T{}
	seen := 0
	pages := 0
	cursor := ""
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		page, err := src.FetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}
		pages++
		seen += len(page.Records)

		for _, rec := range page.Records {
			if entity, ok := mapFn(ctx, rec); ok {
				out = append(out, entity)
			}
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	log.Debug("fetch complete", "pages", pages, "records", seen, "mapped", len(out))

	if seen > 0 && len(out) == 0 {
		return nil, fmt.Errorf("%d records fetched, none mapped: %w", seen, types.ErrAllRecordsSkipped)
	}
	return out, nil
}
