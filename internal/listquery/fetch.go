package listquery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source is anything that can return a window of records and count them under the same filter.
type Source[T any] interface {
	Find(ctx context.Context, filter Filter, skip, limit int, order []Order) ([]T, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// Pagination is the metadata half of the list envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Result is one page of records plus its pagination.
type Result[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pages returns ceil(total/limit), or 0 when there is nothing to page through.
func Pages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NewResult assembles the envelope body. Items is never nil so it encodes as [].
func NewResult[T any](items []T, q Query, total int) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items: items,
		Pagination: Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: Pages(total, q.Limit),
		},
	}
}

type fetchOptions struct {
	sequential bool
}

// FetchOption tweaks how Fetch talks to the source.
type FetchOption func(*fetchOptions)

// Sequential runs Find then Count on the caller's goroutine. Needed when both
// queries must share one connection, e.g. inside a snapshot transaction.
func Sequential() FetchOption {
	return func(o *fetchOptions) { o.sequential = true }
}

// Fetch runs the page query and the count query with the identical filter and
// waits for both. Any source failure is wrapped in ErrRetrievalFailed.
func Fetch[T any](ctx context.Context, src Source[T], q Query, opts ...FetchOption) (Result[T], error) {
	var o fetchOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		items []T
		total int
	)

	if o.sequential {
		var err error
		if items, err = src.Find(ctx, q.Filter, q.Skip, q.Limit, q.Order); err != nil {
			return Result[T]{}, fmt.Errorf("%w: find: %w", ErrRetrievalFailed, err)
		}
		if total, err = src.Count(ctx, q.Filter); err != nil {
			return Result[T]{}, fmt.Errorf("%w: count: %w", ErrRetrievalFailed, err)
		}
		return NewResult(items, q, total), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if items, err = src.Find(gctx, q.Filter, q.Skip, q.Limit, q.Order); err != nil {
			return fmt.Errorf("find: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = src.Count(gctx, q.Filter); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result[T]{}, fmt.Errorf("%w: %w", ErrRetrievalFailed, err)
	}
	return NewResult(items, q, total), nil
}
