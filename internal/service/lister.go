package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

// ListOptions are the listing knobs shared by all resources.
type ListOptions struct {
	Limits listquery.Limits
	// Tx, when set, runs page and count inside one snapshot transaction.
	Tx repository.TxManager
}

type lister[T any] struct {
	def  resource.Definition
	repo repository.Collection[T]
	opts ListOptions
	log  zerolog.Logger
}

func NewLister[T any](def resource.Definition, repo repository.Collection[T], opts ListOptions, logger zerolog.Logger) Lister[T] {
	l := logger.With().Str("module", "service").Str("component", def.Name).Logger()
	return &lister[T]{def: def, repo: repo, opts: opts, log: l}
}

func (s *lister[T]) List(ctx context.Context, params listquery.Params) (listquery.Result[T], error) {
	start := time.Now()

	q, err := listquery.Normalize(params, s.def.Filters, s.opts.Limits)
	if err != nil {
		err = fromValidation(err)
		s.log.Debug().Interface("params", params).Interface("field_errors", FieldErrors(err)).Msg("list params rejected")
		return listquery.Result[T]{}, err
	}

	res, err := s.fetch(ctx, q)
	if err != nil {
		if !errors.Is(err, ErrRetrievalFailed) {
			err = fmt.Errorf("%w: %w", ErrRetrievalFailed, err)
		}
		s.log.Error().Err(err).
			Int("page", q.Page).
			Int("limit", q.Limit).
			Interface("filter", q.Filter).
			Msg("list failed")
		return listquery.Result[T]{}, err
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("page", q.Page).
		Int("limit", q.Limit).
		Int("total", res.Pagination.Total).
		Msg("listed")
	return res, nil
}

func (s *lister[T]) fetch(ctx context.Context, q listquery.Query) (listquery.Result[T], error) {
	if s.opts.Tx == nil {
		return listquery.Fetch(ctx, s.repo, q)
	}
	var res listquery.Result[T]
	err := s.opts.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		res, err = listquery.Fetch(ctx, s.repo, q, listquery.Sequential())
		return err
	})
	return res, err
}

func (s *lister[T]) Get(ctx context.Context, raw string) (T, error) {
	var zero T
	id, err := parseID(raw)
	if err != nil {
		return zero, err
	}
	item, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return item, nil
	case errors.Is(err, ErrNotFound):
		return zero, ErrNotFound
	default:
		err = fmt.Errorf("%w: %w", ErrRetrievalFailed, err)
		s.log.Error().Err(err).Str("id", id.String()).Msg("get failed")
		return zero, err
	}
}
