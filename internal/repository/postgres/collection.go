package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type collection[T any] struct {
	pool *pgxpool.Pool
	def  resource.Definition
}

// NewCollection reads def's table into T. T's db tags must name every column of def.
func NewCollection[T any](pool *pgxpool.Pool, def resource.Definition) repository.Collection[T] {
	return &collection[T]{pool: pool, def: def}
}

func (c *collection[T]) Find(ctx context.Context, filter listquery.Filter, skip, limit int, order []listquery.Order) ([]T, error) {
	if err := ensurePool(c.pool); err != nil {
		return nil, err
	}
	query, args, err := repository.SelectPage(psql, c.def, filter, skip, limit, order).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s page query: %w", c.def.Table, err)
	}
	rows, err := getQ(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return items, nil
}

func (c *collection[T]) Count(ctx context.Context, filter listquery.Filter) (int, error) {
	if err := ensurePool(c.pool); err != nil {
		return 0, err
	}
	query, args, err := repository.SelectCount(psql, c.def, filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count query: %w", c.def.Table, err)
	}
	var total int64
	if err := getQ(ctx, c.pool).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return int(total), nil
}

func (c *collection[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ensurePool(c.pool); err != nil {
		return zero, err
	}
	query, args, err := repository.SelectByID(psql, c.def, id.String()).ToSql()
	if err != nil {
		return zero, fmt.Errorf("build %s lookup: %w", c.def.Table, err)
	}
	rows, err := getQ(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return zero, repository.MapPgError(err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		return zero, repository.MapPgError(err)
	}
	return item, nil
}
