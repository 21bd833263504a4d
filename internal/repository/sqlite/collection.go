package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type collection[T any] struct {
	db  *sqlx.DB
	def resource.Definition
}

// NewCollection reads def's table into T through sqlx struct scanning.
func NewCollection[T any](db *sqlx.DB, def resource.Definition) repository.Collection[T] {
	return &collection[T]{db: db, def: def}
}

func (c *collection[T]) Find(ctx context.Context, filter listquery.Filter, skip, limit int, order []listquery.Order) ([]T, error) {
	if err := ensureDB(c.db); err != nil {
		return nil, err
	}
	query, args, err := repository.SelectPage(builder, c.def, filter, skip, limit, order).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s page query: %w", c.def.Table, err)
	}
	var items []T
	if err := sqlx.SelectContext(ctx, getQ(ctx, c.db), &items, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", c.def.Table, err)
	}
	return items, nil
}

func (c *collection[T]) Count(ctx context.Context, filter listquery.Filter) (int, error) {
	if err := ensureDB(c.db); err != nil {
		return 0, err
	}
	query, args, err := repository.SelectCount(builder, c.def, filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count query: %w", c.def.Table, err)
	}
	var total int
	if err := sqlx.GetContext(ctx, getQ(ctx, c.db), &total, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.def.Table, err)
	}
	return total, nil
}

func (c *collection[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var item T
	if err := ensureDB(c.db); err != nil {
		return item, err
	}
	query, args, err := repository.SelectByID(builder, c.def, id.String()).ToSql()
	if err != nil {
		return item, fmt.Errorf("build %s lookup: %w", c.def.Table, err)
	}
	if err := sqlx.GetContext(ctx, getQ(ctx, c.db), &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, repository.ErrNotFound
		}
		return item, fmt.Errorf("get %s: %w", c.def.Table, err)
	}
	return item, nil
}
