package repository

import (
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

// Window guards the offset and limit a store receives. Callers normally pass a
// normalized query, this only protects direct use.
func Window(skip, limit int) (int, int) {
	if limit <= 0 {
		limit = listquery.DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}

// SelectPage builds the page query for def: allow-listed columns, equality filter,
// ordering and the offset window. b carries the placeholder flavor of the driver.
func SelectPage(b sq.StatementBuilderType, def resource.Definition, filter listquery.Filter, skip, limit int, order []listquery.Order) sq.SelectBuilder {
	skip, limit = Window(skip, limit)
	return where(b.Select(def.Columns...).From(def.Table), filter).
		OrderBy(orderClauses(def, order)...).
		Limit(uint64(limit)).
		Offset(uint64(skip))
}

// SelectCount builds the count query with exactly the filter SelectPage uses.
func SelectCount(b sq.StatementBuilderType, def resource.Definition, filter listquery.Filter) sq.SelectBuilder {
	return where(b.Select("COUNT(*)").From(def.Table), filter)
}

// SelectByID builds the single-record lookup.
func SelectByID(b sq.StatementBuilderType, def resource.Definition, id string) sq.SelectBuilder {
	return b.Select(def.Columns...).From(def.Table).Where(sq.Eq{"id": id}).Limit(1)
}

func where(s sq.SelectBuilder, filter listquery.Filter) sq.SelectBuilder {
	if len(filter) == 0 {
		return s
	}
	eq := make(sq.Eq, len(filter))
	for column, value := range filter {
		eq[column] = value
	}
	return s.Where(eq)
}

// orderClauses drops columns the table does not have, so an order never reaches SQL
// unchecked. An empty result falls back to newest first.
func orderClauses(def resource.Definition, order []listquery.Order) []string {
	clauses := make([]string, 0, len(order))
	for _, o := range order {
		if !slices.Contains(def.Columns, o.Column) {
			continue
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		clauses = append(clauses, o.Column+dir)
	}
	if len(clauses) == 0 {
		for _, o := range listquery.DefaultOrder {
			clauses = append(clauses, o.Column+" DESC")
		}
	}
	return clauses
}
