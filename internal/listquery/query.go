// Package listquery turns untrusted list parameters into a normalized page query
// and runs it against any source that can find and count records.
package listquery

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size used when the caller sends none (or garbage).
	DefaultLimit = 10
	// MaxLimit caps the page size unless the caller's Limits say otherwise.
	MaxLimit = 100
	// LimitCeiling is the largest Max a caller may configure; with Page capped at
	// MaxInt32 it keeps Skip inside int64.
	LimitCeiling = 10000

	ParamPage  = "page"
	ParamLimit = "limit"
)

// Params are the raw query parameters of one inbound request.
type Params map[string]string

// ParamsFromValues keeps the first value of every key.
func ParamsFromValues(v url.Values) Params {
	p := make(Params, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			p[k] = vals[0]
		}
	}
	return p
}

// Kind narrows what a filter value may look like. Values always stay strings.
type Kind int

const (
	KindText Kind = iota
	KindUUID
)

// AllowedFilter declares one filterable key of an entity and the column it maps to.
type AllowedFilter struct {
	Key    string
	Column string
	Kind   Kind
	OneOf  []string
}

// Filter holds column -> value equality constraints.
type Filter map[string]string

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// DefaultOrder sorts newest first and breaks ties on id so pages never overlap.
var DefaultOrder = []Order{
	{Column: "created_at", Desc: true},
	{Column: "id", Desc: true},
}

// Limits bound the page size.
type Limits struct {
	Default int
	Max     int
}

func (l Limits) normalized() Limits {
	if l.Default <= 0 {
		l.Default = DefaultLimit
	}
	if l.Max <= 0 {
		l.Max = MaxLimit
	}
	if l.Max > LimitCeiling {
		l.Max = LimitCeiling
	}
	if l.Default > l.Max {
		l.Default = l.Max
	}
	return l
}

// Query is a normalized list request. Skip is always (Page-1)*Limit.
type Query struct {
	Page   int
	Limit  int
	Skip   int
	Filter Filter
	Order  []Order
}

// Normalize builds a Query from raw params. Only keys in allowed reach the filter;
// anything else is dropped silently. A value that breaks an allowed key's
// constraints produces a *ValidationError.
func Normalize(raw Params, allowed []AllowedFilter, limits Limits) (Query, error) {
	limits = limits.normalized()

	page := positiveInt(raw[ParamPage], 1)
	limit := positiveInt(raw[ParamLimit], limits.Default)
	if limit > limits.Max {
		limit = limits.Max
	}
	// keep Skip from overflowing; such a page is empty anyway
	if page > math.MaxInt32 {
		page = math.MaxInt32
	}

	filter := Filter{}
	var violations []Violation
	for _, f := range allowed {
		v, ok := raw[f.Key]
		if !ok || v == "" {
			continue
		}
		value, msg := f.check(v)
		if msg != "" {
			violations = append(violations, Violation{Key: f.Key, Message: msg})
			continue
		}
		filter[f.column()] = value
	}
	if len(violations) > 0 {
		return Query{}, &ValidationError{Violations: violations}
	}

	return Query{
		Page:   page,
		Limit:  limit,
		Skip:   (page - 1) * limit,
		Filter: filter,
		Order:  DefaultOrder,
	}, nil
}

func (f AllowedFilter) column() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Key
}

// check returns the value to filter on, or a message when v is rejected. UUIDs
// come back in canonical lowercase form so every backend compares the same text.
func (f AllowedFilter) check(v string) (string, string) {
	if len(f.OneOf) > 0 && !slices.Contains(f.OneOf, v) {
		return "", "must be one of " + strings.Join(f.OneOf, "|")
	}
	if f.Kind == KindUUID {
		id, err := uuid.Parse(v)
		if err != nil {
			return "", "must be a valid UUID"
		}
		return id.String(), ""
	}
	return v, ""
}

// positiveInt parses s, falling back to def for anything that is not a positive integer.
func positiveInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
