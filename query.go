package igdb

import (
	"slices"
	"strconv"
	"strings"
)

// Bounds enforced by the remote API. Out-of-range values are clamped, not
// rejected.
const (
	MinLimit  = 1
	MaxLimit  = 500
	MaxOffset = 10000
)

// Sort directions accepted by the query language.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query accumulates Apicalypse clauses through chained calls and renders them
// with Build. The zero value is ready to use; all methods return the receiver
// for chaining. Query methods never fail: numeric inputs are clamped into
// range and empty clauses are simply omitted from the output.
type Query struct {
	fields    []string
	wheres    []string
	sorts     []string
	search    string
	limit     int
	offset    int
	hasLimit  bool
	hasOffset bool
}

// NewQuery creates an empty query builder.
func NewQuery() *Query {
	return &Query{}
}

// Fields appends field paths to the selection. Paths are emitted in insertion
// order and are not de-duplicated; adding the same path twice emits it twice.
// Suffix a path with ".*" to expand the linked entity.
func (q *Query) Fields(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

// Where appends one condition to the conjunctive filter list. The condition
// is inserted verbatim; it must already be a well-formed fragment.
func (q *Query) Where(condition string) *Query {
	if condition != "" {
		q.wheres = append(q.wheres, condition)
	}
	return q
}

// WhereOr appends a single condition that matches any of the given
// alternatives, rendered as "(a|b|c)" and AND-ed with the other conditions.
func (q *Query) WhereOr(conditions ...string) *Query {
	if len(conditions) == 0 {
		return q
	}
	q.wheres = append(q.wheres, "("+strings.Join(conditions, "|")+")")
	return q
}

// Sort appends a sort directive. An empty direction sorts ascending.
func (q *Query) Sort(field, direction string) *Query {
	if field == "" {
		return q
	}
	if direction == "" {
		direction = SortAsc
	}
	q.sorts = append(q.sorts, field+" "+direction)
	return q
}

// Search sets the full-text search term. The term is inserted verbatim inside
// double quotes; the caller is responsible for escaping.
func (q *Query) Search(term string) *Query {
	q.search = term
	return q
}

// Limit sets the page size, clamped into [MinLimit, MaxLimit].
func (q *Query) Limit(limit int) *Query {
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	q.limit = limit
	q.hasLimit = true
	return q
}

// Offset sets the result offset, clamped into [0, MaxOffset].
func (q *Query) Offset(offset int) *Query {
	if offset < 0 {
		offset = 0
	}
	if offset > MaxOffset {
		offset = MaxOffset
	}
	q.offset = offset
	q.hasOffset = true
	return q
}

// Options reports the accumulated clauses as a reusable QueryOptions value,
// suitable for passing to the entity routes. Conditions collapse into one
// AND-joined Where string and sort directives into one comma-joined Sort
// string. A limit or offset that was explicitly set to its zero-clamped
// value reads back as unset, since QueryOptions treats zero as absent.
func (q *Query) Options() QueryOptions {
	opts := QueryOptions{
		Fields: slices.Clone(q.fields),
		Where:  strings.Join(q.wheres, " & "),
		Search: q.search,
		Sort:   strings.Join(q.sorts, ","),
	}
	if q.hasLimit {
		opts.Limit = q.limit
	}
	if q.hasOffset {
		opts.Offset = q.offset
	}
	return opts
}

// Build renders the accumulated clauses into a query string. Clause order is
// fixed (fields, sort, limit, offset, search, where) so equal intent always
// renders to equal text. Each clause is emitted only if set, clauses are
// joined by "; " and the statement is terminated by ";". An empty query
// renders to the empty string.
func (q *Query) Build() string {
	var clauses []string
	if len(q.fields) > 0 {
		clauses = append(clauses, "fields "+strings.Join(q.fields, ","))
	}
	if len(q.sorts) > 0 {
		clauses = append(clauses, "sort "+strings.Join(q.sorts, ","))
	}
	if q.hasLimit {
		clauses = append(clauses, "limit "+strconv.Itoa(q.limit))
	}
	if q.hasOffset {
		clauses = append(clauses, "offset "+strconv.Itoa(q.offset))
	}
	if q.search != "" {
		clauses = append(clauses, `search "`+q.search+`"`)
	}
	if len(q.wheres) > 0 {
		clauses = append(clauses, "where "+strings.Join(q.wheres, " & "))
	}
	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, "; ") + ";"
}
