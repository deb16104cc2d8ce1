// Package querybuilder composes SELECT statements from an ordered list of typed
// predicates. Values are always bound as positional parameters ($1, $2, ...);
// only column names and SQL fragments written in code are spliced into the text.
package querybuilder

import (
	"strconv"
	"strings"
)

// Predicate is one boolean condition of a WHERE clause.
type Predicate interface {
	render(a *args) string
}

type args struct {
	values []any
}

func (a *args) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

type compare struct {
	column string
	op     string
	value  any
}

func (c compare) render(a *args) string {
	return c.column + " " + c.op + " " + a.bind(c.value)
}

// Eq matches column = value.
func Eq(column string, value any) Predicate { return compare{column, "=", value} }

// Gte matches column >= value.
func Gte(column string, value any) Predicate { return compare{column, ">=", value} }

// Lte matches column <= value.
func Lte(column string, value any) Predicate { return compare{column, "<=", value} }

type in struct {
	column string
	values []any
}

func (p in) render(a *args) string {
	if len(p.values) == 0 {
		return "FALSE"
	}
	params := make([]string, len(p.values))
	for i, v := range p.values {
		params[i] = a.bind(v)
	}
	return p.column + " IN (" + strings.Join(params, ", ") + ")"
}

// In matches column against a set of values. An empty set matches nothing.
func In[T any](column string, values ...T) Predicate {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return in{column: column, values: vs}
}

type expr struct {
	sql    string
	values []any
}

func (e expr) render(a *args) string {
	var sb strings.Builder
	next := 0
	for _, r := range e.sql {
		if r == '?' && next < len(e.values) {
			sb.WriteString(a.bind(e.values[next]))
			next++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Expr is a SQL fragment written in code with '?' marking each bound value,
// e.g. Expr("EXISTS (SELECT 1 FROM t WHERE t.user_id = ?)", id).
func Expr(sql string, values ...any) Predicate { return expr{sql: sql, values: values} }

type group struct {
	op    string
	preds []Predicate
}

func (g group) render(a *args) string {
	parts := make([]string, 0, len(g.preds))
	for _, p := range g.preds {
		parts = append(parts, p.render(a))
	}
	return "(" + strings.Join(parts, " "+g.op+" ") + ")"
}

// Or matches when any of preds matches.
func Or(preds ...Predicate) Predicate { return group{op: "OR", preds: preds} }

// Select is a statement under construction.
type Select struct {
	base    string
	where   []Predicate
	orderBy []string
}

// NewSelect starts a statement from its SELECT ... FROM ... JOIN part.
func NewSelect(base string) *Select {
	return &Select{base: strings.TrimSpace(base)}
}

// Where appends conjunctive predicates, in order.
func (s *Select) Where(preds ...Predicate) *Select {
	s.where = append(s.where, preds...)
	return s
}

// OrderBy appends ordering terms written in code.
func (s *Select) OrderBy(terms ...string) *Select {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Build renders the statement and its positional arguments.
func (s *Select) Build() (string, []any) {
	a := &args{}
	var sb strings.Builder
	sb.WriteString(s.base)
	if len(s.where) > 0 {
		parts := make([]string, len(s.where))
		for i, p := range s.where {
			parts[i] = p.render(a)
		}
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(parts, "\n  AND "))
	}
	if len(s.orderBy) > 0 {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(strings.Join(s.orderBy, ", "))
	}
	return sb.String(), a.values
}
