package query

import (
	"strconv"
	"strings"
)

// DefaultLimit is applied when a statement is built without a positive limit.
const DefaultLimit = 10

// Operator is a comparison used by a predicate or aggregate filter.
type Operator string

const (
	OpLike Operator = "LIKE"
	OpEq   Operator = "="
	OpGte  Operator = ">="
	OpLte  Operator = "<="
)

// Predicate is a single row-level filter: `<Column> <Operator> $n`.
type Predicate struct {
	Column   string
	Operator Operator
	Value    any
}

// Having is an aggregate filter applied after grouping.
type Having struct {
	Expr     string
	Operator Operator
	Value    any
}

// Statement is final statement text paired with its bound values.
type Statement struct {
	Text string
	Args []any
}

// Builder assembles a SELECT statement from structured clauses.
//
// The zero value is not useful; start with Select.
type Builder struct {
	prefix     string
	predicates []Predicate
	groupBy    []string
	having     *Having
	orderBy    string
	limit      int
}

// Select starts a builder from a fixed projection and join text.
func Select(prefix string) *Builder {
	return &Builder{prefix: strings.TrimSpace(prefix)}
}

// Where adds a predicate. Predicates are emitted in the order they are added.
func (b *Builder) Where(column string, op Operator, value any) *Builder {
	b.predicates = append(b.predicates, Predicate{Column: column, Operator: op, Value: value})
	return b
}

// GroupBy sets the grouping columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	b.groupBy = columns
	return b
}

// Having sets the aggregate filter. A later call replaces an earlier one.
func (b *Builder) Having(expr string, op Operator, value any) *Builder {
	b.having = &Having{Expr: expr, Operator: op, Value: value}
	return b
}

// OrderBy sets the ordering expression.
func (b *Builder) OrderBy(expr string) *Builder {
	b.orderBy = expr
	return b
}

// Limit sets the row limit. Non-positive values fall back to DefaultLimit.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Predicates returns the predicates added so far.
func (b *Builder) Predicates() []Predicate {
	out := make([]Predicate, len(b.predicates))
	copy(out, b.predicates)
	return out
}

// Build walks the clauses in textual order, appending each bound value to a
// fresh ledger and emitting the matching placeholder.
//
// The first predicate is prefixed with WHERE and every later one with AND.
// The HAVING clause is independent of that chain. LIMIT is always bound last.
func (b *Builder) Build() Statement {
	var ledger Ledger
	var sb strings.Builder

	sb.WriteString(b.prefix)

	for i, p := range b.predicates {
		keyword := "AND"
		if i == 0 {
			keyword = "WHERE"
		}
		n := ledger.Append(p.Value)
		sb.WriteString("\n" + keyword + " " + p.Column + " " + string(p.Operator) + " " + placeholder(n))
	}

	if len(b.groupBy) > 0 {
		sb.WriteString("\nGROUP BY " + strings.Join(b.groupBy, ", "))
	}

	if b.having != nil {
		n := ledger.Append(b.having.Value)
		sb.WriteString("\nHAVING " + b.having.Expr + " " + string(b.having.Operator) + " " + placeholder(n))
	}

	sb.WriteString("\n")
	if b.orderBy != "" {
		sb.WriteString("ORDER BY " + b.orderBy + " ")
	}

	limit := b.limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	n := ledger.Append(limit)
	sb.WriteString("LIMIT " + placeholder(n) + ";")

	return Statement{Text: sb.String(), Args: ledger.Values()}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
