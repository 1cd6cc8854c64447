// Package query compiles parameterized SQL statements from structured clauses.
//
// Statements are assembled from a fixed prefix, a list of typed predicates,
// grouping, an optional aggregate filter and a trailing ordering/limit. The
// Builder is the only place that assigns placeholder numbers, so the text and
// the bound values can never drift apart.
package query

// Ledger is an ordered, append-only list of bound statement values.
//
// The placeholder of a value is its 1-based position, which is the ledger
// length right after the value was appended.
type Ledger struct {
	values []any
}

// Append adds v to the ledger and returns its placeholder number.
func (l *Ledger) Append(v any) int {
	l.values = append(l.values, v)
	return len(l.values)
}

// Len returns the number of bound values.
func (l *Ledger) Len() int {
	return len(l.values)
}

// Values returns a copy of the bound values in placeholder order.
func (l *Ledger) Values() []any {
	out := make([]any, len(l.values))
	copy(out, l.values)
	return out
}
