package pgescape

import (
	sq "github.com/Masterminds/squirrel"
)

// Fragment is a piece of SQL produced by Format. It implements
// squirrel.Sqlizer so it can be handed to a squirrel builder wherever a
// column, predicate or join clause is accepted:
//
//	sq.Select().
//	    Column(pgescape.Sqlf("%I", "CreatedAt")).
//	    From(pgescape.QuoteQualifiedIdentifier("app", "user")).
//	    Where(pgescape.Sqlf("%I = %L", "status", "active"))
//
// A fragment carries no bind arguments; its values are inlined as quoted
// literals. Placeholder formats other than squirrel.Question rewrite every ?
// in the statement, including ones inside inlined literals.
type Fragment struct {
	format string
	args   []any
}

var _ sq.Sqlizer = Fragment{}

// Sqlf returns a Fragment that renders format with args when the enclosing
// builder is converted to SQL.
func Sqlf(format string, args ...any) Fragment {
	return Fragment{format: format, args: args}
}

// ToSql renders the fragment. Formatting errors are reported by the builder.
func (f Fragment) ToSql() (string, []any, error) {
	sql, err := Format(f.format, f.args...)
	if err != nil {
		return "", nil, err
	}
	return sql, nil, nil
}
