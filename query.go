package pgescape

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptySQL is returned when the query template is empty.
	ErrEmptySQL = errors.New("query SQL cannot be empty")

	// ErrArgumentNotUsed is returned when an argument is not referenced by any conversion in the template.
	ErrArgumentNotUsed = errors.New("argument not used in query")

	// ErrNoClient is returned when a Query is run without a Client.
	ErrNoClient = errors.New("query has no client")
)

// Query represents a statement built from a Format template.
//
// Use Client.Query() to create a new Query instance.
type Query struct {
	// Arguments are consumed by the %I, %L and %s conversions of the template.
	Arguments []any

	// Parameters are passed to the driver as values for $1, $2, ...
	Parameters []any

	client *Client
	format string
	sql    string
}

// translate renders format with args. Unlike Format it fails when an
// argument is never referenced, since that almost always means the template
// and the arguments went out of sync.
func translate(format string, args []any) (string, error) {
	if format == "" {
		return "", ErrEmptySQL
	}
	result, used, err := formatArgs(format, args)
	if err != nil {
		return "", err
	}
	for i, ok := range used {
		if !ok {
			return "", fmt.Errorf("%w: argument %d", ErrArgumentNotUsed, i+1)
		}
	}
	return result, nil
}

// translate applies the template to the Query's arguments.
func (q *Query) translate() error {
	translatedSQL, err := translate(q.format, q.Arguments)
	if err != nil {
		return fmt.Errorf("failed to translate query: %w", err)
	}
	q.sql = translatedSQL
	return nil
}

// SQL returns the statement sent by the last Exec or Read, or the empty
// string if neither has run.
func (q *Query) SQL() string {
	return q.sql
}

// Exec translates the template and executes the statement without
// returning rows, e.g. DDL.
//
// Returns an error if translation fails or if the
// underlying statement execution fails.
func (q *Query) Exec(ctx context.Context) (sql.Result, error) {
	if q.client == nil || q.client.DB == nil {
		return nil, ErrNoClient
	}
	if err := q.translate(); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("sql", q.sql).
		Int("parameters", len(q.Parameters)).
		Msg("executing statement")
	return q.client.ExecContext(ctx, q.sql, q.Parameters...)
}

// Read translates the template and runs a statement that returns rows.
// The caller must close the returned rows.
func (q *Query) Read(ctx context.Context) (*sql.Rows, error) {
	if q.client == nil || q.client.DB == nil {
		return nil, ErrNoClient
	}
	if err := q.translate(); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("sql", q.sql).
		Int("parameters", len(q.Parameters)).
		Msg("running query")
	return q.client.QueryContext(ctx, q.sql, q.Parameters...)
}
