package pgescape

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// Client wraps a database/sql handle with support for formatted statements.
// It provides the same functionality as sql.DB, and adds Query for
// statements whose identifiers or literals are filled in with Format.
type Client struct {
	*sql.DB
}

// NewClient opens a PostgreSQL database through the pgx driver.
// The connection string is parsed immediately, but no connection is made
// until the first statement runs.
//
// Example:
//
//	client, err := pgescape.NewClient(ctx, "postgres://app@localhost/app")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	return &Client{stdlib.OpenDB(*config)}, nil
}

// NewClientFromDB wraps an already opened handle.
func NewClientFromDB(db *sql.DB) *Client {
	return &Client{db}
}

// Query creates a new Query from a Format template. Arguments for the
// template's %I, %L and %s conversions go in Query.Arguments; values for
// native $1, $2, ... placeholders go in Query.Parameters.
//
// Example:
//
//	q := client.Query("ALTER TABLE %I RENAME TO %I")
//	q.Arguments = []any{"orders", "Orders_2024"}
//	_, err := q.Exec(ctx)
func (c *Client) Query(format string) *Query {
	return &Query{
		client: c,
		format: format,
	}
}
