package main

import (
	"context"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mevdschee/pgescape"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().
		Logger()
	ctx := log.Logger.WithContext(context.Background())

	// Create client (requires a reachable PostgreSQL server)
	client, err := pgescape.NewClient(ctx, "postgres://postgres@localhost:5432/postgres")
	if err != nil {
		log.Fatal().Err(err).Msg("create client")
	}
	defer client.Close()

	// Example 1: DDL with identifiers and a default literal
	fmt.Println("Example 1: DDL operations")
	ddlOperations(ctx, client)

	// Example 2: Mix formatted identifiers and $n bind parameters
	fmt.Println("\nExample 2: Mixing %I identifiers and $1 parameters")
	mixedParameters(ctx, client)

	// Example 3: Fragments inside a squirrel builder
	fmt.Println("\nExample 3: squirrel builder")
	builderQuery(ctx, client)
}

func ddlOperations(ctx context.Context, client *pgescape.Client) {
	// "Audit Log" needs quoting, "user" is a reserved word, note is left alone
	q := client.Query(`CREATE TABLE IF NOT EXISTS %I.%I (
		id bigserial PRIMARY KEY,
		%I text NOT NULL,
		note text DEFAULT %L
	)`)
	q.Arguments = []any{"public", "Audit Log", "user", `n/a \ unknown`}

	// Resulting SQL: CREATE TABLE IF NOT EXISTS public."Audit Log" (... "user" text ..., note text DEFAULT E'n/a \\ unknown')
	if _, err := q.Exec(ctx); err != nil {
		log.Error().Err(err).Msg("DDL error")
		return
	}
	fmt.Println("Table created successfully")
}

func mixedParameters(ctx context.Context, client *pgescape.Client) {
	// %I is replaced with a quoted identifier, $1 stays a native bind parameter
	q := client.Query("SELECT id, note FROM %I.%I WHERE %I = $1")
	q.Arguments = []any{"public", "Audit Log", "user"}
	q.Parameters = []any{"alice"}

	rows, err := q.Read(ctx)
	if err != nil {
		log.Error().Err(err).Msg("query error")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			note *string
		)
		if err := rows.Scan(&id, &note); err != nil {
			log.Error().Err(err).Msg("scan error")
			return
		}
		fmt.Println(id, pgescape.QuoteNullable(note))
	}
	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("iteration error")
	}
}

func builderQuery(ctx context.Context, client *pgescape.Client) {
	query, args, err := sq.Select("count(*)").
		From(pgescape.QuoteQualifiedIdentifier("public", "Audit Log")).
		Where(pgescape.Sqlf("%I <> %L", "user", "system")).
		Where(sq.Gt{"id": 10}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Error().Err(err).Msg("build error")
		return
	}

	// Resulting SQL: SELECT count(*) FROM public."Audit Log" WHERE "user" <> 'system' AND id > $1
	var count int64
	if err := client.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Error().Err(err).Msg("query error")
		return
	}
	fmt.Println("rows:", count)
}
