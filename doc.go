// Package pgescape quotes identifiers and literals for PostgreSQL so that
// untrusted strings can be embedded in generated SQL.
//
// Bind parameters ($1, $2, ...) are the right tool for data values, but they
// cannot stand in for table names, column names, or values inside DDL. For
// those, pgescape offers the same quoting rules as the server's quote_ident
// and quote_literal functions.
//
// # Identifiers
//
// QuoteIdentifier leaves an identifier alone when PostgreSQL would read it
// back unchanged without quotes, and wraps it in double quotes otherwise:
//
//	pgescape.QuoteIdentifier("users")         // users
//	pgescape.QuoteIdentifier("UserAccounts")  // "UserAccounts"
//	pgescape.QuoteIdentifier("order")         // "order"
//	pgescape.QuoteIdentifier(`a"b`)           // "a""b"
//
// An identifier is left unquoted when it starts with a lowercase ASCII letter
// or underscore, contains only lowercase ASCII letters, digits and
// underscores, and is not one of the reserved words below. The keyword match
// is exact and case-sensitive.
//
// # Literals
//
// QuoteLiteral always quotes. Single quotes and backslashes are doubled, and
// a literal containing a backslash gets the E prefix:
//
//	pgescape.QuoteLiteral("it's")     // 'it''s'
//	pgescape.QuoteLiteral(`a\b`)      // E'a\\b'
//
// Neither function is idempotent: quoting an already quoted string escapes
// it again.
//
// # Format
//
// Format follows PostgreSQL's format function with the %s, %I and %L
// conversions:
//
//	sql, err := pgescape.Format("CREATE TABLE %I.%I (note text DEFAULT %L)",
//	    schema, table, defaultNote)
//
// Sqlf wraps a template as a squirrel.Sqlizer, and Client runs templates
// against a database through the pgx driver:
//
//	client, err := pgescape.NewClient(ctx, "postgres://app@localhost/app")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	q := client.Query("GRANT SELECT ON %I TO %I")
//	q.Arguments = []any{table, role}
//	if _, err := q.Exec(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The quoting functions cannot fail. Format and Query return sentinel errors
// that can be checked with errors.Is():
//   - ErrTooFewArguments
//   - ErrUnrecognizedConversion
//   - ErrUnterminatedConversion
//   - ErrInvalidArgumentPosition
//   - ErrNumberOutOfRange
//   - ErrNullIdentifier
//   - ErrEmptySQL
//   - ErrArgumentNotUsed
//   - ErrNoClient
//
// # Reserved Words
//
// The following words are quoted by QuoteIdentifier: all, analyse, analyze,
// and, any, array, as, asc, asymmetric, authorization, between, bigint,
// binary, bit, boolean, both, case, cast, char, character, check, coalesce,
// collate, collation, column, concurrently, constraint, create, cross,
// current_catalog, current_date, current_role, current_schema, current_time,
// current_timestamp, current_user, dec, decimal, default, deferrable, desc,
// distinct, do, else, end, except, exists, extract, false, fetch, float, for,
// foreign, freeze, from, full, grant, greatest, group, grouping, having,
// ilike, in, initially, inner, inout, int, integer, intersect, interval,
// into, is, isnull, join, json, json_array, json_arrayagg, json_exists,
// json_object, json_objectagg, json_query, json_scalar, json_serialize,
// json_table, json_value, lateral, leading, least, left, like, limit,
// localtime, localtimestamp, merge_action, national, natural, nchar, none,
// normalize, not, notnull, null, nullif, numeric, offset, on, only, or,
// order, out, outer, overlaps, overlay, placing, position, precision,
// primary, real, references, returning, right, row, select, session_user,
// setof, similar, smallint, some, substring, symmetric, system_user, table,
// tablesample, then, time, timestamp, to, trailing, treat, trim, true, union,
// unique, user, using, values, varchar, variadic, verbose, when, where,
// window, with, xmlattributes, xmlconcat, xmlelement, xmlexists, xmlforest,
// xmlnamespaces, xmlparse, xmlpi, xmlroot, xmlserialize, xmltable.
package pgescape
