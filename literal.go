package pgescape

import (
	"strings"
)

// QuoteLiteral returns literal as a single-quoted PostgreSQL string constant.
// It matches the server's quote_literal function: single quotes and
// backslashes are doubled, and when the literal contains a backslash the
// result is prefixed with E so that it is read as an escape string
// regardless of standard_conforming_strings:
//
//	QuoteLiteral("")          // ''
//	QuoteLiteral("O'Hara")    // 'O''Hara'
//	QuoteLiteral(`C:\temp`)   // E'C:\\temp'
//
// The result always allocates, since quotes are always added.
func QuoteLiteral(literal string) string {
	needsEPrefix := false
	numRepeatChars := 0
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '\\':
			needsEPrefix = true
			numRepeatChars++
		case '\'':
			numRepeatChars++
		}
	}

	size := len(literal) + numRepeatChars + 2
	if needsEPrefix {
		size++
	}

	var result strings.Builder
	result.Grow(size)
	if needsEPrefix {
		result.WriteByte('E')
	}
	result.WriteByte('\'')
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c == '\\' || c == '\'' {
			result.WriteByte(c)
		}
		result.WriteByte(c)
	}
	result.WriteByte('\'')
	return result.String()
}

// QuoteNullable is QuoteLiteral for an optional value: a nil literal yields
// the unquoted keyword NULL.
func QuoteNullable(literal *string) string {
	if literal == nil {
		return "NULL"
	}
	return QuoteLiteral(*literal)
}
