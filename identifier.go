package pgescape

import (
	"strings"
)

// isLowerAlphaOrUnderscore reports whether r may start an unquoted identifier.
func isLowerAlphaOrUnderscore(r rune) bool {
	return ('a' <= r && r <= 'z') || r == '_'
}

// isLowerAlnumOrUnderscore reports whether r may continue an unquoted identifier.
func isLowerAlnumOrUnderscore(r rune) bool {
	return ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == '_'
}

// QuoteIdentifier returns identifier in a form that can be embedded in a
// PostgreSQL statement and is read back as exactly that identifier.
//
// An identifier that starts with a lowercase ASCII letter or an underscore,
// continues with lowercase ASCII letters, digits or underscores, and is not a
// reserved word is returned unchanged. Anything else, including uppercase
// letters and non-ASCII characters, is wrapped in double quotes with every
// embedded double quote doubled:
//
//	QuoteIdentifier("users")    // users
//	QuoteIdentifier("Users")    // "Users"
//	QuoteIdentifier("select")   // "select"
//	QuoteIdentifier(`my"table`) // "my""table"
//
// The empty string is returned unchanged.
func QuoteIdentifier(identifier string) string {
	needQuoting := false
	numQuotes := 0
	for i, r := range identifier {
		if i == 0 {
			if !isLowerAlphaOrUnderscore(r) {
				needQuoting = true
			}
		} else if !isLowerAlnumOrUnderscore(r) {
			needQuoting = true
		}
		if r == '"' {
			numQuotes++
		}
	}

	if !needQuoting {
		if _, ok := lookupKeyword(identifier); !ok {
			return identifier
		}
	}

	var result strings.Builder
	result.Grow(len(identifier) + numQuotes + 2)
	result.WriteByte('"')
	for i := 0; i < len(identifier); i++ {
		// '"' never occurs inside a multi-byte UTF-8 sequence.
		c := identifier[i]
		if c == '"' {
			result.WriteByte('"')
		}
		result.WriteByte(c)
	}
	result.WriteByte('"')
	return result.String()
}

// QuoteQualifiedIdentifier quotes each part with QuoteIdentifier and joins
// them with dots, e.g. a schema and a table name:
//
//	QuoteQualifiedIdentifier("public", "Order") // public."Order"
func QuoteQualifiedIdentifier(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = QuoteIdentifier(part)
	}
	return strings.Join(quoted, ".")
}
