package pgescape

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name          string
		identifierIn  string
		identifierOut string
	}{
		{
			name:          "empty",
			identifierIn:  "",
			identifierOut: "",
		},
		{
			name:          "underscore",
			identifierIn:  "_",
			identifierOut: "_",
		},
		{
			name:          "single letter",
			identifierIn:  "a",
			identifierOut: "a",
		},
		{
			name:          "simple",
			identifierIn:  "mytable",
			identifierOut: "mytable",
		},
		{
			name:          "with digits and underscores",
			identifierIn:  "my_table_2024",
			identifierOut: "my_table_2024",
		},
		{
			name:          "leading underscore",
			identifierIn:  "_private",
			identifierOut: "_private",
		},
		{
			name:          "leading digit",
			identifierIn:  "1table",
			identifierOut: `"1table"`,
		},
		{
			name:          "uppercase",
			identifierIn:  "MyTable",
			identifierOut: `"MyTable"`,
		},
		{
			name:          "with hyphen",
			identifierIn:  "my-table",
			identifierOut: `"my-table"`,
		},
		{
			name:          "with space",
			identifierIn:  "my table",
			identifierOut: `"my table"`,
		},
		{
			name:          "with dot",
			identifierIn:  "my.table",
			identifierOut: `"my.table"`,
		},
		{
			name:          "with dollar",
			identifierIn:  "price$",
			identifierOut: `"price$"`,
		},
		{
			name:          "with diacritics",
			identifierIn:  "tábla",
			identifierOut: `"tábla"`,
		},
		{
			name:          "only non-ascii",
			identifierIn:  "表格",
			identifierOut: `"表格"`,
		},
		{
			name:          "reserved word",
			identifierIn:  "select",
			identifierOut: `"select"`,
		},
		{
			name:          "reserved word with underscore",
			identifierIn:  "current_user",
			identifierOut: `"current_user"`,
		},
		{
			name:          "reserved word uppercase",
			identifierIn:  "SELECT",
			identifierOut: `"SELECT"`,
		},
		{
			name:          "keyword prefix",
			identifierIn:  "selection",
			identifierOut: "selection",
		},
		{
			name:          "keyword suffix",
			identifierIn:  "user_",
			identifierOut: "user_",
		},
		{
			name:          "unreserved keyword",
			identifierIn:  "name",
			identifierOut: "name",
		},
		{
			name:          "double quote",
			identifierIn:  `my"table`,
			identifierOut: `"my""table"`,
		},
		{
			name:          "only double quotes",
			identifierIn:  `""`,
			identifierOut: `""""""`,
		},
		{
			name:          "already quoted",
			identifierIn:  `"mytable"`,
			identifierOut: `"""mytable"""`,
		},
		{
			name:          "single quote and backslash",
			identifierIn:  `it's\here`,
			identifierOut: `"it's\here"`,
		},
		{
			name:          "with sql injection attempt",
			identifierIn:  `users"; DROP TABLE customers; --`,
			identifierOut: `"users""; DROP TABLE customers; --"`,
		},
		{
			name:          "identifier with emoji",
			identifierIn:  "mytable😀",
			identifierOut: `"mytable😀"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifierOut := QuoteIdentifier(tt.identifierIn)
			if identifierOut != tt.identifierOut {
				t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.identifierIn, identifierOut, tt.identifierOut)
			}
		})
	}
}

func TestQuoteIdentifierKeywords(t *testing.T) {
	for kw := range keywords {
		want := `"` + kw + `"`
		if got := QuoteIdentifier(kw); got != want {
			t.Errorf("QuoteIdentifier(%q) = %q, want %q", kw, got, want)
		}
	}
}

func TestQuoteIdentifierMatchesPgx(t *testing.T) {
	// pgx always quotes, so compare only inputs that need quoting.
	inputs := []string{
		"MyTable",
		"order",
		`a"b"c`,
		"with space",
		"1st",
		"naïve",
		`"`,
	}
	for _, in := range inputs {
		want := pgx.Identifier{in}.Sanitize()
		if got := QuoteIdentifier(in); got != want {
			t.Errorf("QuoteIdentifier(%q) = %q, pgx gives %q", in, got, want)
		}
	}
}

func TestQuoteIdentifierPrintableASCII(t *testing.T) {
	for c := byte(0x20); c < 0x7f; c++ {
		s := "x" + string(c)
		got := QuoteIdentifier(s)
		lower := ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '_'
		if lower && got != s {
			t.Errorf("QuoteIdentifier(%q) = %q, want unchanged", s, got)
		}
		if !lower && !strings.HasPrefix(got, `"`) {
			t.Errorf("QuoteIdentifier(%q) = %q, want quoted", s, got)
		}
	}
}

func TestQuoteIdentifierReturnsInput(t *testing.T) {
	in := strings.Repeat("abc_", 64)
	out := QuoteIdentifier(in)
	if out != in {
		t.Fatalf("QuoteIdentifier(%q) = %q, want unchanged", in, out)
	}
	if allocs := testing.AllocsPerRun(100, func() { _ = QuoteIdentifier(in) }); allocs != 0 {
		t.Errorf("QuoteIdentifier allocated %v times for an unquoted identifier, want 0", allocs)
	}
}

func TestQuoteIdentifierSingleAllocation(t *testing.T) {
	in := strings.Repeat(`A"`, 1000)
	if allocs := testing.AllocsPerRun(100, func() { _ = QuoteIdentifier(in) }); allocs != 1 {
		t.Errorf("QuoteIdentifier allocated %v times, want 1", allocs)
	}
}

func TestQuoteQualifiedIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
		{
			name:  "single part",
			parts: []string{"users"},
			want:  "users",
		},
		{
			name:  "schema and table",
			parts: []string{"public", "Order"},
			want:  `public."Order"`,
		},
		{
			name:  "database schema and table",
			parts: []string{"app", "user", "my.table"},
			want:  `app."user"."my.table"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteQualifiedIdentifier(tt.parts...); got != tt.want {
				t.Errorf("QuoteQualifiedIdentifier(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func BenchmarkQuoteIdentifier(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"simple", "mytable"},
		{"keyword", "select"},
		{"complex", `My "Quoted" Table`},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = QuoteIdentifier(tc.input)
			}
		})
	}
}
