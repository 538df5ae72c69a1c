package pgescape

import (
	"strings"
	"testing"
)

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		name       string
		literalIn  string
		literalOut string
	}{
		{
			name:       "empty string is not prefixed with E",
			literalIn:  "",
			literalOut: `''`,
		},
		{
			name:       "simple",
			literalIn:  "hello",
			literalOut: `'hello'`,
		},
		{
			name:       "backslash is prefixed with E",
			literalIn:  `\`,
			literalOut: `E'\\'`,
		},
		{
			name:       "quote is not prefixed with E",
			literalIn:  `'`,
			literalOut: `''''`,
		},
		{
			name:       "quotes and backslashes are escaped",
			literalIn:  `asdf'qwer\uiop`,
			literalOut: `E'asdf''qwer\\uiop'`,
		},
		{
			name:       "quote and backslash",
			literalIn:  `a'b\c`,
			literalOut: `E'a''b\\c'`,
		},
		{
			name:       "double quote is not escaped",
			literalIn:  `say "hi"`,
			literalOut: `'say "hi"'`,
		},
		{
			name:       "non-ascii passes through",
			literalIn:  "Grüße, 世界",
			literalOut: `'Grüße, 世界'`,
		},
		{
			name:       "newline passes through",
			literalIn:  "line1\nline2",
			literalOut: "'line1\nline2'",
		},
		{
			name:       "already quoted",
			literalIn:  `'x'`,
			literalOut: `'''x'''`,
		},
		{
			name:       "with sql injection attempt",
			literalIn:  `'; DROP TABLE customers; --`,
			literalOut: `'''; DROP TABLE customers; --'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literalOut := QuoteLiteral(tt.literalIn)
			if literalOut != tt.literalOut {
				t.Errorf("QuoteLiteral(%q) = %q, want %q", tt.literalIn, literalOut, tt.literalOut)
			}
		})
	}
}

func TestQuoteLiteralNotIdempotent(t *testing.T) {
	once := QuoteLiteral(`it's`)
	twice := QuoteLiteral(once)
	if twice == once {
		t.Errorf("QuoteLiteral(%q) = %q, want it quoted again", once, twice)
	}
	if twice != `'''it''''s'''` {
		t.Errorf("QuoteLiteral(%q) = %q, want %q", once, twice, `'''it''''s'''`)
	}
}

func TestQuoteLiteralSingleAllocation(t *testing.T) {
	in := strings.Repeat(`a'\`, 1000)
	if allocs := testing.AllocsPerRun(100, func() { _ = QuoteLiteral(in) }); allocs != 1 {
		t.Errorf("QuoteLiteral allocated %v times, want 1", allocs)
	}
	want := 1 + 2 + len(in) + 2000
	if got := len(QuoteLiteral(in)); got != want {
		t.Errorf("len(QuoteLiteral) = %d, want %d", got, want)
	}
}

func TestQuoteNullable(t *testing.T) {
	value := `O'Hara`
	if got := QuoteNullable(&value); got != `'O''Hara'` {
		t.Errorf("QuoteNullable(%q) = %q, want %q", value, got, `'O''Hara'`)
	}
	if got := QuoteNullable(nil); got != "NULL" {
		t.Errorf("QuoteNullable(nil) = %q, want NULL", got)
	}
}

func BenchmarkQuoteLiteral(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"simple", "active"},
		{"escaped", `C:\Users\o'hara`},
		{"long", strings.Repeat(`it's \ `, 128)},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = QuoteLiteral(tc.input)
			}
		})
	}
}
