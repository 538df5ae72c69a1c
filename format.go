package pgescape

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrTooFewArguments is returned when a conversion refers to an argument that was not provided.
	ErrTooFewArguments = errors.New("too few arguments for format")

	// ErrUnrecognizedConversion is returned when a conversion type is not one of s, I or L.
	ErrUnrecognizedConversion = errors.New("unrecognized format conversion")

	// ErrUnterminatedConversion is returned when the format ends in the middle of a conversion.
	ErrUnterminatedConversion = errors.New("unterminated format conversion")

	// ErrInvalidArgumentPosition is returned for an explicit argument position of zero.
	ErrInvalidArgumentPosition = errors.New("invalid argument position")

	// ErrNumberOutOfRange is returned when a position or width does not fit in 31 bits.
	ErrNumberOutOfRange = errors.New("format number is out of range")

	// ErrNullIdentifier is returned when a nil argument is formatted with %I.
	ErrNullIdentifier = errors.New("null values cannot be formatted as an SQL identifier")
)

// conversion is a single parsed %[position][flags][width]type specifier.
type conversion struct {
	position  int // 1-based, 0 when implicit
	leftAlign bool
	width     int
	verb      byte
}

// Format builds a statement from a template the way PostgreSQL's format
// function does. Supported conversions:
//
//	%s  the argument as plain text
//	%I  the argument quoted with QuoteIdentifier
//	%L  the argument quoted with QuoteLiteral, or NULL for a nil argument
//	%%  a literal percent sign
//
// A conversion may name its argument explicitly, as in %2$I, and may carry
// a minimum width with an optional - flag for left alignment, as in %-10s.
// A conversion without a position takes the argument following the one
// used by the previous conversion. Arguments that are never referenced are
// ignored.
//
//	Format("DROP TABLE %I", "Order") // DROP TABLE "Order"
//	Format("SELECT %L", "it's")      // SELECT 'it''s'
func Format(format string, args ...any) (string, error) {
	result, _, err := formatArgs(format, args)
	return result, err
}

// formatArgs renders format and reports which arguments were referenced.
func formatArgs(format string, args []any) (string, []bool, error) {
	used := make([]bool, len(args))
	var result strings.Builder
	result.Grow(len(format))

	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			result.WriteByte(c)
			continue
		}
		start := i
		i++
		if i < len(format) && format[i] == '%' {
			result.WriteByte('%')
			continue
		}
		conv, end, err := parseConversion(format, i)
		if err != nil {
			return "", nil, fmt.Errorf("%w at offset %d", err, start)
		}
		i = end

		idx := next
		if conv.position > 0 {
			idx = conv.position - 1
		}
		if idx >= len(args) {
			return "", nil, fmt.Errorf("%w: conversion at offset %d needs argument %d, %d provided", ErrTooFewArguments, start, idx+1, len(args))
		}
		next = idx + 1
		used[idx] = true

		text, err := render(conv.verb, args[idx])
		if err != nil {
			return "", nil, fmt.Errorf("%w: argument %d", err, idx+1)
		}
		writePadded(&result, text, conv.width, conv.leftAlign)
	}
	return result.String(), used, nil
}

// parseConversion parses the conversion that starts after a '%' at offset i
// and returns it together with the offset of its type character.
func parseConversion(format string, i int) (conversion, int, error) {
	var conv conversion

	n, end, err := parseNumber(format, i)
	if err != nil {
		return conv, 0, err
	}
	if end > i && end < len(format) && format[end] == '$' {
		if n == 0 {
			return conv, 0, ErrInvalidArgumentPosition
		}
		conv.position = n
		i = end + 1
		if i < len(format) && format[i] == '-' {
			conv.leftAlign = true
			i++
		}
		if n, end, err = parseNumber(format, i); err != nil {
			return conv, 0, err
		}
		conv.width = n
		i = end
	} else if end > i {
		conv.width = n
		i = end
	} else if i < len(format) && format[i] == '-' {
		conv.leftAlign = true
		if n, end, err = parseNumber(format, i+1); err != nil {
			return conv, 0, err
		}
		conv.width = n
		i = end
	}

	if i >= len(format) {
		return conv, 0, ErrUnterminatedConversion
	}
	switch format[i] {
	case 's', 'I', 'L':
		conv.verb = format[i]
	default:
		r, _ := utf8.DecodeRuneInString(format[i:])
		return conv, 0, fmt.Errorf("%w %q", ErrUnrecognizedConversion, r)
	}
	return conv, i, nil
}

// parseNumber reads a run of ASCII digits starting at i. It returns the value
// and the offset just past the digits; end == i means no digits were found.
func parseNumber(format string, i int) (n int, end int, err error) {
	const maxValue = 1<<31 - 1
	end = i
	for end < len(format) && '0' <= format[end] && format[end] <= '9' {
		n = n*10 + int(format[end]-'0')
		if n > maxValue {
			return 0, 0, ErrNumberOutOfRange
		}
		end++
	}
	return n, end, nil
}

// render applies verb to a single argument.
func render(verb byte, arg any) (string, error) {
	text, ok := argText(arg)
	switch verb {
	case 'I':
		if !ok {
			return "", ErrNullIdentifier
		}
		return QuoteIdentifier(text), nil
	case 'L':
		if !ok {
			return "NULL", nil
		}
		return QuoteLiteral(text), nil
	default:
		return text, nil
	}
}

// argText converts an argument to text, reporting false for SQL NULL.
func argText(arg any) (string, bool) {
	switch v := arg.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	default:
		return fmt.Sprint(v), true
	}
}

func writePadded(b *strings.Builder, text string, width int, leftAlign bool) {
	pad := width - utf8.RuneCountInString(text)
	if pad > 0 && !leftAlign {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text)
	if pad > 0 && leftAlign {
		b.WriteString(strings.Repeat(" ", pad))
	}
}
