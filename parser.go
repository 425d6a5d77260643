package csvdocument

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse builds a Dialect from opts and parses text with it. The only error
// returned is a dialect validation error.
func Parse(text string, opts ...Option) (*Document, error) {
	d, err := NewDialect(opts...)
	if err != nil {
		return nil, err
	}
	return d.Parse(text), nil
}

// Read consumes r entirely and parses it with the Dialect built from opts.
func Read(r io.Reader, opts ...Option) (*Document, error) {
	d, err := NewDialect(opts...)
	if err != nil {
		return nil, err
	}
	return d.ReadDocument(r)
}

// ReadDocument consumes r entirely and parses the text. Only read errors are returned.
func (d Dialect) ReadDocument(r io.Reader) (*Document, error) {
	if r == nil {
		panic("csvdocument: reader source cannot be nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csvdocument: read document: %w", err)
	}
	return d.Parse(string(data)), nil
}

// Parse converts text into a Document. The first row is always the header.
// Parse never fails: unterminated quotes and ragged rows produce a best-effort
// Document.
func (d Dialect) Parse(text string) *Document {
	return FromArrays(d.parseRows(text))
}

// parseRows runs the quote state machine over text. A cell is the raw byte
// range text[start:i] including its quote markers; unescaping happens when
// the cell is finalised.
func (d Dialect) parseRows(text string) [][]Cell {
	d = d.orDefault()

	rows := make([][]Cell, 1, 16)
	row := make([]Cell, 0, 16)
	inQuotes := false
	start := 0

	for i := 0; i < len(text); {
		rest := text[i:]

		if inQuotes {
			switch {
			case strings.HasPrefix(rest, d.quoteEscape):
				// Escaped quote; must be tested before the closing quote.
				i += len(d.quoteEscape)
				continue
			case strings.HasPrefix(rest, d.quote):
				inQuotes = false
				i += len(d.quote)
				continue
			}
		} else {
			switch {
			case i == start && strings.HasPrefix(rest, d.quote):
				// A quote opens a quoted cell only at the start of the cell.
				inQuotes = true
				i += len(d.quote)
				continue
			case strings.HasPrefix(rest, d.delimiter):
				row = append(row, d.deserializeCell(text[start:i]))
				i += len(d.delimiter)
				start = i
				continue
			case strings.HasPrefix(rest, d.lineDelimiter):
				row = append(row, d.deserializeCell(text[start:i]))
				rows[len(rows)-1] = row
				row = make([]Cell, 0, len(row))
				rows = append(rows, row)
				i += len(d.lineDelimiter)
				start = i
				continue
			}
		}

		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}

	if len(rows) > 1 && len(rows[0]) != 1 && len(row) == 0 && start == len(text) {
		// A line delimiter at the very end closes the last row instead of
		// opening an empty one. With a single column an empty trailing row
		// is a real entry holding "", so it is kept.
		return rows[:len(rows)-1]
	}
	row = append(row, d.deserializeCell(text[start:]))
	rows[len(rows)-1] = row
	return rows
}

// deserializeCell finalises one raw cell. Quoted cells are always strings;
// otherwise a cell that is entirely a numeric literal becomes a number.
func (d Dialect) deserializeCell(raw string) Cell {
	if body, ok := strings.CutPrefix(raw, d.quote); ok {
		// Only a trailing quote is stripped, never some other last character:
		// text after the closing quote stays ("ab"cd reads as ab"cd) and an
		// unterminated cell at end of input keeps all of its content.
		body, _ = strings.CutSuffix(body, d.quote)
		return StringCell(strings.ReplaceAll(body, d.quoteEscape, d.quote))
	}
	if f, ok := parseNumber(raw); ok {
		return NumberCell(f)
	}
	return StringCell(raw)
}
