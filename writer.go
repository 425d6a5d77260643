package csvdocument

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	errNilWriter      = errors.New("csvdocument: writer is nil")
	errWriterNoTarget = errors.New("csvdocument: writer destination cannot be nil")
)

// Serialize renders doc with the Dialect built from opts. The only error
// returned is a dialect validation error.
func (doc *Document) Serialize(opts ...Option) (string, error) {
	d, err := NewDialect(opts...)
	if err != nil {
		return "", err
	}
	return d.Serialize(doc), nil
}

// Serialize renders doc as CSV text: the header row, then one row per entry,
// joined by the line delimiter with no trailing line delimiter. Serialize never fails.
func (d Dialect) Serialize(doc *Document) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = d.orDefault().encode(&sb, doc)
	return sb.String()
}

// Write renders doc to w with the Dialect built from opts and flushes it.
func Write(w io.Writer, doc *Document, opts ...Option) error {
	d, err := NewDialect(opts...)
	if err != nil {
		return err
	}
	cw := NewWriter(w, d)
	if err := cw.WriteDocument(doc); err != nil {
		return err
	}
	return cw.Flush()
}

// Writer emits Documents to an io.Writer through an internal buffer.
type Writer struct {
	dst     *bufio.Writer
	dialect Dialect

	err error
}

// NewWriter creates a Writer that renders with d. It panics if w is nil.
func NewWriter(w io.Writer, d Dialect) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:     bufio.NewWriterSize(w, defaultBufferSize),
		dialect: d.orDefault(),
	}
}

// Reset points the writer at dst, keeping its dialect and clearing any stored error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.dialect = w.dialect.orDefault()
	w.err = nil
}

// Dialect returns the dialect the writer renders with.
func (w *Writer) Dialect() Dialect {
	if w == nil {
		return DefaultDialect()
	}
	return w.dialect
}

// WriteBOM emits the UTF-8 byte order mark.
func (w *Writer) WriteBOM() error {
	if err := w.ready(); err != nil {
		return err
	}
	if _, err := w.dst.WriteString(BOMUTF8); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteDocument emits doc. Consecutive documents are not separated; callers
// writing several must add their own line delimiter.
func (w *Writer) WriteDocument(doc *Document) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.dialect.encode(w.dst, doc); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) ready() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	return w.err
}

// encode writes every row of doc. d must already be resolved with orDefault.
func (d Dialect) encode(dst io.StringWriter, doc *Document) error {
	for i, row := range doc.ToArrays() {
		if i > 0 {
			if _, err := dst.WriteString(d.lineDelimiter); err != nil {
				return err
			}
		}
		for j, cell := range row {
			if j > 0 {
				if _, err := dst.WriteString(d.delimiter); err != nil {
					return err
				}
			}
			if _, err := dst.WriteString(d.serializeCell(cell)); err != nil {
				return err
			}
		}
	}
	return nil
}

// serializeCell applies the escaping rules in order; the first match wins.
func (d Dialect) serializeCell(cell Cell) string {
	if f, ok := cell.Number(); ok {
		return formatNumber(f)
	}
	text := cell.String()

	// A numeric-looking string would otherwise be read back as a number.
	if _, ok := parseNumber(text); ok {
		return d.escape(text)
	}
	if strings.Contains(text, d.delimiter) || strings.Contains(text, d.lineDelimiter) {
		return d.escape(text)
	}
	if strings.Contains(text, d.quote) &&
		!(d.allowUnescapedQuotes && !strings.HasPrefix(text, d.quote)) {
		return d.escape(text)
	}
	return text
}

func (d Dialect) escape(text string) string {
	return d.quote + strings.ReplaceAll(text, d.quote, d.quoteEscape) + d.quote
}
