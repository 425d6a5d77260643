package csvdocument

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDialect is returned when a Dialect cannot be scanned unambiguously.
var ErrInvalidDialect = errors.New("csvdocument: invalid dialect")

// DialectError describes which Dialect field failed validation and why.
type DialectError struct {
	Field  string
	Value  string
	Reason string
}

// Error formats the dialect error with the stored Field, Value, and Reason values.
func (e *DialectError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvdocument: invalid dialect: %s %q %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidDialect so DialectError participates in errors.Is.
func (e *DialectError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidDialect
}

// Dialect holds the tokens governing CSV syntax. A Dialect is immutable; use
// NewDialect or With to derive a different one. The zero value behaves as
// DefaultDialect.
type Dialect struct {
	delimiter            string
	lineDelimiter        string
	quote                string
	quoteEscape          string
	allowUnescapedQuotes bool
}

// DefaultDialect returns the comma-separated dialect with "\n" rows, '"'
// quotes escaped by doubling, and unescaped mid-cell quotes allowed.
func DefaultDialect() Dialect {
	return Dialect{
		delimiter:            ",",
		lineDelimiter:        "\n",
		quote:                `"`,
		quoteEscape:          `""`,
		allowUnescapedQuotes: true,
	}
}

// NewDialect applies opts over DefaultDialect and validates the result.
func NewDialect(opts ...Option) (Dialect, error) {
	return DefaultDialect().With(opts...)
}

// With returns a copy of d with opts applied. When the quote is overridden
// and the quote escape is not, the escape becomes the doubled quote.
func (d Dialect) With(opts ...Option) (Dialect, error) {
	o := dialectOptions{dialect: d.orDefault()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return Dialect{}, err
		}
	}
	if o.quoteSet && !o.quoteEscapeSet {
		o.dialect.quoteEscape = o.dialect.quote + o.dialect.quote
	}
	if err := o.dialect.validate(); err != nil {
		return Dialect{}, err
	}
	return o.dialect, nil
}

// Delimiter returns the token separating cells.
func (d Dialect) Delimiter() string { return d.orDefault().delimiter }

// LineDelimiter returns the token separating rows.
func (d Dialect) LineDelimiter() string { return d.orDefault().lineDelimiter }

// Quote returns the token that opens and closes a quoted cell.
func (d Dialect) Quote() string { return d.orDefault().quote }

// QuoteEscape returns the token standing for a literal quote inside a quoted cell.
func (d Dialect) QuoteEscape() string { return d.orDefault().quoteEscape }

// AllowUnescapedQuotes reports whether cells with a quote that is not in
// leading position may be written without quoting.
func (d Dialect) AllowUnescapedQuotes() bool { return d.orDefault().allowUnescapedQuotes }

func (d Dialect) orDefault() Dialect {
	if d == (Dialect{}) {
		return DefaultDialect()
	}
	return d
}

func (d Dialect) validate() error {
	tokens := []struct {
		field string
		value string
	}{
		{"delimiter", d.delimiter},
		{"line delimiter", d.lineDelimiter},
		{"quote", d.quote},
		{"quote escape", d.quoteEscape},
	}
	for _, tok := range tokens {
		if tok.value == "" {
			return &DialectError{Field: tok.field, Value: tok.value, Reason: "must not be empty"}
		}
	}
	// The scanner tests quoteEscape before quote, so the escape has to begin
	// with the quote or a closing quote would be indistinguishable.
	if !strings.HasPrefix(d.quoteEscape, d.quote) {
		return &DialectError{Field: "quote escape", Value: d.quoteEscape, Reason: fmt.Sprintf("must start with quote %q", d.quote)}
	}
	return nil
}

type dialectOptions struct {
	dialect        Dialect
	quoteSet       bool
	quoteEscapeSet bool
}

// Option overrides one field of a Dialect.
type Option func(*dialectOptions) error

// WithDialect replaces every field with those of d. Later options still apply on top.
func WithDialect(d Dialect) Option {
	return func(o *dialectOptions) error {
		o.dialect = d.orDefault()
		o.quoteSet = false
		o.quoteEscapeSet = false
		return nil
	}
}

// WithDelimiter sets the cell delimiter.
func WithDelimiter(delimiter string) Option {
	return func(o *dialectOptions) error {
		if delimiter == "" {
			return &DialectError{Field: "delimiter", Value: delimiter, Reason: "must not be empty"}
		}
		o.dialect.delimiter = delimiter
		return nil
	}
}

// WithLineDelimiter sets the row delimiter, for example "\r\n".
func WithLineDelimiter(lineDelimiter string) Option {
	return func(o *dialectOptions) error {
		if lineDelimiter == "" {
			return &DialectError{Field: "line delimiter", Value: lineDelimiter, Reason: "must not be empty"}
		}
		o.dialect.lineDelimiter = lineDelimiter
		return nil
	}
}

// WithQuote sets the quote token.
func WithQuote(quote string) Option {
	return func(o *dialectOptions) error {
		if quote == "" {
			return &DialectError{Field: "quote", Value: quote, Reason: "must not be empty"}
		}
		o.dialect.quote = quote
		o.quoteSet = true
		return nil
	}
}

// WithQuoteEscape sets the token written for a literal quote inside a quoted cell.
// It must start with the quote.
func WithQuoteEscape(quoteEscape string) Option {
	return func(o *dialectOptions) error {
		if quoteEscape == "" {
			return &DialectError{Field: "quote escape", Value: quoteEscape, Reason: "must not be empty"}
		}
		o.dialect.quoteEscape = quoteEscape
		o.quoteEscapeSet = true
		return nil
	}
}

// WithAllowUnescapedQuotes toggles the lenient quote mode.
func WithAllowUnescapedQuotes(allow bool) Option {
	return func(o *dialectOptions) error {
		o.dialect.allowUnescapedQuotes = allow
		return nil
	}
}
