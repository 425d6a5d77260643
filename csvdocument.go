// # csvdocument: A Bidirectional CSV Document Codec for Go
//
// csvdocument converts a tabular Document (ordered column names plus records keyed by column) to and from a single CSV text blob under a configurable Dialect.
//
// # Features
//
// - Multi-character delimiter, line delimiter, quote and quote-escape tokens.
// - Total parser: malformed input (unterminated quotes, ragged rows) always yields a best-effort Document.
// - Cells are either strings or numbers; unquoted numeric literals parse as numbers, quoted cells are always strings.
// - Lenient "allow unescaped quotes" mode that leaves mid-cell quotes untouched on output.
// - Buffered Writer and whole-stream ReadDocument for io.Reader/io.Writer plumbing.
//
// # Getting Started
//
//	doc, err := csvdocument.Parse("c1,c2\n1,\"2\"")
//	if err != nil {
//		// only an invalid dialect fails
//	}
//	out, _ := doc.Serialize(csvdocument.WithDelimiter(";"))
//
// Prefix BOMUTF8 to the output when a spreadsheet application needs it to detect the encoding.
package csvdocument

// BOMUTF8 is the UTF-8 byte order mark. It is never added or stripped by the codec.
const BOMUTF8 = "\uFEFF"
