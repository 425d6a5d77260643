package csvdocument

// Record is one data row keyed by column name.
type Record map[string]Cell

// Document is an in-memory table. Its fields are plain data: callers may edit
// Columns and Entries freely between Parse and Serialize calls.
type Document struct {
	// Columns are the header names in order. Uniqueness is not enforced.
	Columns []string
	// Entries are the data rows in order. A record may lack a column (it is
	// written as an empty cell) or carry keys outside Columns (they are not written).
	Entries []Record
}

// New returns an empty Document.
func New() *Document {
	return &Document{
		Columns: []string{},
		Entries: []Record{},
	}
}

// FromArrays builds a Document from rows of cells. The first row supplies the
// column names; each later row becomes a record whose cells are matched to
// columns by position. Cells past the last column are dropped and a short row
// leaves its trailing columns absent.
func FromArrays(rows [][]Cell) *Document {
	doc := New()
	if len(rows) == 0 {
		return doc
	}

	doc.Columns = make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		doc.Columns[i] = cell.String()
	}

	doc.Entries = make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		n := min(len(row), len(doc.Columns))
		record := make(Record, n)
		for i := 0; i < n; i++ {
			record[doc.Columns[i]] = row[i]
		}
		doc.Entries = append(doc.Entries, record)
	}
	return doc
}

// ToArrays returns the header row followed by one row per entry. Columns
// missing from a record yield an empty string cell.
func (doc *Document) ToArrays() [][]Cell {
	if doc == nil {
		return [][]Cell{{}}
	}

	rows := make([][]Cell, 0, len(doc.Entries)+1)
	header := make([]Cell, len(doc.Columns))
	for i, column := range doc.Columns {
		header[i] = StringCell(column)
	}
	rows = append(rows, header)

	for _, record := range doc.Entries {
		row := make([]Cell, len(doc.Columns))
		for i, column := range doc.Columns {
			if cell, ok := record[column]; ok {
				row[i] = cell
			} else {
				row[i] = StringCell("")
			}
		}
		rows = append(rows, row)
	}
	return rows
}
