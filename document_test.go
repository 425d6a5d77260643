package csvdocument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Empty(t, doc.Columns)
	assert.Empty(t, doc.Entries)
	assert.Equal(t, [][]Cell{{}}, doc.ToArrays())
}

func TestFromArrays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]Cell
		columns []string
		entries []Record
	}{
		{
			name:    "empty",
			columns: []string{},
			entries: []Record{},
		},
		{
			name:    "headerOnly",
			rows:    [][]Cell{{StringCell("a"), StringCell("b")}},
			columns: []string{"a", "b"},
			entries: []Record{},
		},
		{
			name: "numericHeaderCoerced",
			rows: [][]Cell{
				{NumberCell(1), StringCell("b")},
				{StringCell("x"), NumberCell(2)},
			},
			columns: []string{"1", "b"},
			entries: []Record{{"1": StringCell("x"), "b": NumberCell(2)}},
		},
		{
			name: "shortRow",
			rows: [][]Cell{
				{StringCell("a"), StringCell("b"), StringCell("c")},
				{StringCell("1")},
			},
			columns: []string{"a", "b", "c"},
			entries: []Record{{"a": StringCell("1")}},
		},
		{
			name: "longRow",
			rows: [][]Cell{
				{StringCell("a")},
				{StringCell("1"), StringCell("2"), StringCell("3")},
			},
			columns: []string{"a"},
			entries: []Record{{"a": StringCell("1")}},
		},
		{
			name: "duplicateColumnLastWins",
			rows: [][]Cell{
				{StringCell("a"), StringCell("a")},
				{StringCell("1"), StringCell("2")},
			},
			columns: []string{"a", "a"},
			entries: []Record{{"a": StringCell("2")}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := FromArrays(tc.rows)
			assert.Equal(t, tc.columns, doc.Columns)
			assert.Equal(t, tc.entries, doc.Entries)
		})
	}
}

func TestToArrays(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Columns: []string{"name", "age"},
		Entries: []Record{
			{"name": StringCell("Ada"), "age": NumberCell(36)},
			{"name": StringCell("Bob"), "extra": StringCell("dropped")},
		},
	}

	want := [][]Cell{
		{StringCell("name"), StringCell("age")},
		{StringCell("Ada"), NumberCell(36)},
		{StringCell("Bob"), StringCell("")},
	}
	assert.Equal(t, want, doc.ToArrays())

	var nilDoc *Document
	assert.Equal(t, [][]Cell{{}}, nilDoc.ToArrays())
}

func TestDocumentIsPlainData(t *testing.T) {
	t.Parallel()

	doc, err := Parse("a,b\n1,2")
	require.NoError(t, err)

	doc.Columns = append(doc.Columns, "c")
	doc.Entries[0]["c"] = StringCell("three")
	doc.Entries = append(doc.Entries, Record{"b": StringCell("only b")})

	out, err := doc.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\n1,2,three\n,only b,", out)
}
