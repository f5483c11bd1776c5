// Package tabular turns hierarchies into row-oriented tables, stores those
// tables in spreadsheets, CSV files, or the inventory database, and flattens
// any table back into plain text lines
package tabular

import (
	"strings"

	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

// Row is a single table row's cells, in column order
type Row []string

// Header names the exported columns
var Header = Row{"File Path", "File Type", "Modified Date"}

// CellSeparator joins cells when a table is flattened to text
const CellSeparator = " - "

// Sink is anywhere a table can be written
type Sink interface {
	WriteRows(rows []Row) error
}

// Source is anywhere a table can be read back from
type Source interface {
	ReadRows() ([]Row, error)
}

// Export returns the header row followed by one row per hierarchy entry, in
// the hierarchy's order
func Export(h *inventory.Hierarchy) []Row {
	var rows = make([]Row, 0, h.Len()+1)
	rows = append(rows, Header)
	h.Each(func(path string, d inventory.EntryDescriptor) {
		rows = append(rows, Row{path, d.Type, d.ModifiedAt})
	})
	return rows
}

// RowsToLines joins each row's cells into a single line.  The result isn't
// meant to be parsed back into a hierarchy; it's just a plain text view of
// whatever the table holds.
func RowsToLines(rows []Row) []string {
	var lines = make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, CellSeparator)
	}
	return lines
}
