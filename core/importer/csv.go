package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"roster-sync/core/normalize"
)

// Table is one parsed CSV document: a folded header index over its data
// rows. Cells are addressed by canonical column name, never by position.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// ReadTable decodes and parses a CSV document. Headers are folded to
// lower-case with underscores and run through the aliases so parsers address
// columns by canonical name regardless of export spelling. Ragged rows are
// tolerated; short rows read as empty cells.
func ReadTable(r io.Reader, aliases map[string]string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	text, _ := decodeText(data)

	cr := csv.NewReader(bytes.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{columns: map[string]int{}}, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		key := headerKey(header)
		if canonical, ok := aliases[key]; ok {
			key = canonical
		}
		if key == "" {
			continue
		}
		// First occurrence wins on duplicate headers.
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	return &Table{columns: columns, rows: records[1:]}, nil
}

// headerKey folds a header cell to its canonical form: trimmed, lower-cased,
// spaces and dashes as underscores.
func headerKey(h string) string {
	key := normalize.Fold(h)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row.
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// HasColumn reports whether the header named a column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Row is one data row addressed through its table's header index.
type Row struct {
	table *Table
	cells []string
}

// Get returns the named cell trimmed of surrounding whitespace, or "" when
// the column or the cell is absent.
func (r Row) Get(name string) string {
	i, ok := r.table.columns[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}
