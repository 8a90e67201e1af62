package models

// TableKind identifies which layout a table was materialized with.
type TableKind string

const (
	// TableKeyValue is a label/value(/unit) table.
	TableKeyValue TableKind = "key_value"
	// TableGeneric is a tabular table with an optional header row.
	TableGeneric TableKind = "generic"
)

// Row is one materialized data row.
type Row struct {
	// Key is the identifying label when the table has a key column.
	Key string `json:"key,omitempty"`
	// Cells holds the row values in column order (key column excluded).
	Cells []Cell `json:"cells"`
}

// Table is the tabular value produced from one region.
type Table struct {
	// Name is the region name.
	Name string `json:"name"`
	// Kind is the layout the table was read with.
	Kind TableKind `json:"kind"`
	// Region is the sheet span the table was read from.
	Region Region `json:"region"`
	// Style is the presentation preset tag.
	Style StylePreset `json:"style"`
	// KeyColumn names the column promoted to each row's Key (optional).
	KeyColumn string `json:"key_column,omitempty"`
	// Columns names the value columns, header-derived or positional.
	Columns []string `json:"columns"`
	// HeaderRow is the sheet row used as header (nil when positional).
	HeaderRow *int `json:"header_row,omitempty"`
	// Rows holds the data rows.
	Rows []Row `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// HasHeader reports whether Columns came from a header row.
func (t *Table) HasHeader() bool {
	return t.HeaderRow != nil
}

// ColumnIndex returns the index of the named column in Columns, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Lookup returns every row whose Key equals key. Keys are not unique.
func (t *Table) Lookup(key string) []Row {
	var out []Row
	for _, r := range t.Rows {
		if r.Key == key {
			out = append(out, r)
		}
	}
	return out
}

// Head returns a shallow copy of the table limited to the first n data rows.
func (t *Table) Head(n int) *Table {
	h := *t
	if n >= 0 && n < len(t.Rows) {
		h.Rows = t.Rows[:n]
	}
	return &h
}
