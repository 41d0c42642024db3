// Package records defines the in-memory tabular model the cleaning
// pipeline operates on.
//
// A cell is either present text or absent. Absence is modeled as a nil
// value (or a missing key), never as the empty string: the input adapter
// collapses blanks and NA placeholders to nil before records reach the
// pipeline, and every stage preserves that distinction.
package records

// Record maps a field name to its optional value. Values are strings
// when present and nil when absent.
type Record map[string]any

// Present reports whether field holds a value.
func (r Record) Present(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// String returns the field's value, or "" when the field is absent.
func (r Record) String(field string) string {
	if v, ok := r[field]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Clone returns a shallow copy of the record. Cell values are strings,
// so a shallow copy is a full copy.
func (r Record) Clone() Record {
	cp := make(Record, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// Table is an ordered record set: a column order plus rows in source
// order. Normalizing stages must preserve row order; filtering stages
// may remove rows but never reorder the survivors.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether name is one of the table's columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends name to the column order if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Clone deep-copies the table; mutating the copy never touches the
// original. Issue snapshots rely on this.
func (t Table) Clone() Table {
	cp := Table{Columns: append([]string(nil), t.Columns...)}
	cp.Rows = make([]Record, len(t.Rows))
	for i, r := range t.Rows {
		cp.Rows[i] = r.Clone()
	}
	return cp
}
