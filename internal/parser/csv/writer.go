package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Write emits the table as CSV in its current column order, header
// first. Absent cells become empty fields. The column order produced by
// the pipeline is preserved exactly.
func Write(w io.Writer, t records.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, len(t.Columns))
	for i, r := range t.Rows {
		for j, col := range t.Columns {
			row[j] = r.String(col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
