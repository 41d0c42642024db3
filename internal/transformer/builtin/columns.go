// Package builtin contains the reusable roster-cleaning transformers.
// Stages run in a fixed order assembled by the cleaner; each consumes a
// table and returns the next version, reporting anomalies through an
// issue.Collector where applicable.
package builtin

import (
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Columns renames input column labels to canonical field names via an
// alias table. Lookup keys are trimmed and lowercased; labels with no
// alias keep their trimmed, lowercased form. Columns are never dropped.
type Columns struct {
	// Aliases maps normalized input labels to canonical field names.
	// Every canonical name should map to itself.
	Aliases map[string]string
}

func (c Columns) Apply(in records.Table) records.Table {
	rename := make(map[string]string, len(in.Columns))
	out := records.Table{Columns: make([]string, 0, len(in.Columns)), Rows: in.Rows}

	used := make(map[string]bool, len(in.Columns))
	for _, col := range in.Columns {
		key := strings.ToLower(strings.TrimSpace(col))
		target := key
		if mapped, ok := c.Aliases[key]; ok {
			target = mapped
		}
		if used[target] {
			// Two source headers collapsing onto one canonical name:
			// the first wins, the rest keep their normalized label.
			target = key
		}
		used[target] = true
		rename[col] = target
		out.Columns = append(out.Columns, target)
	}

	for i, r := range in.Rows {
		nr := make(records.Record, len(r))
		for k, v := range r {
			if target, ok := rename[k]; ok {
				nr[target] = v
			} else {
				nr[k] = v
			}
		}
		out.Rows[i] = nr
	}
	return out
}
