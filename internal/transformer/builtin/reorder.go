package builtin

import (
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Reorder arranges columns canonically: Canonical names first, in their
// declared order (only those actually present), then every remaining
// pass-through column in its existing relative order. Values are
// untouched.
type Reorder struct {
	Canonical []string
}

func (o Reorder) Apply(in records.Table) records.Table {
	ordered := make([]string, 0, len(in.Columns))
	placed := make(map[string]bool, len(in.Columns))
	for _, c := range o.Canonical {
		if in.HasColumn(c) {
			ordered = append(ordered, c)
			placed[c] = true
		}
	}
	for _, c := range in.Columns {
		if !placed[c] {
			ordered = append(ordered, c)
		}
	}
	in.Columns = ordered
	return in
}
