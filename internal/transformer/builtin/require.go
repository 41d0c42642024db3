package builtin

import (
	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Require drops rows that fail a reachability requirement. Groups is a
// list of any-of field groups: a row is kept iff every group has at
// least one present field. Dropped rows are snapshotted into the
// "dropped_unreachable" issue set and removed from the main set. With
// zero groups every row is kept.
type Require struct {
	Groups [][]string
	Issues *issue.Collector
}

func (q Require) Apply(in records.Table) records.Table {
	kept := in.Rows[:0]
	var dropped []records.Record
	for _, r := range in.Rows {
		if q.reachable(in, r) {
			kept = append(kept, r)
		} else {
			dropped = append(dropped, r)
		}
	}
	if q.Issues != nil {
		q.Issues.AddRows("dropped_unreachable", in.Columns, dropped)
	}
	in.Rows = kept
	return in
}

func (q Require) reachable(t records.Table, r records.Record) bool {
	for _, group := range q.Groups {
		ok := false
		for _, f := range group {
			if t.HasColumn(f) && r.Present(f) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
