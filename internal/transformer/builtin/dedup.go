package builtin

import (
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// DeDup removes duplicate rows in two independent keep-first passes,
// strictly ordered: first by case-insensitive email key, then by
// client_id on the result. Rows with an absent key value are never
// duplicates of one another. Each pass snapshots the flagged rows and
// records the removed count; surviving rows keep their relative order.
//
// Keys are hashed with xxh3 so the seen-set stays cheap on wide rosters.
type DeDup struct {
	Issues *issue.Collector
}

func (d DeDup) Apply(in records.Table) records.Table {
	if in.HasColumn(schema.Email) {
		in = d.pass(in, schema.Email, true, "duplicate_email_rows", "duplicate_email_count")
	}
	if in.HasColumn(schema.ClientID) {
		in = d.pass(in, schema.ClientID, false, "duplicate_client_id_rows", "duplicate_client_id_count")
	}
	return in
}

func (d DeDup) pass(in records.Table, field string, foldCase bool, rowsName, countName string) records.Table {
	seen := make(map[uint64]struct{}, len(in.Rows))
	kept := in.Rows[:0]
	var dups []records.Record

	for _, r := range in.Rows {
		if !r.Present(field) {
			kept = append(kept, r)
			continue
		}
		key := r.String(field)
		if foldCase {
			key = strings.ToLower(key)
		}
		h := xxh3.HashString(key)
		if _, dup := seen[h]; dup {
			dups = append(dups, r)
			continue
		}
		seen[h] = struct{}{}
		kept = append(kept, r)
	}

	if d.Issues != nil {
		d.Issues.AddRows(rowsName, in.Columns, dups)
		d.Issues.AddCount(countName, len(dups))
	}
	in.Rows = kept
	return in
}
