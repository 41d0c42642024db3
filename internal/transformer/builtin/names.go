package builtin

import (
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// SplitName derives first_name and last_name from full_name, but only
// for name columns the input did not already supply. An existing
// first_name or last_name column is never overwritten.
//
// Splitting is on whitespace runs: first token becomes first_name, the
// remaining tokens joined by single spaces become last_name. A
// single-token name yields a first_name and an absent last_name.
type SplitName struct{}

func (SplitName) Apply(in records.Table) records.Table {
	if !in.HasColumn(schema.FullName) {
		return in
	}
	needFirst := !in.HasColumn(schema.FirstName)
	needLast := !in.HasColumn(schema.LastName)
	if !needFirst && !needLast {
		return in
	}
	if needFirst {
		in.AddColumn(schema.FirstName)
	}
	if needLast {
		in.AddColumn(schema.LastName)
	}

	for _, r := range in.Rows {
		parts := strings.Fields(r.String(schema.FullName))
		if needFirst {
			if len(parts) > 0 {
				r[schema.FirstName] = parts[0]
			} else {
				r[schema.FirstName] = nil
			}
		}
		if needLast {
			if len(parts) > 1 {
				r[schema.LastName] = strings.Join(parts[1:], " ")
			} else {
				r[schema.LastName] = nil
			}
		}
	}
	return in
}
