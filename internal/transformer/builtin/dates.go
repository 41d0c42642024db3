package builtin

import (
	"time"

	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// isoDate is the canonical calendar-date output form.
const isoDate = "2006-01-02"

// monthFirstLayouts are tried first, so an ambiguous two-field date like
// 05-01-2023 resolves month-first (2023-05-01). This tie-break is a
// deliberate policy carried over from the upstream roster tooling; do
// not reorder these ahead of reconfirming product intent, since a swap
// silently changes which dates are misread rather than rejected.
var monthFirstLayouts = []string{
	isoDate,
	"2006/01/02",
	"2006.01.02",
	"01/02/2006",
	"01-02-2006",
	"01.02.2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"01/02/06",
	"20060102",
}

// dayFirstLayouts are the fallback for values a month-first read cannot
// parse at all (e.g. 25-01-2023, where 25 is no month).
var dayFirstLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
}

// Dates parses free-form signup_date text into ISO form, inferring the
// layout per value so heterogeneous formats across rows are tolerated.
// Rows that fail every layout land in the "invalid_dates" issue set
// with their original value, and the field becomes absent in the main
// set; the row itself survives.
type Dates struct {
	Issues *issue.Collector
}

func (d Dates) Apply(in records.Table) records.Table {
	var invalid []records.Record
	if in.HasColumn(schema.SignupDate) {
		for _, r := range in.Rows {
			if !r.Present(schema.SignupDate) {
				continue
			}
			raw := r.String(schema.SignupDate)
			if t, ok := parseAnyDate(raw); ok {
				r[schema.SignupDate] = t.Format(isoDate)
				continue
			}
			// Snapshot keeps the unparseable value; the main row loses it.
			invalid = append(invalid, r.Clone())
			r[schema.SignupDate] = nil
		}
	}
	if d.Issues != nil {
		d.Issues.AddRows("invalid_dates", in.Columns, invalid)
	}
	return in
}

// parseAnyDate tries month-first layouts, then day-first fallbacks.
func parseAnyDate(s string) (time.Time, bool) {
	for _, layout := range monthFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
