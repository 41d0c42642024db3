// Package cleaner assembles and runs the roster-cleaning pipeline.
//
// A run is a strict sequence of ten stages over one in-memory table:
// column normalization, text sanitization, name splitting, email
// normalization/validation, domain extraction, phone normalization,
// date normalization/validation, reachability filtering, two-pass
// deduplication, and column reordering. Stages communicate anomalies
// through an issue.Collector built per invocation, so concurrent runs
// on distinct tables never interact.
package cleaner

import (
	"time"

	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/internal/transformer"
	"github.com/ferdo-djingga/client-data-cleaner/internal/transformer/builtin"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Config carries the two declarative tables the pipeline is built from.
// Both are data, not code, so tests can swap them freely.
type Config struct {
	// Aliases are extra header aliases merged over the built-in table.
	Aliases map[string]string

	// Reachability lists any-of field groups a row must satisfy to be
	// kept. nil selects the default ({email, phone}); an explicit empty
	// slice disables the filter.
	Reachability [][]string
}

// Stats are the fixed run counters. RowsOutput always equals RowsInput
// minus dropped-unreachable minus both duplicate counts; invalid email
// and date rows stay in the output and are only flagged.
type Stats struct {
	RowsInput              int
	RowsOutput             int
	RowsDroppedUnreachable int
	InvalidEmailCount      int
	InvalidDateCount       int
	DurationSeconds        float64
}

// Map returns the stats under their external reporting keys.
func (s Stats) Map() map[string]any {
	return map[string]any{
		"rows_input":               s.RowsInput,
		"rows_output":              s.RowsOutput,
		"rows_dropped_unreachable": s.RowsDroppedUnreachable,
		"invalid_email_count":      s.InvalidEmailCount,
		"invalid_date_count":       s.InvalidDateCount,
		"duration_seconds":         s.DurationSeconds,
	}
}

// Result is the terminal artifact of a run: the final table, the run
// statistics, and every issue set in detection order. It is immutable
// once returned.
type Result struct {
	Table  records.Table
	Stats  Stats
	Issues []issue.Set
}

// Clean runs the full pipeline over the input table. The input is
// consumed; callers must not use it afterwards. Malformed content is
// never an error here, only an issue-set entry, so Clean cannot fail.
func Clean(in records.Table, cfg Config) Result {
	start := time.Now()
	rowsIn := len(in.Rows)

	groups := cfg.Reachability
	if groups == nil {
		groups = schema.DefaultReachability
	}

	iss := issue.NewCollector()
	chain := transformer.Chain{
		builtin.Columns{Aliases: schema.Aliases(cfg.Aliases)},
		builtin.Sanitize{},
		builtin.SplitName{},
		builtin.Email{Issues: iss},
		builtin.Domain{},
		builtin.Phone{},
		builtin.Dates{Issues: iss},
		builtin.Require{Groups: groups, Issues: iss},
		builtin.DeDup{Issues: iss},
		builtin.Reorder{Canonical: schema.CanonicalColumns},
	}
	out := chain.Apply(in)

	stats := Stats{
		RowsInput:              rowsIn,
		RowsOutput:             len(out.Rows),
		RowsDroppedUnreachable: iss.RowCount("dropped_unreachable"),
		InvalidEmailCount:      iss.RowCount("invalid_emails"),
		InvalidDateCount:       iss.RowCount("invalid_dates"),
		DurationSeconds:        time.Since(start).Seconds(),
	}
	return Result{Table: out, Stats: stats, Issues: iss.Sets()}
}
