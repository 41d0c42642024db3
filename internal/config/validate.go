// This file adds a lightweight linter for Job values. It performs
// static checks over a decoded Job and returns a list of findings that
// callers can surface in a CLI or tests; warnings need not block a run.
package config

import (
	"fmt"
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
)

// IssueSeverity represents the severity of a configuration finding.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding worth surfacing that need not block.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single lint finding for a Job.
//
// Path is a dotted path into the config (e.g. "storage.kind",
// "reachability[0]"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate lints a Job without mutating it.
func Validate(j Job) []Issue {
	var issues []Issue

	if strings.TrimSpace(j.Input) == "" {
		issues = append(issues, Issue{SeverityError, "input", "input path must not be empty"})
	}
	if strings.TrimSpace(j.Output) == "" {
		issues = append(issues, Issue{SeverityError, "output", "output path must not be empty"})
	}
	if strings.TrimSpace(j.Report) == "" {
		issues = append(issues, Issue{SeverityWarning, "report", "report path empty; no validation report will be written"})
	}
	if len(j.Delimiter) > 1 && len([]rune(j.Delimiter)) > 1 {
		issues = append(issues, Issue{SeverityWarning, "delimiter", "delimiter longer than one character; only the first rune is used"})
	}

	for raw, canon := range j.Aliases {
		if raw != strings.ToLower(strings.TrimSpace(raw)) {
			issues = append(issues, Issue{
				SeverityWarning,
				fmt.Sprintf("aliases[%q]", raw),
				"alias keys are matched after trim+lowercase; this key will never match as written",
			})
		}
		if canon == "" {
			issues = append(issues, Issue{
				SeverityError,
				fmt.Sprintf("aliases[%q]", raw),
				"alias target must not be empty",
			})
		}
	}

	for gi, group := range j.Reachability {
		if len(group) == 0 {
			issues = append(issues, Issue{
				SeverityError,
				fmt.Sprintf("reachability[%d]", gi),
				"an empty any-of group can never be satisfied; every row would be dropped",
			})
			continue
		}
		for _, f := range group {
			if !isCanonical(f) {
				issues = append(issues, Issue{
					SeverityWarning,
					fmt.Sprintf("reachability[%d]", gi),
					fmt.Sprintf("field %q is not a canonical roster field", f),
				})
			}
		}
	}

	issues = append(issues, validateStorage(j.Storage)...)
	issues = append(issues, validateMetrics(j.Metrics)...)
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue
	switch s.Kind {
	case "":
		// sink disabled
	case "postgres", "sqlite":
		if strings.TrimSpace(s.DSN) == "" {
			issues = append(issues, Issue{SeverityError, "storage.dsn", "dsn required when a storage kind is set"})
		}
		if strings.TrimSpace(s.Table) == "" {
			issues = append(issues, Issue{SeverityError, "storage.table", "table required when a storage kind is set"})
		}
	default:
		issues = append(issues, Issue{SeverityError, "storage.kind",
			fmt.Sprintf("unknown storage kind %q (want postgres, sqlite, or empty)", s.Kind)})
	}
	return issues
}

func validateMetrics(m Metrics) []Issue {
	var issues []Issue
	switch m.Backend {
	case "", "none", "pushgateway":
	default:
		issues = append(issues, Issue{SeverityWarning, "metrics.backend",
			fmt.Sprintf("unknown metrics backend %q; metrics will be disabled", m.Backend)})
	}
	return issues
}

func isCanonical(f string) bool {
	for _, c := range schema.CanonicalColumns {
		if c == f {
			return true
		}
	}
	return false
}
