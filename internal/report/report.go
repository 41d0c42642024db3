// Package report renders a Clean Result into a standalone HTML
// validation report: a summary of the run statistics followed by one
// section per issue set, so a reviewer can see every corrective action
// the pipeline took.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ferdo-djingga/client-data-cleaner/internal/cleaner"
	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
)

// maxRowsPerSection caps how many flagged rows each issue table shows.
const maxRowsPerSection = 30

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"/><title>Validation Report</title></head>
<body>
<h1>Validation Report</h1>
<p>Run {{.RunID}} &middot; generated {{.Generated}}</p>
<section><h2>Summary</h2><ul>
  <li>Rows in: <strong>{{.Stats.RowsInput}}</strong></li>
  <li>Rows out: <strong>{{.Stats.RowsOutput}}</strong></li>
  <li>Dropped (unreachable): <strong>{{.Stats.RowsDroppedUnreachable}}</strong></li>
  <li>Invalid emails: <strong>{{.Stats.InvalidEmailCount}}</strong></li>
  <li>Invalid signup dates: <strong>{{.Stats.InvalidDateCount}}</strong></li>
  <li>Duration (s): <strong>{{printf "%.4f" .Stats.DurationSeconds}}</strong></li>
</ul></section>
{{range .Sections}}
<section><h3>{{.Title}}</h3>
{{if .Empty}}<em>None</em>{{else if .Summary}}<p>Count: <strong>{{.Count}}</strong></p>{{else}}
<table border="1"><thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody></table>
{{if .Truncated}}<p><em>showing first {{len .Rows}} of {{.Total}} rows</em></p>{{end}}
{{end}}</section>
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportHTML))

type section struct {
	Title     string
	Summary   bool
	Count     int
	Columns   []string
	Rows      [][]string
	Empty     bool
	Truncated bool
	Total     int
}

type page struct {
	RunID     string
	Generated string
	Stats     cleaner.Stats
	Sections  []section
}

// Write renders the result to w. Each run gets a fresh ID so reports
// from repeated runs over the same input can be told apart.
func Write(w io.Writer, res cleaner.Result) error {
	p := page{
		RunID:     uuid.New().String(),
		Generated: time.Now().Format(time.RFC3339),
		Stats:     res.Stats,
	}
	for _, set := range res.Issues {
		p.Sections = append(p.Sections, buildSection(set))
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func buildSection(set issue.Set) section {
	s := section{Title: titleOf(set.Name)}
	if set.Summary {
		s.Summary = true
		s.Count = set.Count
		return s
	}
	total := len(set.Rows.Rows)
	if total == 0 {
		s.Empty = true
		return s
	}
	s.Columns = set.Rows.Columns
	s.Total = total
	for i, r := range set.Rows.Rows {
		if i == maxRowsPerSection {
			s.Truncated = true
			break
		}
		row := make([]string, len(set.Rows.Columns))
		for j, col := range set.Rows.Columns {
			row[j] = r.String(col)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// titleOf turns an issue-set name into a section heading, e.g.
// "duplicate_email_rows" -> "Duplicate Email Rows".
func titleOf(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
