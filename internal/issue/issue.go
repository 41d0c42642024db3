// Package issue implements the side channel on which pipeline stages
// report anomalies. Flagged rows are snapshotted at the moment of
// detection; the main record set moves on independently.
package issue

import "github.com/ferdo-djingga/client-data-cleaner/pkg/records"

// Set is a named finding: either a row snapshot or a single summary
// count. Exactly one of Rows/Count is meaningful, selected by Summary.
type Set struct {
	Name    string
	Rows    records.Table
	Count   int
	Summary bool
}

// Len returns the number of flagged rows, or the summary count.
func (s Set) Len() int {
	if s.Summary {
		return s.Count
	}
	return len(s.Rows.Rows)
}

// Collector accumulates issue sets in detection order. A Collector is
// built per pipeline invocation and never shared across runs, so no
// locking is needed.
type Collector struct {
	order []string
	sets  map[string]Set
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{sets: make(map[string]Set)}
}

// AddRows records a row-subset issue set under name. The rows are
// deep-copied so later stages cannot mutate the snapshot.
func (c *Collector) AddRows(name string, columns []string, rows []records.Record) {
	snap := records.Table{Columns: append([]string(nil), columns...)}
	snap.Rows = make([]records.Record, len(rows))
	for i, r := range rows {
		snap.Rows[i] = r.Clone()
	}
	c.put(Set{Name: name, Rows: snap})
}

// AddCount records a single-count summary issue set under name.
func (c *Collector) AddCount(name string, n int) {
	c.put(Set{Name: name, Count: n, Summary: true})
}

func (c *Collector) put(s Set) {
	if _, seen := c.sets[s.Name]; !seen {
		c.order = append(c.order, s.Name)
	}
	c.sets[s.Name] = s
}

// Get returns the issue set registered under name.
func (c *Collector) Get(name string) (Set, bool) {
	s, ok := c.sets[name]
	return s, ok
}

// RowCount returns the number of flagged rows for name, or 0 when the
// set was never recorded.
func (c *Collector) RowCount(name string) int {
	if s, ok := c.sets[name]; ok {
		return s.Len()
	}
	return 0
}

// Sets returns all issue sets in detection order.
func (c *Collector) Sets() []Set {
	out := make([]Set, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sets[name])
	}
	return out
}
