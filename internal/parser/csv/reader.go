// Package csv adapts delimited files to and from the pipeline's record
// model. Reading guarantees the core's input contract: every cell is
// either present text or explicitly absent, never a typed value; blank
// and NA-placeholder cells are collapsed to absent at the boundary.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// DefaultNAValues are cell spellings treated as absent on read,
// matching the upstream roster exports.
var DefaultNAValues = []string{"", "NA", "NaN"}

// Options configures the reader. Zero values select sensible defaults.
type Options struct {
	// Comma is the field delimiter; ',' when zero.
	Comma rune

	// NAValues lists cell values collapsed to absent. nil selects
	// DefaultNAValues.
	NAValues []string

	// Logger receives skipped-row notices. Optional.
	Logger *zap.Logger
}

// Parser reads a delimited file into a records.Table. Safe to reuse
// across inputs; not concurrency-safe.
type Parser struct {
	opt Options
	na  map[string]struct{}
}

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser {
	vals := opt.NAValues
	if vals == nil {
		vals = DefaultNAValues
	}
	na := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		na[v] = struct{}{}
	}
	return &Parser{opt: opt, na: na}
}

// Parse consumes the full input and returns the parsed table plus the
// number of rows skipped for parse errors or width mismatches. The
// first line is the header; a UTF-8 BOM on the first cell is stripped.
// Header labels are kept verbatim — canonicalization is the pipeline's
// first stage, not the reader's job.
func (p *Parser) Parse(r io.Reader) (records.Table, int, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return records.Table{}, 0, fmt.Errorf("read csv header: %w", err)
	}
	header = stripHeaderBOM(header)

	t := records.Table{Columns: append([]string(nil), header...)}
	var skipped int

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logSkip(line, fmt.Sprintf("parse error: %v", err))
			skipped++
			continue
		}
		if len(row) != len(header) {
			p.logSkip(line, fmt.Sprintf("expected %d fields, got %d", len(header), len(row)))
			skipped++
			continue
		}
		rec := make(records.Record, len(row))
		for i, val := range row {
			if _, isNA := p.na[val]; isNA {
				rec[header[i]] = nil
				continue
			}
			rec[header[i]] = val
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, skipped, nil
}

func (p *Parser) logSkip(line int, reason string) {
	if p.opt.Logger != nil {
		p.opt.Logger.Warn("skipping row", zap.Int("line", line), zap.String("reason", reason))
	}
}
