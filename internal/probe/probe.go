// Package probe inspects a roster CSV's header and suggests how each
// label would map onto the canonical schema. It exists to help build
// alias overrides for new client exports before running the cleaner.
package probe

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
)

// Mapping is one header's suggested canonical assignment.
type Mapping struct {
	Header    string `json:"header"`
	Canonical string `json:"canonical,omitempty"`
	// Folded is the accent-stripped, lowercased identifier form of the
	// header; when Canonical is empty it is the suggested alias key to
	// add to the job file.
	Folded string `json:"folded"`
}

// Result summarizes a probed file.
type Result struct {
	Mappings []Mapping `json:"mappings"`
	Unmapped []string  `json:"unmapped,omitempty"`
	RowCount int       `json:"sampled_rows"`
}

// Probe reads the header (and counts sample rows) from r, then maps
// each label through the alias table: first verbatim (trim+lower, the
// cleaner's own lookup), then accent-folded as a fallback suggestion.
func Probe(r io.Reader, aliases map[string]string) (Result, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return Result{}, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	res := Result{}
	for _, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		folded := foldHeader(h)
		m := Mapping{Header: h, Folded: folded}
		if canon, ok := aliases[key]; ok {
			m.Canonical = canon
		} else if canon, ok := aliases[strings.ReplaceAll(folded, "_", " ")]; ok {
			m.Canonical = canon
		} else if canon, ok := aliases[folded]; ok {
			m.Canonical = canon
		} else if contains(schema.CanonicalColumns, folded) {
			m.Canonical = folded
		} else {
			res.Unmapped = append(res.Unmapped, h)
		}
		res.Mappings = append(res.Mappings, m)
	}

	for {
		if _, err := cr.Read(); err != nil {
			break
		}
		res.RowCount++
	}
	return res, nil
}

// foldHeader converts arbitrary header text into a lowercase ASCII
// identifier:
//  1. lowercase
//  2. strip accents (NFD → remove Mn → NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
func foldHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
