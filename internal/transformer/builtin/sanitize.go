package builtin

import (
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Sanitize trims surrounding whitespace on every text cell and turns
// empty or placeholder text into an explicit absent value. "nan" is the
// stringified form of a missing cell in upstream exports, so it is
// treated as absent rather than as a name.
//
// Sanitize is idempotent: applying it twice equals applying it once.
type Sanitize struct{}

func (Sanitize) Apply(in records.Table) records.Table {
	for _, r := range in.Rows {
		for k, v := range r {
			s, ok := v.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" || s == "nan" {
				r[k] = nil
				continue
			}
			r[k] = s
		}
	}
	return in
}
