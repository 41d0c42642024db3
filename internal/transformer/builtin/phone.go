package builtin

import (
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// Phone strips every non-digit character from a present phone value,
// keeping a single leading "+" when the value starts with one. A result
// that is empty (or a bare "+") becomes absent. Formatting punctuation
// and extensions are not recoverable; this is lossy on purpose.
type Phone struct{}

func (Phone) Apply(in records.Table) records.Table {
	if !in.HasColumn(schema.Phone) {
		return in
	}
	for _, r := range in.Rows {
		if !r.Present(schema.Phone) {
			continue
		}
		s := r.String(schema.Phone)
		var out string
		if strings.HasPrefix(s, "+") {
			out = "+" + digitsOf(s[1:])
		} else {
			out = digitsOf(s)
		}
		if out == "" || out == "+" {
			r[schema.Phone] = nil
			continue
		}
		r[schema.Phone] = out
	}
	return in
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
