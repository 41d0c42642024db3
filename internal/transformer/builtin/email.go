package builtin

import (
	"regexp"
	"strings"

	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// emailRE matches local@domain.tld with a 2+ letter final label. Values
// are lowercased before the check, so lowercase classes suffice.
var emailRE = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Email lowercases every present email value and flags rows whose email
// fails the syntax check into the "invalid_emails" issue set. Flagged
// rows stay in the main set; an absent email is neither valid nor
// invalid and is skipped entirely.
type Email struct {
	Issues *issue.Collector
}

func (e Email) Apply(in records.Table) records.Table {
	var invalid []records.Record
	if in.HasColumn(schema.Email) {
		for _, r := range in.Rows {
			if !r.Present(schema.Email) {
				continue
			}
			v := strings.ToLower(r.String(schema.Email))
			r[schema.Email] = v
			if !emailRE.MatchString(v) {
				invalid = append(invalid, r)
			}
		}
	}
	if e.Issues != nil {
		e.Issues.AddRows("invalid_emails", in.Columns, invalid)
	}
	return in
}

// Domain derives email_domain as the substring after the last "@" of
// the (possibly invalid) email. A value with no "@" yields itself, an
// absent email yields an absent domain. The field is always recomputed,
// never trusted from input.
type Domain struct{}

func (Domain) Apply(in records.Table) records.Table {
	if !in.HasColumn(schema.Email) {
		return in
	}
	in.AddColumn(schema.EmailDomain)
	for _, r := range in.Rows {
		if !r.Present(schema.Email) {
			r[schema.EmailDomain] = nil
			continue
		}
		v := r.String(schema.Email)
		r[schema.EmailDomain] = v[strings.LastIndex(v, "@")+1:]
	}
	return in
}
