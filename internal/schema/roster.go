// Package schema declares the canonical client-roster schema: the fixed
// output column order and the built-in header alias table.
package schema

// Canonical field names, in output order. Columns not in this list pass
// through the pipeline untouched and are appended after these.
const (
	ClientID    = "client_id"
	FirstName   = "first_name"
	LastName    = "last_name"
	FullName    = "full_name"
	Email       = "email"
	EmailDomain = "email_domain"
	Phone       = "phone"
	SignupDate  = "signup_date"
	Plan        = "plan"
	Country     = "country"
	Company     = "company"
	Notes       = "notes"
)

// CanonicalColumns is the declared output order of canonical fields.
var CanonicalColumns = []string{
	ClientID, FirstName, LastName, FullName,
	Email, EmailDomain, Phone, SignupDate,
	Plan, Country, Company, Notes,
}

// DefaultAliases maps trimmed, lowercased header labels to canonical
// field names. Every canonical name maps to itself so a pre-canonical
// file round-trips unchanged; synonyms cover the header spellings seen
// in client exports.
var DefaultAliases = map[string]string{
	"client id": ClientID, "client_id": ClientID, "id": ClientID, "clientid": ClientID,
	"full name": FullName, "name": FullName, "fullname": FullName, "full_name": FullName,
	"first name": FirstName, "firstname": FirstName, "first_name": FirstName,
	"last name": LastName, "lastname": LastName, "last_name": LastName,
	"email": Email, "e-mail": Email, "mail": Email,
	"email_domain": EmailDomain,
	"phone": Phone, "mobile": Phone, "telephone": Phone,
	"signup date": SignupDate, "signupdate": SignupDate, "signup_date": SignupDate,
	"created at": SignupDate, "created": SignupDate,
	"plan": Plan, "tier": Plan,
	"country": Country, "company": Company, "notes": Notes,
}

// DefaultReachability is the built-in any-of reachability requirement:
// a row must carry an email or a phone to be worth keeping.
var DefaultReachability = [][]string{{Email, Phone}}

// Aliases returns DefaultAliases merged with overrides. Overrides win
// on conflict; the identity mapping for canonical names is always kept.
func Aliases(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(DefaultAliases)+len(overrides))
	for k, v := range DefaultAliases {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
