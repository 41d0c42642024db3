package builtin

import (
	"reflect"
	"testing"

	"github.com/ferdo-djingga/client-data-cleaner/internal/issue"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

/*
TestEmailApply covers email normalization and validation:

  - Present values are lowercased in place.
  - Syntax failures are flagged into invalid_emails but stay in the
    main set.
  - Absent emails are skipped, neither valid nor invalid.
  - The invalid_emails set exists even when empty or when the column
    is missing.
*/
func TestEmailApply(t *testing.T) {
	in := records.Table{
		Columns: []string{schema.Email},
		Rows: []records.Record{
			{schema.Email: "John.DOE@Example.COM"},
			{schema.Email: "broken-at-sign.com"},
			{schema.Email: "x@y"},
			{schema.Email: nil},
			{schema.Email: "ok+tag@sub.example.org"},
		},
	}

	iss := issue.NewCollector()
	got := Email{Issues: iss}.Apply(in)

	wantRows := []records.Record{
		{schema.Email: "john.doe@example.com"},
		{schema.Email: "broken-at-sign.com"},
		{schema.Email: "x@y"},
		{schema.Email: nil},
		{schema.Email: "ok+tag@sub.example.org"},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", got.Rows, wantRows)
	}
	if n := iss.RowCount("invalid_emails"); n != 2 {
		t.Errorf("invalid_emails count = %d, want 2", n)
	}
	set, ok := iss.Get("invalid_emails")
	if !ok {
		t.Fatal("invalid_emails set missing")
	}
	if got := set.Rows.Rows[0][schema.Email]; got != "broken-at-sign.com" {
		t.Errorf("first flagged email = %v, want broken-at-sign.com", got)
	}
}

func TestEmailApplyNoColumn(t *testing.T) {
	iss := issue.NewCollector()
	Email{Issues: iss}.Apply(records.Table{Columns: []string{schema.Phone}})
	set, ok := iss.Get("invalid_emails")
	if !ok {
		t.Fatal("invalid_emails set should exist even without an email column")
	}
	if set.Len() != 0 {
		t.Errorf("invalid_emails len = %d, want 0", set.Len())
	}
}

/*
TestDomainApply covers derivation of email_domain:

  - Substring after the last "@"; a value with no "@" yields itself.
  - Absent email yields an absent domain.
  - Derived even for syntactically invalid emails.
*/
func TestDomainApply(t *testing.T) {
	in := records.Table{
		Columns: []string{schema.Email},
		Rows: []records.Record{
			{schema.Email: "a@x.com"},
			{schema.Email: "weird@@double.org"},
			{schema.Email: "no-at-sign"},
			{schema.Email: nil},
		},
	}
	got := Domain{}.Apply(in)

	wantCols := []string{schema.Email, schema.EmailDomain}
	if !reflect.DeepEqual(got.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", got.Columns, wantCols)
	}
	wantDomains := []any{"x.com", "double.org", "no-at-sign", nil}
	for i, w := range wantDomains {
		if got.Rows[i][schema.EmailDomain] != w {
			t.Errorf("row %d domain = %v, want %v", i, got.Rows[i][schema.EmailDomain], w)
		}
	}
}
