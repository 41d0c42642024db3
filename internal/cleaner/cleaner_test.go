package cleaner

import (
	"reflect"
	"testing"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

/*
TestCleanEndToEnd runs the full pipeline over a roster exercising every
stage: messy headers, padded text, name splitting, mixed-case and
invalid emails, formatted phones, heterogeneous dates, an unreachable
row, and duplicates by folded email and by client_id.
*/
func TestCleanEndToEnd(t *testing.T) {
	in := records.Table{
		Columns: []string{"Client ID", "Name", "E-Mail", "Mobile", "Signup Date"},
		Rows: []records.Record{
			{"Client ID": "1", "Name": "  Ada Lovelace ", "E-Mail": "Ada@Example.COM", "Mobile": "(555) 111-2222", "Signup Date": "2023/01/05"},
			{"Client ID": "2", "Name": "Prince", "E-Mail": "prince@example.com", "Mobile": nil, "Signup Date": "05-01-2023"},
			{"Client ID": "3", "Name": "Grace Hopper", "E-Mail": "not-an-email", "Mobile": "+1 555 333 4444", "Signup Date": "bad"},
			{"Client ID": "4", "Name": "No Contact", "E-Mail": nil, "Mobile": nil, "Signup Date": "2023-02-01"},
			{"Client ID": "5", "Name": "Dup Email", "E-Mail": "ADA@example.com", "Mobile": "555", "Signup Date": "2023-02-02"},
			{"Client ID": "1", "Name": "Dup ID", "E-Mail": "other@example.com", "Mobile": "556", "Signup Date": "2023-02-03"},
		},
	}

	res := Clean(in, Config{})

	if res.Stats.RowsInput != 6 {
		t.Errorf("rows_input = %d, want 6", res.Stats.RowsInput)
	}
	if res.Stats.RowsOutput != 3 {
		t.Errorf("rows_output = %d, want 3", res.Stats.RowsOutput)
	}
	if res.Stats.RowsDroppedUnreachable != 1 {
		t.Errorf("rows_dropped_unreachable = %d, want 1", res.Stats.RowsDroppedUnreachable)
	}
	if res.Stats.InvalidEmailCount != 1 {
		t.Errorf("invalid_email_count = %d, want 1", res.Stats.InvalidEmailCount)
	}
	if res.Stats.InvalidDateCount != 1 {
		t.Errorf("invalid_date_count = %d, want 1", res.Stats.InvalidDateCount)
	}

	// Canonical columns first, derived columns included.
	wantCols := []string{
		schema.ClientID, schema.FirstName, schema.LastName, schema.FullName,
		schema.Email, schema.EmailDomain, schema.Phone, schema.SignupDate,
	}
	if !reflect.DeepEqual(res.Table.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", res.Table.Columns, wantCols)
	}

	first := res.Table.Rows[0]
	if first[schema.Email] != "ada@example.com" {
		t.Errorf("email = %v, want ada@example.com", first[schema.Email])
	}
	if first[schema.EmailDomain] != "example.com" {
		t.Errorf("email_domain = %v, want example.com", first[schema.EmailDomain])
	}
	if first[schema.Phone] != "5551112222" {
		t.Errorf("phone = %v, want 5551112222", first[schema.Phone])
	}
	if first[schema.SignupDate] != "2023-01-05" {
		t.Errorf("signup_date = %v, want 2023-01-05", first[schema.SignupDate])
	}
	if first[schema.FirstName] != "Ada" || first[schema.LastName] != "Lovelace" {
		t.Errorf("name split = %v %v, want Ada Lovelace", first[schema.FirstName], first[schema.LastName])
	}

	second := res.Table.Rows[1]
	// Ambiguous 05-01-2023 resolves month-first.
	if second[schema.SignupDate] != "2023-05-01" {
		t.Errorf("ambiguous date = %v, want 2023-05-01", second[schema.SignupDate])
	}
	if second[schema.FirstName] != "Prince" || second[schema.LastName] != nil {
		t.Errorf("single-token split = %v %v, want Prince <absent>", second[schema.FirstName], second[schema.LastName])
	}

	third := res.Table.Rows[2]
	// Invalid email and date are flagged, not dropped.
	if third[schema.Email] != "not-an-email" {
		t.Errorf("invalid email kept = %v, want not-an-email", third[schema.Email])
	}
	if third[schema.SignupDate] != nil {
		t.Errorf("invalid date = %v, want absent", third[schema.SignupDate])
	}
	if third[schema.Phone] != "+15553334444" {
		t.Errorf("phone = %v, want +15553334444", third[schema.Phone])
	}
}

// rows_output must equal rows_input minus dropped minus both duplicate
// counts, for any input.
func TestCleanCountConservation(t *testing.T) {
	in := records.Table{
		Columns: []string{schema.ClientID, schema.Email, schema.Phone},
		Rows: []records.Record{
			{schema.ClientID: "1", schema.Email: "a@x.com", schema.Phone: nil},
			{schema.ClientID: "2", schema.Email: "A@x.com", schema.Phone: nil},
			{schema.ClientID: "2", schema.Email: "b@x.com", schema.Phone: nil},
			{schema.ClientID: "3", schema.Email: nil, schema.Phone: nil},
			{schema.ClientID: "4", schema.Email: nil, schema.Phone: "555"},
		},
	}
	res := Clean(in, Config{})

	dupEmail, dupID := 0, 0
	for _, s := range res.Issues {
		switch s.Name {
		case "duplicate_email_count":
			dupEmail = s.Len()
		case "duplicate_client_id_count":
			dupID = s.Len()
		}
	}
	want := res.Stats.RowsInput - res.Stats.RowsDroppedUnreachable - dupEmail - dupID
	if res.Stats.RowsOutput != want {
		t.Errorf("rows_output = %d, want %d (input %d - dropped %d - dup email %d - dup id %d)",
			res.Stats.RowsOutput, want, res.Stats.RowsInput,
			res.Stats.RowsDroppedUnreachable, dupEmail, dupID)
	}
}

func TestCleanReachabilityConfig(t *testing.T) {
	in := records.Table{
		Columns: []string{schema.Email},
		Rows:    []records.Record{{schema.Email: nil}},
	}

	// nil selects the default filter; the contactless row is dropped.
	res := Clean(in.Clone(), Config{})
	if res.Stats.RowsOutput != 0 {
		t.Errorf("default reachability: rows_output = %d, want 0", res.Stats.RowsOutput)
	}

	// An explicit empty list disables the filter.
	res = Clean(in.Clone(), Config{Reachability: [][]string{}})
	if res.Stats.RowsOutput != 1 {
		t.Errorf("disabled reachability: rows_output = %d, want 1", res.Stats.RowsOutput)
	}
}

func TestCleanEmptyTable(t *testing.T) {
	res := Clean(records.Table{}, Config{})
	if res.Stats.RowsInput != 0 || res.Stats.RowsOutput != 0 {
		t.Errorf("stats = %+v, want all-zero counters", res.Stats)
	}
	// Unconditional issue sets exist even on empty input.
	names := make([]string, 0, len(res.Issues))
	for _, s := range res.Issues {
		names = append(names, s.Name)
	}
	want := []string{"invalid_emails", "invalid_dates", "dropped_unreachable"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("issue sets = %v, want %v", names, want)
	}
}

func TestStatsMapKeys(t *testing.T) {
	m := Stats{RowsInput: 2, RowsOutput: 1, RowsDroppedUnreachable: 1}.Map()
	want := map[string]any{
		"rows_input":               2,
		"rows_output":              1,
		"rows_dropped_unreachable": 1,
		"invalid_email_count":      0,
		"invalid_date_count":       0,
		"duration_seconds":         0.0,
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Map() = %v, want %v", m, want)
	}
}
