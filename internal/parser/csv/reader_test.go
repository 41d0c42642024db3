package csv

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

/*
TestParse covers the input contract:

  - Header labels are kept verbatim (canonicalization is not the
    reader's job); a leading BOM is stripped.
  - Blank and NA-placeholder cells become explicitly absent.
  - Rows with the wrong field count are skipped and counted.
  - Custom delimiter and NA spellings take effect.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		opt         Options
		input       string
		wantCols    []string
		wantRows    []records.Record
		wantSkipped int
	}{
		{
			name:     "basic_with_na",
			input:    "Client ID,Email\n1,a@x.com\n2,NA\n3,\n",
			wantCols: []string{"Client ID", "Email"},
			wantRows: []records.Record{
				{"Client ID": "1", "Email": "a@x.com"},
				{"Client ID": "2", "Email": nil},
				{"Client ID": "3", "Email": nil},
			},
		},
		{
			name:     "bom_stripped",
			input:    "\ufeffid,email\n1,a@x.com\n",
			wantCols: []string{"id", "email"},
			wantRows: []records.Record{{"id": "1", "email": "a@x.com"}},
		},
		{
			name:        "width_mismatch_skipped",
			input:       "a,b\n1,2\n1,2,3\n4,5\n",
			wantCols:    []string{"a", "b"},
			wantRows:    []records.Record{{"a": "1", "b": "2"}, {"a": "4", "b": "5"}},
			wantSkipped: 1,
		},
		{
			name:     "custom_delimiter",
			opt:      Options{Comma: ';'},
			input:    "a;b\nx;y\n",
			wantCols: []string{"a", "b"},
			wantRows: []records.Record{{"a": "x", "b": "y"}},
		},
		{
			name:     "custom_na_values",
			opt:      Options{NAValues: []string{"-"}},
			input:    "a\n-\nNA\n",
			wantCols: []string{"a"},
			wantRows: []records.Record{{"a": nil}, {"a": "NA"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, skipped, err := NewParser(tc.opt).Parse(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if skipped != tc.wantSkipped {
				t.Errorf("skipped = %d, want %d", skipped, tc.wantSkipped)
			}
			if !reflect.DeepEqual(got.Columns, tc.wantCols) {
				t.Errorf("columns = %v, want %v", got.Columns, tc.wantCols)
			}
			if !reflect.DeepEqual(got.Rows, tc.wantRows) {
				t.Errorf("rows = %v, want %v", got.Rows, tc.wantRows)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, _, err := NewParser(Options{}).Parse(strings.NewReader(""))
	if err == nil {
		t.Fatal("want error on missing header")
	}
}

func TestWrite(t *testing.T) {
	tab := records.Table{
		Columns: []string{"client_id", "email"},
		Rows: []records.Record{
			{"client_id": "1", "email": "a@x.com"},
			{"client_id": "2", "email": nil},
		},
	}
	var b strings.Builder
	if err := Write(&b, tab); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "client_id,email\n1,a@x.com\n2,\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

// A table written and re-read comes back identical, modulo NA collapse.
func TestWriteParseRoundTrip(t *testing.T) {
	tab := records.Table{
		Columns: []string{"a", "b"},
		Rows: []records.Record{
			{"a": "quoted, comma", "b": "x"},
			{"a": nil, "b": "line\nbreak"},
		},
	}
	var b strings.Builder
	if err := Write(&b, tab); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, skipped, err := NewParser(Options{}).Parse(strings.NewReader(b.String()))
	if err != nil || skipped != 0 {
		t.Fatalf("Parse: err=%v skipped=%d", err, skipped)
	}
	if !reflect.DeepEqual(got, tab) {
		t.Errorf("round trip = %v, want %v", got, tab)
	}
}
