package builtin

import (
	"reflect"
	"testing"

	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

func TestReorderApply(t *testing.T) {
	in := records.Table{
		Columns: []string{"referral", schema.Email, schema.ClientID, "campaign", schema.Phone},
	}
	got := Reorder{Canonical: schema.CanonicalColumns}.Apply(in)

	want := []string{schema.ClientID, schema.Email, schema.Phone, "referral", "campaign"}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("columns = %v, want %v", got.Columns, want)
	}
}

func TestReorderAllExtras(t *testing.T) {
	in := records.Table{Columns: []string{"x", "y"}}
	got := Reorder{Canonical: schema.CanonicalColumns}.Apply(in)
	if !reflect.DeepEqual(got.Columns, []string{"x", "y"}) {
		t.Errorf("columns = %v, want [x y]", got.Columns)
	}
}
