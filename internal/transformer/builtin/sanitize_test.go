package builtin

import (
	"reflect"
	"testing"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

func TestSanitizeApply(t *testing.T) {
	in := records.Table{
		Columns: []string{"a", "b", "c", "d"},
		Rows: []records.Record{
			{"a": "  padded  ", "b": "", "c": "nan", "d": "kept"},
			{"a": "\tx\n", "b": "   ", "c": nil, "d": "NaN-ish"},
		},
	}
	want := []records.Record{
		{"a": "padded", "b": nil, "c": nil, "d": "kept"},
		{"a": "x", "b": nil, "c": nil, "d": "NaN-ish"},
	}

	got := Sanitize{}.Apply(in)
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func BenchmarkSanitize(b *testing.B) {
	base := records.Table{Columns: []string{"a", "b", "c"}}
	for i := 0; i < 5000; i++ {
		base.Rows = append(base.Rows, records.Record{
			"a": "  padded value  ",
			"b": "nan",
			"c": "clean",
		})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sanitize{}.Apply(base.Clone())
	}
}

// Applying Sanitize to its own output must be a no-op.
func TestSanitizeIdempotent(t *testing.T) {
	in := records.Table{
		Columns: []string{"a", "b"},
		Rows: []records.Record{
			{"a": " x ", "b": "nan"},
			{"a": "", "b": "y"},
		},
	}
	once := Sanitize{}.Apply(in).Clone()
	twice := Sanitize{}.Apply(once.Clone())
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second application changed the table:\nonce  = %v\ntwice = %v", once, twice)
	}
}
