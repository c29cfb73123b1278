package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1,200abc", 1200},
		{"", 0},
		{"abc", 0},
		{"7,500,000", 7500000},
		{"-42", 42},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(6200000); got != "6,200,000" {
		t.Fatalf("FormatAmount = %q, want 6,200,000", got)
	}
	if got := FormatAmount(0); got != "0" {
		t.Fatalf("FormatAmount(0) = %q, want 0", got)
	}
}

func TestBadgeTones(t *testing.T) {
	statusCases := map[Status]Tone{
		StatusComplete:     ToneGreen,
		StatusInProgress:   ToneYellow,
		StatusBlocked:      ToneRed,
		StatusNeedsToStart: ToneBlue,
		Status("Archived"): ToneUnknown,
	}
	for s, want := range statusCases {
		if got := StatusTone(s); got != want {
			t.Fatalf("StatusTone(%q) = %v, want %v", s, got, want)
		}
	}

	priorityCases := map[Priority]Tone{
		PriorityHigh:      ToneRed,
		PriorityMedium:    ToneYellow,
		PriorityLow:       ToneGreen,
		Priority("Later"): ToneUnknown,
	}
	for p, want := range priorityCases {
		if got := PriorityTone(p); got != want {
			t.Fatalf("PriorityTone(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestDefaultColumnsValidate(t *testing.T) {
	cols := DefaultColumns()
	if err := cols.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(cols) != 9 {
		t.Fatalf("len(DefaultColumns) = %d, want 9", len(cols))
	}

	dup := append(DefaultColumns(), Column{ID: "status", Accessor: FieldStatus})
	if err := dup.Validate(); err == nil {
		t.Fatalf("Validate accepted duplicate id")
	}
	bad := Columns{{ID: "x", Accessor: Field("nope")}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("Validate accepted unknown accessor")
	}
}

func TestApplyUpdate_StructuralSharing(t *testing.T) {
	records := DefaultRecords()
	cols := DefaultColumns()

	next, ok := ApplyUpdate(records, cols, "1", "est-value", Number(7500000))
	if !ok {
		t.Fatalf("ApplyUpdate returned ok=false")
	}
	if next[0].EstValue != 7500000 {
		t.Fatalf("EstValue = %d, want 7500000", next[0].EstValue)
	}
	if records[0].EstValue != 6200000 {
		t.Fatalf("input record mutated: EstValue = %d", records[0].EstValue)
	}
	if next[0] == records[0] {
		t.Fatalf("updated record should be a new pointer")
	}
	for i := 1; i < len(records); i++ {
		if next[i] != records[i] {
			t.Fatalf("record %d pointer changed, want shared", i)
		}
	}

	want := *records[0]
	want.EstValue = 7500000
	if *next[0] != want {
		t.Fatalf("updated record = %#v, want %#v", *next[0], want)
	}
}

func TestApplyUpdate_UnresolvedIsNoop(t *testing.T) {
	records := DefaultRecords()
	cols := DefaultColumns()

	if got, ok := ApplyUpdate(records, cols, "missing", "url", Text("x")); ok || &got[0] != &records[0] {
		t.Fatalf("unknown record id should be a no-op")
	}
	if got, ok := ApplyUpdate(records, cols, "1", "missing", Text("x")); ok || &got[0] != &records[0] {
		t.Fatalf("unknown column id should be a no-op")
	}
}

func TestRecordWith_IDImmutable(t *testing.T) {
	r := DefaultRecords()[0]
	next := r.With(FieldID, Text("99"))
	if next.ID != "1" {
		t.Fatalf("ID = %q, want 1", next.ID)
	}
}

func TestParseRecords_AssignsIDsAndRejectsDuplicates(t *testing.T) {
	recs, err := ParseRecords([]byte(`
[[records]]
job_request = "Draft brief"
status = "Complete"
priority = "High"
est_value = 1500

[[records]]
id = "  b  "
job_request = "Review brief"
`))
	if err != nil {
		t.Fatalf("ParseRecords returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if len(recs[0].ID) != 36 {
		t.Fatalf("generated ID = %q, want a UUID", recs[0].ID)
	}
	if recs[0].Status != StatusComplete || recs[0].EstValue != 1500 {
		t.Fatalf("record 0 = %#v", *recs[0])
	}
	if recs[1].ID != "b" {
		t.Fatalf("ID = %q, want trimmed b", recs[1].ID)
	}

	_, err = ParseRecords([]byte(`
[[records]]
id = "a"
[[records]]
id = "a"
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("err = %v, want duplicate id error", err)
	}
}

func TestLoadRecords_Missing(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "none.toml"))
	if !errors.Is(err, ErrNoSeedFile) {
		t.Fatalf("err = %v, want ErrNoSeedFile", err)
	}
}

func TestLoadRecords_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.toml")
	if err := os.WriteFile(path, []byte("[[records]]\nid = \"x\"\nest_value = 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	recs, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords returned error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "x" || recs[0].EstValue != 10 {
		t.Fatalf("records = %#v", recs)
	}
}
