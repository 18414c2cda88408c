package players

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
)

func TestRecordJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	recordType := reflect.TypeOf(Record{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Team", "team"},
		{"Position", "position"},
		{"Age", "age,omitempty"},
		{"GamesPlayed", "gp"},
		{"Minutes", "mpg"},
		{"Points", "pts"},
		{"Rebounds", "reb"},
		{"Assists", "ast"},
		{"Steals", "stl"},
		{"Blocks", "blk"},
		{"FGPct", "fg_pct"},
		{"FG3Pct", "fg3_pct"},
		{"FTPct", "ft_pct"},
		{"Rating", "rating"},
		{"Season", "season"},
	}
	for _, fc := range fields {
		f, ok := recordType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestRecordMarshalsFlatStatLine(t *testing.T) {
	rec := Record{ID: 1, Name: "A", StatLine: StatLine{Points: 12.5}}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat["pts"] != 12.5 {
		t.Fatalf("expected pts at top level, got %v", flat)
	}
	if _, nested := flat["StatLine"]; nested {
		t.Fatalf("expected stat line to be flattened, got %v", flat)
	}
}

func TestParsePosition(t *testing.T) {
	if p, ok := ParsePosition(" pg "); !ok || p != PointGuard {
		t.Fatalf("expected PG, got %q (%v)", p, ok)
	}
	if _, ok := ParsePosition("G"); ok {
		t.Fatal("expected coarse provider code to be rejected")
	}
}

func TestRosterCloneIsIndependent(t *testing.T) {
	r := Roster{{ID: 1}, {ID: 2}}
	c := r.Clone()
	c[0], c[1] = c[1], c[0]
	if r[0].ID != 1 {
		t.Fatal("expected clone reorder to leave original untouched")
	}
	if got := Roster(nil).Clone(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil clone, got %#v", got)
	}
}
