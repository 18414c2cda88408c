package journey

import (
	"reflect"
	"testing"

	"garu-data-service/internal/providers"
)

func rows(codes ...string) []providers.CareerRow {
	out := make([]providers.CareerRow, len(codes))
	for i, c := range codes {
		out[i] = providers.CareerRow{Season: "20xx", TeamAbbreviation: c}
	}
	return out
}

func TestReconstructCollapsesConsecutiveDuplicates(t *testing.T) {
	got := Reconstruct(rows("ATL", "ATL", "BOS", "BOS", "ATL"))
	if want := []string{"ATL", "BOS", "ATL"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReconstructSkipsCombinedRows(t *testing.T) {
	in := []providers.CareerRow{
		{Season: "2018-19", TeamAbbreviation: "WAS"},
		{Season: "2019-20", TeamID: 1610612764, TeamAbbreviation: "tot"},
		{Season: "2019-20", TeamAbbreviation: "WAS"},
		{Season: "2019-20", TeamAbbreviation: "MIA"},
		{Season: "2020-21", TeamAbbreviation: "  "},
	}
	got := Reconstruct(in)
	if want := []string{"WAS", "MIA"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReconstructRemapsHistoricalCodes(t *testing.T) {
	cases := map[string]string{"SEA": "OKC", "VAN": "MEM", "NJN": "BKN", "NOH": "NOP", "NOK": "NOP", "CHH": "CHA"}
	for old, current := range cases {
		got := Reconstruct(rows("LAL", old))
		if len(got) != 2 || got[1] != current {
			t.Fatalf("expected %s to map to %s, got %v", old, current, got)
		}
	}
	if got := Reconstruct(rows("SEA", "OKC")); !reflect.DeepEqual(got, []string{"OKC"}) {
		t.Fatalf("expected relocation to collapse into one stint, got %v", got)
	}
}

func TestReconstructPrefersTeamID(t *testing.T) {
	got := Reconstruct([]providers.CareerRow{{TeamID: 1610612738, TeamAbbreviation: "XXX"}})
	if !reflect.DeepEqual(got, []string{"BOS"}) {
		t.Fatalf("expected id table to win, got %v", got)
	}
}

func TestReconstructEmpty(t *testing.T) {
	if got := Reconstruct(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil journey, got %v", got)
	}
}

func TestNewRecordCurrentTeam(t *testing.T) {
	rec := NewRecord(1, "Chris Paul", "SAS", rows("NOH", "LAC", "HOU"))
	if rec.CurrentTeam != "SAS" || !reflect.DeepEqual(rec.Teams, []string{"NOP", "LAC", "HOU"}) {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec := NewRecord(2, "x", "", rows("BOS", "MIA")); rec.CurrentTeam != "MIA" {
		t.Fatalf("expected last stint as current team, got %s", rec.CurrentTeam)
	}
}
