package journeys

import "testing"

func TestQualifiesEnforcesUsableMinimum(t *testing.T) {
	single := Record{Teams: []string{"BOS"}}
	if single.Qualifies(1) {
		t.Fatal("expected single-team journey to be unusable even with min 1")
	}
	pair := Record{Teams: []string{"BOS", "LAL"}}
	if !pair.Qualifies(2) {
		t.Fatal("expected two-team journey to qualify for min 2")
	}
	if pair.Qualifies(3) {
		t.Fatal("expected two-team journey to miss min 3")
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	records := []Record{
		{ID: 1, Teams: []string{"A", "B", "C"}},
		{ID: 2, Teams: []string{"A"}},
		{ID: 3, Teams: []string{"A", "B", "C", "D"}},
	}
	got := Filter(records, 3)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected filter result %+v", got)
	}
}
