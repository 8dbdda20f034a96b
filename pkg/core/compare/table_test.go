package compare

import (
	"testing"

	"growth_dashboard/pkg/models"
)

func testTable() *Table {
	return NewTable([]models.CountryPerCapita{
		{Country: "Vietnam", PerCapitaUSD: 4700},
		{Country: "Indonesia", PerCapitaUSD: 5100},
		{Country: "India", PerCapitaUSD: 2700},
		{Country: "Philippines", PerCapitaUSD: 4100},
		{Country: "Thailand", PerCapitaUSD: 7800},
	})
}

func TestFindClosestOrdering(t *testing.T) {
	got := testTable().FindClosest(5000, 3)
	want := []string{"Indonesia", "Vietnam", "Philippines"} // diffs 100, 300, 900
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, name := range want {
		if got[i].Country != name {
			t.Errorf("rank %d: got %s, want %s", i, got[i].Country, name)
		}
	}
}

func TestFindClosestTieBreaksByName(t *testing.T) {
	table := NewTable([]models.CountryPerCapita{
		{Country: "Zambia", PerCapitaUSD: 1400},
		{Country: "Albania", PerCapitaUSD: 1600},
	})
	// Both are 100 away from 1500; Albania wins on name.
	got := table.FindClosest(1500, 2)
	if got[0].Country != "Albania" || got[1].Country != "Zambia" {
		t.Errorf("tie broke wrong: %v", got)
	}
}

func TestFindClosestClampsN(t *testing.T) {
	if got := testTable().FindClosest(5000, 50); len(got) != 5 {
		t.Errorf("n larger than table: got %d entries, want 5", len(got))
	}
	if got := testTable().FindClosest(5000, 0); len(got) != 0 {
		t.Errorf("n < 1: got %d entries, want 0", len(got))
	}
}

func TestFindClosestEmptyAndNilTable(t *testing.T) {
	empty := NewTable(nil)
	if got := empty.FindClosest(5000, 5); got == nil || len(got) != 0 {
		t.Errorf("empty table: got %v, want empty non-nil slice", got)
	}
	var missing *Table
	if got := missing.FindClosest(5000, 5); len(got) != 0 {
		t.Errorf("nil table: got %v, want empty slice", got)
	}
}

func TestFindClosestDoesNotMutateTable(t *testing.T) {
	table := testTable()
	table.FindClosest(5000, 5)
	if table.entries[0].Country != "Vietnam" {
		t.Errorf("table order mutated: first entry now %s", table.entries[0].Country)
	}
}
