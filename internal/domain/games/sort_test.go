package games

import (
	"testing"
)

func TestSortByStartTime(t *testing.T) {
	list := []Game{
		{ID: "c", FullDateTime: "2024-09-01T20:00Z"},
		{ID: "a", FullDateTime: "2024-09-01T17:00Z"},
		{ID: "b", FullDateTime: "2024-09-01T17:00:00Z"},
	}
	SortByStartTime(list)

	// Equal kickoff times fall back to ID order.
	if list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestSortByStartTimeUnparseableLast(t *testing.T) {
	list := []Game{
		{ID: "b", FullDateTime: "TBD"},
		{ID: "c"},
		{ID: "a", FullDateTime: "2024-09-01T17:00Z"},
	}
	SortByStartTime(list)

	if list[0].ID != "a" {
		t.Fatalf("expected timestamped game first, got %s", list[0].ID)
	}
	if list[1].ID != "b" || list[2].ID != "c" {
		t.Fatalf("expected id order among undated games, got %s %s", list[1].ID, list[2].ID)
	}
}

func TestSortByStartTimeEmpty(t *testing.T) {
	SortByStartTime(nil)
	SortByStartTime([]Game{})
}
