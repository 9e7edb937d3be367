package report

import (
	"testing"

	"ankadash/internal/model"
)

func TestFilterAllocations_EmptyMonthPassesEverything(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "1", "10", "2024-01-01"),
		alloc(2, 1, 1, "1", "10", "bogus"),
	}

	got := FilterAllocations(allocs, "")
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (no filter keeps bad dates too)", len(got))
	}
}

func TestFilterAllocations_ByMonth(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "1", "10", "2024-01-01"),
		alloc(2, 1, 1, "1", "10", "2023-01-15"), // different year, same month
		alloc(3, 1, 1, "1", "10", "2024-02-01"),
		alloc(4, 1, 1, "1", "10", "bogus"),
	}

	got := FilterAllocations(allocs, "01")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (january of any year)", len(got))
	}
	for _, a := range got {
		if a.ID != 1 && a.ID != 2 {
			t.Errorf("unexpected allocation %d in january filter", a.ID)
		}
	}
}

func TestFilterMovements_BadDateNeverMatches(t *testing.T) {
	movs := []model.Movement{
		{ID: 1, Type: model.MovementDeposit, Amount: "10", Date: "wat"},
	}

	if got := FilterMovements(movs, "01"); len(got) != 0 {
		t.Errorf("len = %d, want 0 (unparsable date must not match)", len(got))
	}
	if got := FilterMovements(movs, ""); len(got) != 1 {
		t.Errorf("len = %d, want 1 (no filter is a passthrough)", len(got))
	}
}
