package layout

import "testing"

func TestValidatePlacements_CleanPage(t *testing.T) {
	for _, lt := range Layouts() {
		page := Page{Number: 1, Layout: lt, Photos: makePhotos(lt.Capacity())}
		placements, err := Place(page, MustPaper("A4"), MarginsInstantCamera)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", lt, err)
		}
		if warnings := ValidatePlacements(page, placements, MustPaper("A4")); len(warnings) != 0 {
			t.Errorf("%s: expected no warnings, got %v", lt, warnings)
		}
	}
}

func TestValidatePlacements_SlotOutsidePaper(t *testing.T) {
	page := Page{Number: 3}
	placements := []PhotoPlacement{
		{
			Slot:      Rect{X: 150, Y: 10, W: 100, H: 50},
			PhotoRect: Rect{X: 150, Y: 10, W: 100, H: 50},
		},
	}
	warnings := ValidatePlacements(page, placements, MustPaper("A4"))
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Severity != "error" || warnings[0].PageNumber != 3 {
		t.Errorf("unexpected warning: %+v", warnings[0])
	}
}

func TestValidatePlacements_PhotoOutsideSlot(t *testing.T) {
	placements := []PhotoPlacement{
		{
			Slot:      Rect{X: 10, Y: 10, W: 90, H: 120},
			PhotoRect: Rect{X: 5, Y: 10, W: 90, H: 100},
		},
	}
	warnings := ValidatePlacements(Page{Number: 1}, placements, MustPaper("A4"))
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
}

func TestValidatePlacements_Overlap(t *testing.T) {
	placements := []PhotoPlacement{
		{Slot: Rect{X: 10, Y: 10, W: 100, H: 100}, PhotoRect: Rect{X: 10, Y: 10, W: 100, H: 100}},
		{Slot: Rect{X: 50, Y: 50, W: 100, H: 100}, PhotoRect: Rect{X: 50, Y: 50, W: 100, H: 100}},
	}
	warnings := ValidatePlacements(Page{Number: 1}, placements, MustPaper("A4"))
	found := false
	for _, w := range warnings {
		if w.Message == "slot 0 overlaps with slot 1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected overlap warning, got %v", warnings)
	}
}

func TestRectsOverlap_Adjacent(t *testing.T) {
	// Slots sharing an edge do not overlap.
	a := Rect{X: 10, Y: 10, W: 90, H: 100}
	b := Rect{X: 100, Y: 10, W: 90, H: 100}
	if rectsOverlap(a, b, 0.01) {
		t.Error("adjacent rectangles should not count as overlapping")
	}
}
