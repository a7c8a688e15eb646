package layout

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestSlotRects_TwoPerPage(t *testing.T) {
	a4 := MustPaper("A4")
	slots := slotRects(TwoPerPage, a4)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	// Slot total width = 210 - 20 = 190, height = (297 - 30) / 2 = 133.5
	for i, s := range slots {
		if !approx(s.W, 190) || !approx(s.H, 133.5) {
			t.Errorf("slot %d: expected 190x133.5, got %.2fx%.2f", i, s.W, s.H)
		}
		if !approx(s.X, 10) {
			t.Errorf("slot %d: expected x=10, got %.2f", i, s.X)
		}
	}
	if !approx(slots[0].Y, 10) || !approx(slots[1].Y, 153.5) {
		t.Errorf("expected y 10 and 153.5, got %.2f and %.2f", slots[0].Y, slots[1].Y)
	}
}

func TestSlotRects_ThreePerPage(t *testing.T) {
	a4 := MustPaper("A4")
	slots := slotRects(ThreePerPage, a4)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	// Top slot: 190 x (267 * 0.5) = 190 x 133.5 at (10, 10)
	if !approx(slots[0].W, 190) || !approx(slots[0].H, 133.5) {
		t.Errorf("top slot: expected 190x133.5, got %.2fx%.2f", slots[0].W, slots[0].H)
	}
	if !approx(slots[0].X, 10) || !approx(slots[0].Y, 10) {
		t.Errorf("top slot: expected origin (10, 10), got (%.2f, %.2f)", slots[0].X, slots[0].Y)
	}
	// Bottom slots: (210-30)/2 = 90 wide, 267 * 0.45 = 120.15 tall,
	// y = 10 + 133.5 + 10 = 153.5
	for i := 1; i <= 2; i++ {
		if !approx(slots[i].W, 90) || !approx(slots[i].H, 120.15) {
			t.Errorf("bottom slot %d: expected 90x120.15, got %.2fx%.2f", i, slots[i].W, slots[i].H)
		}
		if !approx(slots[i].Y, 153.5) {
			t.Errorf("bottom slot %d: expected y=153.5, got %.2f", i, slots[i].Y)
		}
	}
	if !approx(slots[1].X, 10) || !approx(slots[2].X, 110) {
		t.Errorf("bottom slots: expected x 10 and 110, got %.2f and %.2f", slots[1].X, slots[2].X)
	}
}

func TestSlotRects_FourPerPage(t *testing.T) {
	a4 := MustPaper("A4")
	slots := slotRects(FourPerPage, a4)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	// Each slot: (210-30)/2 x (297-30)/2 = 90 x 133.5
	wantOrigins := []struct{ x, y float64 }{
		{10, 10}, {110, 10}, {10, 153.5}, {110, 153.5},
	}
	for i, s := range slots {
		if !approx(s.W, 90) || !approx(s.H, 133.5) {
			t.Errorf("slot %d: expected 90x133.5, got %.2fx%.2f", i, s.W, s.H)
		}
		if !approx(s.X, wantOrigins[i].x) || !approx(s.Y, wantOrigins[i].y) {
			t.Errorf("slot %d: expected origin (%.1f, %.1f), got (%.2f, %.2f)",
				i, wantOrigins[i].x, wantOrigins[i].y, s.X, s.Y)
		}
	}
}

func TestPlace_A4FourPerPageScenario(t *testing.T) {
	// A4, FOUR_PER_PAGE, instant-camera margins: each slot is 90x133.5mm;
	// a portrait slot resolves to top=8/bottom=25/left=8/right=8, giving a
	// drawable rectangle of 74x100.5mm.
	page := Page{Number: 1, Layout: FourPerPage, Photos: makePhotos(4)}
	placements, err := Place(page, MustPaper("A4"), MarginsInstantCamera)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placements) != 4 {
		t.Fatalf("expected 4 placements, got %d", len(placements))
	}

	pl := placements[0]
	if !approx(pl.Slot.W, 90) || !approx(pl.Slot.H, 133.5) {
		t.Errorf("slot 0: expected 90x133.5, got %.2fx%.2f", pl.Slot.W, pl.Slot.H)
	}
	want := OrientedMargins{Top: 8, Bottom: 25, Left: 8, Right: 8}
	if pl.Margins != want {
		t.Errorf("slot 0 margins: expected %+v, got %+v", want, pl.Margins)
	}
	if !approx(pl.PhotoRect.W, 74) || !approx(pl.PhotoRect.H, 100.5) {
		t.Errorf("slot 0 photo rect: expected 74x100.5, got %.2fx%.2f",
			pl.PhotoRect.W, pl.PhotoRect.H)
	}
	if !approx(pl.PhotoRect.X, 18) || !approx(pl.PhotoRect.Y, 18) {
		t.Errorf("slot 0 photo rect origin: expected (18, 18), got (%.2f, %.2f)",
			pl.PhotoRect.X, pl.PhotoRect.Y)
	}
}

func TestPlace_OrderPreserving(t *testing.T) {
	photos := makePhotos(3)
	page := Page{Number: 1, Layout: ThreePerPage, Photos: photos}
	placements, err := Place(page, MustPaper("A4"), MarginsMinimal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, pl := range placements {
		if pl.Photo.ID != photos[i].ID {
			t.Errorf("placement %d: expected photo %s, got %s", i, photos[i].ID, pl.Photo.ID)
		}
	}
}

func TestPlace_ShortPageFillsLeadingSlots(t *testing.T) {
	// Two photos on a three-slot page occupy the top slot and the left
	// bottom slot, in photo order; slots are never reordered or centered.
	page := Page{Number: 1, Layout: ThreePerPage, Photos: makePhotos(2)}
	placements, err := Place(page, MustPaper("A4"), MarginsNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}
	if !approx(placements[1].Slot.X, 10) {
		t.Errorf("second photo should occupy the left bottom slot, got x=%.2f", placements[1].Slot.X)
	}
}

func TestPlace_AllLayoutsWithinBounds(t *testing.T) {
	papers := []string{"A4", "A5", "Letter", "4x6", "5x7"}
	for _, name := range papers {
		paper := MustPaper(name)
		for _, lt := range Layouts() {
			t.Run(fmt.Sprintf("%s_%s", name, lt), func(t *testing.T) {
				page := Page{Number: 1, Layout: lt, Photos: makePhotos(lt.Capacity())}
				placements, err := Place(page, paper, MarginsMinimal)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				for i, pl := range placements {
					s := pl.Slot
					if s.X < -0.01 || s.Y < -0.01 ||
						s.X+s.W > paper.WidthMM+0.01 || s.Y+s.H > paper.HeightMM+0.01 {
						t.Errorf("slot %d (%.2f,%.2f %.2fx%.2f) outside %s bounds %gx%g",
							i, s.X, s.Y, s.W, s.H, name, paper.WidthMM, paper.HeightMM)
					}
				}
			})
		}
	}
}

func TestPlace_Deterministic(t *testing.T) {
	page := Page{Number: 2, Layout: FourPerPage, Photos: makePhotos(4)}
	first, err := Place(page, MustPaper("Letter"), MarginsInstantCamera)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Place(page, MustPaper("Letter"), MarginsInstantCamera)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("placement %d differs between identical calls", i)
		}
	}
}

func TestPlace_MarginsExceedSlot(t *testing.T) {
	// On 4x6 paper a 4-up slot is only 35.8x61.2mm; 30mm margins on every
	// side cannot fit and must be rejected, not clamped.
	page := Page{Number: 1, Layout: FourPerPage, Photos: makePhotos(4)}
	huge := MarginConfig{Top: 30, Bottom: 30, Left: 30, Right: 30}
	_, err := Place(page, MustPaper("4x6"), huge)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Page != 1 || cfgErr.Slot != 0 {
		t.Errorf("expected error at page 1 slot 0, got page %d slot %d", cfgErr.Page, cfgErr.Slot)
	}
}

func TestPlace_InvalidPaper(t *testing.T) {
	page := Page{Number: 1, Layout: TwoPerPage, Photos: makePhotos(2)}
	_, err := Place(page, PaperSize{Name: "broken", WidthMM: 0, HeightMM: 297}, MarginsNone)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestPlace_OverCapacity(t *testing.T) {
	page := Page{Number: 1, Layout: TwoPerPage, Photos: makePhotos(3)}
	_, err := Place(page, MustPaper("A4"), MarginsNone)
	if err == nil {
		t.Fatal("expected error for photo count above capacity")
	}
}
