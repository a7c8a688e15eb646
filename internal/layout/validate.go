package layout

import "fmt"

// ValidationWarning describes a layout integrity issue found after
// placement. Errors here indicate a defect in the slot tables, not a bad
// configuration (those fail fast in Place).
type ValidationWarning struct {
	PageNumber int    `json:"page_number"`
	SlotIndex  int    `json:"slot_index"`
	Message    string `json:"message"`
	Severity   string `json:"severity"` // "error" or "warning"
}

// ValidatePlacements checks that every slot lies within the paper bounds,
// that each photo rectangle stays inside its slot, and that no two slots
// overlap.
func ValidatePlacements(page Page, placements []PhotoPlacement, paper PaperSize) []ValidationWarning {
	const eps = 0.01
	var warnings []ValidationWarning

	for i, pl := range placements {
		if pl.Slot.X < -eps || pl.Slot.Y < -eps {
			warnings = append(warnings, ValidationWarning{
				PageNumber: page.Number,
				SlotIndex:  i,
				Message:    fmt.Sprintf("slot origin (%.2f, %.2f) outside paper", pl.Slot.X, pl.Slot.Y),
				Severity:   "error",
			})
		}
		if pl.Slot.X+pl.Slot.W > paper.WidthMM+eps {
			warnings = append(warnings, ValidationWarning{
				PageNumber: page.Number,
				SlotIndex:  i,
				Message:    fmt.Sprintf("slot right edge (%.2f) exceeds paper width (%.2f)", pl.Slot.X+pl.Slot.W, paper.WidthMM),
				Severity:   "error",
			})
		}
		if pl.Slot.Y+pl.Slot.H > paper.HeightMM+eps {
			warnings = append(warnings, ValidationWarning{
				PageNumber: page.Number,
				SlotIndex:  i,
				Message:    fmt.Sprintf("slot bottom edge (%.2f) exceeds paper height (%.2f)", pl.Slot.Y+pl.Slot.H, paper.HeightMM),
				Severity:   "error",
			})
		}

		// Photo rect must stay within its slot frame
		pr := pl.PhotoRect
		if pr.X < pl.Slot.X-eps || pr.Y < pl.Slot.Y-eps ||
			pr.X+pr.W > pl.Slot.X+pl.Slot.W+eps || pr.Y+pr.H > pl.Slot.Y+pl.Slot.H+eps {
			warnings = append(warnings, ValidationWarning{
				PageNumber: page.Number,
				SlotIndex:  i,
				Message:    "photo rectangle extends outside its slot",
				Severity:   "error",
			})
		}
	}

	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			si, sj := placements[i].Slot, placements[j].Slot
			if rectsOverlap(si, sj, eps) {
				warnings = append(warnings, ValidationWarning{
					PageNumber: page.Number,
					SlotIndex:  i,
					Message:    fmt.Sprintf("slot %d overlaps with slot %d", i, j),
					Severity:   "error",
				})
			}
		}
	}

	return warnings
}

// rectsOverlap checks whether two rectangles overlap with tolerance.
func rectsOverlap(a, b Rect, eps float64) bool {
	if a.X+a.W <= b.X+eps || b.X+b.W <= a.X+eps {
		return false
	}
	if a.Y+a.H <= b.Y+eps || b.Y+b.H <= a.Y+eps {
		return false
	}
	return true
}
