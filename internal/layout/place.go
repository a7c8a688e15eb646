package layout

// Fixed page geometry shared by all three arrangements (mm).
const (
	// OuterMarginMM is the gap between each paper edge and the nearest slot.
	OuterMarginMM = 10.0
	// GutterMM is the gap between adjacent slots.
	GutterMM = 10.0
)

// Place computes one PhotoPlacement per photo on the page, in photo order.
// Each photo's slot rectangle comes from the page layout's fixed slot
// table; the drawable photo rectangle is the slot inset by the
// orientation-resolved margins. Place either returns a fully valid result
// or fails with a *ConfigError; there is no partial success.
func Place(page Page, paper PaperSize, margins MarginConfig) ([]PhotoPlacement, error) {
	if paper.WidthMM <= 0 || paper.HeightMM <= 0 {
		return nil, &ConfigError{Page: page.Number, Slot: -1,
			Reason: "paper " + paper.Name + " has non-positive dimensions"}
	}
	slots := slotRects(page.Layout, paper)
	if slots == nil {
		return nil, &ConfigError{Page: page.Number, Slot: -1,
			Reason: "unknown layout type " + string(page.Layout)}
	}
	if len(page.Photos) > len(slots) {
		return nil, &ConfigError{Page: page.Number, Slot: -1,
			Reason: "photo count exceeds layout capacity"}
	}

	placements := make([]PhotoPlacement, 0, len(page.Photos))
	for i, photo := range page.Photos {
		slot := slots[i]
		om := ResolveMargins(margins, slot.W, slot.H)
		photoRect := Rect{
			X: slot.X + om.Left,
			Y: slot.Y + om.Top,
			W: slot.W - om.Left - om.Right,
			H: slot.H - om.Top - om.Bottom,
		}
		if photoRect.W <= 0 || photoRect.H <= 0 {
			return nil, &ConfigError{Page: page.Number, Slot: i,
				Reason: "margins exceed slot dimensions"}
		}
		placements = append(placements, PhotoPlacement{
			Photo:     photo,
			Slot:      slot,
			PhotoRect: photoRect,
			Margins:   om,
		})
	}
	return placements, nil
}

// slotRects returns the slot rectangles for a layout on the given paper,
// in slot order. Slots are filled in photo order and never reordered or
// centered, so a short page simply leaves the trailing slots empty.
func slotRects(lt LayoutType, paper PaperSize) []Rect {
	w := paper.WidthMM
	h := paper.HeightMM

	switch lt {
	case TwoPerPage:
		// Two full-width slots stacked vertically.
		slotW := w - 2*OuterMarginMM
		slotH := (h - 2*OuterMarginMM - GutterMM) / 2
		return []Rect{
			{OuterMarginMM, OuterMarginMM, slotW, slotH},
			{OuterMarginMM, OuterMarginMM + slotH + GutterMM, slotW, slotH},
		}

	case ThreePerPage:
		// One full-width slot on top at 50% of the available height, two
		// below side by side at 45%.
		availH := h - 2*OuterMarginMM - GutterMM
		topW := w - 2*OuterMarginMM
		topH := availH * 0.5
		bottomW := (w - 2*OuterMarginMM - GutterMM) / 2
		bottomH := availH * 0.45
		bottomY := OuterMarginMM + topH + GutterMM
		return []Rect{
			{OuterMarginMM, OuterMarginMM, topW, topH},
			{OuterMarginMM, bottomY, bottomW, bottomH},
			{OuterMarginMM + bottomW + GutterMM, bottomY, bottomW, bottomH},
		}

	case FourPerPage:
		// 2x2 grid, slot index i at column i%2, row i/2.
		slotW := (w - 2*OuterMarginMM - GutterMM) / 2
		slotH := (h - 2*OuterMarginMM - GutterMM) / 2
		slots := make([]Rect, 4)
		for i := range slots {
			col := i % 2
			row := i / 2
			slots[i] = Rect{
				X: OuterMarginMM + float64(col)*(slotW+GutterMM),
				Y: OuterMarginMM + float64(row)*(slotH+GutterMM),
				W: slotW,
				H: slotH,
			}
		}
		return slots

	default:
		return nil
	}
}
