package layout

// ResolveMargins assigns the base margins to concrete edges based on the
// orientation of a wMM x hMM rectangle. The larger of top/bottom becomes
// the signature border: for landscape rectangles it moves to the left edge
// (where a print is naturally held), for portrait or square rectangles to
// the bottom edge (where a caption is written). The remaining axis pair
// uses the base left value on both sides.
func ResolveMargins(base MarginConfig, wMM, hMM float64) OrientedMargins {
	large := max(base.Top, base.Bottom)
	small := min(base.Top, base.Bottom)
	side := base.Left

	if wMM > hMM {
		return OrientedMargins{
			Top:    side,
			Bottom: side,
			Left:   large,
			Right:  small,
		}
	}
	return OrientedMargins{
		Top:    small,
		Bottom: large,
		Left:   side,
		Right:  side,
	}
}
