package layout

// Paginate splits an ordered photo sequence into consecutive pages of
// lt.Capacity() photos each. Page numbers are 1-based and sequential.
// An empty input yields an empty (nil) result, which is a valid terminal
// state, not an error.
//
// Under LeaveBlank every page keeps the requested layout, even when the
// final chunk is short (rendering leaves the trailing slots empty). Under
// FillLayout only the final page may switch to the layout matching its
// actual photo count; all earlier pages are unaffected.
func Paginate(photos []Photo, lt LayoutType, mode IncompletePageMode) ([]Page, error) {
	if !lt.Valid() {
		return nil, &ConfigError{Slot: -1, Reason: "unknown layout type " + string(lt)}
	}
	if mode == "" {
		mode = LeaveBlank
	}
	if mode != LeaveBlank && mode != FillLayout {
		return nil, &ConfigError{Slot: -1, Reason: "unknown incomplete page mode " + string(mode)}
	}
	if len(photos) == 0 {
		return nil, nil
	}

	capacity := lt.Capacity()
	pages := make([]Page, 0, (len(photos)+capacity-1)/capacity)
	for start := 0; start < len(photos); start += capacity {
		end := min(start+capacity, len(photos))
		chunk := make([]Photo, end-start)
		copy(chunk, photos[start:end])

		pageLayout := lt
		if mode == FillLayout && end == len(photos) {
			pageLayout = effectiveLayout(len(chunk))
		}

		pages = append(pages, Page{
			Number: len(pages) + 1,
			Layout: pageLayout,
			Photos: chunk,
		})
	}
	return pages, nil
}

// effectiveLayout picks the layout whose capacity best matches a photo
// count, used for the final page under FillLayout.
func effectiveLayout(count int) LayoutType {
	switch {
	case count <= 2:
		return TwoPerPage
	case count == 3:
		return ThreePerPage
	default:
		return FourPerPage
	}
}
