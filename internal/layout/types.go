// Package layout implements the page layout engine: grouping photos into
// pages, computing slot rectangles for each grid arrangement, and resolving
// orientation-aware margins. All geometry is expressed in millimeters with
// the origin at the top-left corner of the page. Every function in this
// package is pure; identical inputs always produce identical output.
package layout

// PhotoStatus tracks a photo through the compose pipeline.
type PhotoStatus string

// Photo lifecycle states.
const (
	StatusPending PhotoStatus = "pending"
	StatusReady   PhotoStatus = "ready"
	StatusFailed  PhotoStatus = "failed"
)

// Photo identifies one image to be printed. The Ref field is only ever
// consumed by the decoder; the layout engine never touches the pixels.
type Photo struct {
	ID          string      `json:"id"`
	Ref         string      `json:"ref"`
	DisplayName string      `json:"display_name"`
	Rotation    int         `json:"rotation"` // degrees clockwise: 0, 90, 180, 270
	Status      PhotoStatus `json:"status"`
}

// Rect is an axis-aligned rectangle in millimeters, origin top-left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// LayoutType selects one of the three fixed page arrangements. The photo
// count and the arrangement are deliberately coupled: three photos always
// means one large slot on top and two small slots below, never three
// stacked rows.
type LayoutType string

// The three supported page arrangements.
const (
	// TwoPerPage stacks two full-width slots vertically.
	TwoPerPage LayoutType = "2_per_page"
	// ThreePerPage places one full-width slot on top and two side by side below.
	ThreePerPage LayoutType = "3_per_page"
	// FourPerPage arranges four slots in a 2x2 grid.
	FourPerPage LayoutType = "4_per_page"
)

// Capacity returns the number of photo slots the layout provides.
func (l LayoutType) Capacity() int {
	switch l {
	case TwoPerPage:
		return 2
	case ThreePerPage:
		return 3
	case FourPerPage:
		return 4
	}
	return 0
}

// Valid reports whether l is one of the known layout variants.
func (l LayoutType) Valid() bool {
	return l.Capacity() > 0
}

// Layouts returns all layout variants in capacity order.
func Layouts() []LayoutType {
	return []LayoutType{TwoPerPage, ThreePerPage, FourPerPage}
}

// MarginConfig holds the base margin frame around each photo, in
// millimeters. The top/bottom pair is orientation-agnostic: whichever of
// the two is larger becomes the signature border after resolution (see
// ResolveMargins), emulating an instant-camera print.
type MarginConfig struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Margin presets.
var (
	// MarginsNone draws photos edge to edge within their slots.
	MarginsNone = MarginConfig{}
	// MarginsMinimal is a thin uniform frame.
	MarginsMinimal = MarginConfig{Top: 5, Bottom: 5, Left: 5, Right: 5}
	// MarginsInstantCamera is the classic instant print frame with a wide
	// caption border on the bottom (or left, for landscape slots).
	MarginsInstantCamera = MarginConfig{Top: 8, Bottom: 25, Left: 8, Right: 8}
)

// OrientedMargins is a margin configuration after the larger border has
// been assigned to a concrete edge based on slot orientation.
type OrientedMargins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// IncompletePageMode controls how Paginate treats a final chunk that is
// smaller than the layout capacity.
type IncompletePageMode string

const (
	// LeaveBlank keeps the requested layout and leaves trailing slots empty.
	LeaveBlank IncompletePageMode = "leave_blank"
	// FillLayout substitutes the layout that best matches the final chunk's
	// actual photo count, so the last page has no empty slots.
	FillLayout IncompletePageMode = "fill_layout"
)

// Page is an ordered group of photos arranged with a single layout.
// Pages are never mutated after creation; configuration changes regenerate
// the whole pagination from scratch.
type Page struct {
	Number int        `json:"number"` // 1-based
	Layout LayoutType `json:"layout"`
	Photos []Photo    `json:"photos"`
}

// PhotoPlacement is the computed position of one photo on a page: the full
// slot including its margin frame, and the drawable rectangle inside the
// resolved margins. Placements are ephemeral and recomputed whenever any
// input changes; they are never persisted.
type PhotoPlacement struct {
	Photo     Photo           `json:"photo"`
	Slot      Rect            `json:"slot"`
	PhotoRect Rect            `json:"photo_rect"`
	Margins   OrientedMargins `json:"margins"`
}
