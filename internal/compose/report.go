package compose

import (
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/render"
)

// Report contains metadata about a compose run for quality analysis.
type Report struct {
	PageCount  int          `json:"page_count"`
	PhotoCount int          `json:"photo_count"`
	Skipped    int          `json:"skipped"`
	Output     string       `json:"output,omitempty"`
	Pages      []ReportPage `json:"pages"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// ReportPage describes a single composed page.
type ReportPage struct {
	PageNumber int                  `json:"page_number"`
	Layout     layout.LayoutType    `json:"layout"`
	Photos     []render.PhotoResult `json:"photos,omitempty"`
}
