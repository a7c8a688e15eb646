package handlers

import (
	"fmt"
	"net/http"

	"github.com/kozaktomas/photo-printer/internal/constants"
	"github.com/kozaktomas/photo-printer/internal/layout"
)

type previewRequest struct {
	PhotoCount int                  `json:"photo_count"`
	Layout     string               `json:"layout"`
	Paper      string               `json:"paper"`
	Margins    *layout.MarginConfig `json:"margins,omitempty"`
	Mode       string               `json:"mode,omitempty"`
}

type previewPage struct {
	PageNumber int                     `json:"page_number"`
	Layout     string                  `json:"layout"`
	Placements []layout.PhotoPlacement `json:"placements"`
	Warnings   []string                `json:"warnings,omitempty"`
}

type previewResponse struct {
	Paper layout.PaperSize `json:"paper"`
	Pages []previewPage    `json:"pages"`
}

// Preview computes slot and photo rectangles for a synthetic photo set
// without touching any files. Used by the web UI to draw page mockups.
func Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.PhotoCount == 0 {
		req.PhotoCount = constants.DefaultPreviewPhotoCount
	}
	if req.PhotoCount < 0 || req.PhotoCount > constants.MaxPreviewPhotoCount {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("photo_count must be between 1 and %d", constants.MaxPreviewPhotoCount))
		return
	}

	lt := layout.LayoutType(req.Layout)
	if req.Layout == "" {
		lt = layout.FourPerPage
	}
	if !lt.Valid() {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown layout: %q", req.Layout))
		return
	}

	paperName := req.Paper
	if paperName == "" {
		paperName = "A4"
	}
	paper, ok := layout.PaperByName(paperName)
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown paper size: %q", paperName))
		return
	}

	margins := layout.MarginsInstantCamera
	if req.Margins != nil {
		margins = *req.Margins
	}

	mode := layout.IncompletePageMode(req.Mode)
	photos := syntheticPhotos(req.PhotoCount)
	pages, err := layout.Paginate(photos, lt, mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := previewResponse{Paper: paper, Pages: make([]previewPage, 0, len(pages))}
	for _, page := range pages {
		placements, err := layout.Place(page, paper, margins)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		pp := previewPage{
			PageNumber: page.Number,
			Layout:     string(page.Layout),
			Placements: placements,
		}
		for _, warn := range layout.ValidatePlacements(page, placements, paper) {
			pp.Warnings = append(pp.Warnings, warn.Message)
		}
		resp.Pages = append(resp.Pages, pp)
	}

	respondJSON(w, http.StatusOK, resp)
}

// syntheticPhotos builds placeholder photos for layout preview.
func syntheticPhotos(count int) []layout.Photo {
	photos := make([]layout.Photo, count)
	for i := range photos {
		photos[i] = layout.Photo{
			ID:          fmt.Sprintf("preview-%d", i+1),
			DisplayName: fmt.Sprintf("Photo %d", i+1),
			Status:      layout.StatusPending,
		}
	}
	return photos
}
