package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

type layoutInfo struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ListLayouts returns the available page layouts.
func ListLayouts(w http.ResponseWriter, r *http.Request) {
	types := layout.Layouts()
	infos := make([]layoutInfo, 0, len(types))
	for _, lt := range types {
		infos = append(infos, layoutInfo{
			Name:     string(lt),
			Capacity: lt.Capacity(),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"layouts": infos})
}

// ListPapers returns the built-in paper catalog.
func ListPapers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"papers": layout.Papers()})
}
