package layout

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// makePhotos builds n photos with sequential IDs for pagination tests.
func makePhotos(n int) []Photo {
	photos := make([]Photo, n)
	for i := range photos {
		photos[i] = Photo{
			ID:          fmt.Sprintf("photo-%03d", i+1),
			Ref:         fmt.Sprintf("/photos/photo-%03d.jpg", i+1),
			DisplayName: fmt.Sprintf("photo-%03d.jpg", i+1),
			Status:      StatusPending,
		}
	}
	return photos
}

func TestPaginate_Empty(t *testing.T) {
	pages, err := Paginate(nil, FourPerPage, LeaveBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages for empty input, got %d", len(pages))
	}
}

func TestPaginate_InvalidLayout(t *testing.T) {
	_, err := Paginate(makePhotos(3), LayoutType("5_per_page"), LeaveBlank)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestPaginate_PageCounts(t *testing.T) {
	tests := []struct {
		n      int
		layout LayoutType
		counts []int
	}{
		{1, TwoPerPage, []int{1}},
		{2, TwoPerPage, []int{2}},
		{5, TwoPerPage, []int{2, 2, 1}},
		{3, ThreePerPage, []int{3}},
		{7, ThreePerPage, []int{3, 3, 1}},
		{4, FourPerPage, []int{4}},
		{10, FourPerPage, []int{4, 4, 2}},
		{12, FourPerPage, []int{4, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_photos_%s", tt.n, tt.layout), func(t *testing.T) {
			pages, err := Paginate(makePhotos(tt.n), tt.layout, LeaveBlank)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pages) != len(tt.counts) {
				t.Fatalf("expected %d pages, got %d", len(tt.counts), len(pages))
			}
			total := 0
			for i, page := range pages {
				if page.Number != i+1 {
					t.Errorf("page %d: expected number %d, got %d", i, i+1, page.Number)
				}
				if page.Layout != tt.layout {
					t.Errorf("page %d: expected layout %s, got %s", i, tt.layout, page.Layout)
				}
				if len(page.Photos) != tt.counts[i] {
					t.Errorf("page %d: expected %d photos, got %d", i, tt.counts[i], len(page.Photos))
				}
				total += len(page.Photos)
			}
			if total != tt.n {
				t.Errorf("photos across pages: expected %d, got %d", tt.n, total)
			}
		})
	}
}

func TestPaginate_OrderPreserved(t *testing.T) {
	photos := makePhotos(10)
	pages, err := Paginate(photos, FourPerPage, LeaveBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := 0
	for _, page := range pages {
		for _, p := range page.Photos {
			if p.ID != photos[idx].ID {
				t.Errorf("position %d: expected %s, got %s", idx, photos[idx].ID, p.ID)
			}
			idx++
		}
	}
}

func TestPaginate_FillLayout(t *testing.T) {
	tests := []struct {
		n       int
		layout  LayoutType
		layouts []LayoutType
	}{
		// 5 photos, 3 per page: last page has 2 photos and switches to 2-up.
		{5, ThreePerPage, []LayoutType{ThreePerPage, TwoPerPage}},
		// 10 photos, 4 per page: last page has 2 photos.
		{10, FourPerPage, []LayoutType{FourPerPage, FourPerPage, TwoPerPage}},
		// 7 photos, 4 per page: last page has 3 photos.
		{7, FourPerPage, []LayoutType{FourPerPage, ThreePerPage}},
		// 1 photo: a single short page.
		{1, FourPerPage, []LayoutType{TwoPerPage}},
		// Exact multiple: nothing changes.
		{8, FourPerPage, []LayoutType{FourPerPage, FourPerPage}},
		// 3 photos, 2 per page: last chunk of 1 stays 2-up.
		{3, TwoPerPage, []LayoutType{TwoPerPage, TwoPerPage}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_photos_%s", tt.n, tt.layout), func(t *testing.T) {
			pages, err := Paginate(makePhotos(tt.n), tt.layout, FillLayout)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pages) != len(tt.layouts) {
				t.Fatalf("expected %d pages, got %d", len(tt.layouts), len(pages))
			}
			for i, page := range pages {
				if page.Layout != tt.layouts[i] {
					t.Errorf("page %d: expected layout %s, got %s", i+1, tt.layouts[i], page.Layout)
				}
			}
		})
	}
}

func TestPaginate_FillLayoutScenario(t *testing.T) {
	// 5 photos, THREE_PER_PAGE, FILL_LAYOUT: page 1 keeps 3 photos with the
	// requested layout, page 2 holds 2 photos with the 2-up layout.
	pages, err := Paginate(makePhotos(5), ThreePerPage, FillLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Photos) != 3 || pages[0].Layout != ThreePerPage {
		t.Errorf("page 1: expected 3 photos with %s, got %d with %s",
			ThreePerPage, len(pages[0].Photos), pages[0].Layout)
	}
	if len(pages[1].Photos) != 2 || pages[1].Layout != TwoPerPage {
		t.Errorf("page 2: expected 2 photos with %s, got %d with %s",
			TwoPerPage, len(pages[1].Photos), pages[1].Layout)
	}
}

func TestPaginate_Idempotent(t *testing.T) {
	photos := makePhotos(11)
	first, err := Paginate(photos, ThreePerPage, FillLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Paginate(photos, ThreePerPage, FillLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("paginate is not idempotent for identical inputs")
	}
}

func TestPaginate_DefaultMode(t *testing.T) {
	// Empty mode falls back to LeaveBlank.
	pages, err := Paginate(makePhotos(5), FourPerPage, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages[len(pages)-1].Layout != FourPerPage {
		t.Errorf("expected default mode to keep requested layout, got %s", pages[len(pages)-1].Layout)
	}
}
