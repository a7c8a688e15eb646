package layout

import "testing"

func TestPapers_Catalog(t *testing.T) {
	catalog := Papers()
	if len(catalog) != 5 {
		t.Fatalf("expected 5 paper sizes, got %d", len(catalog))
	}
	for _, p := range catalog {
		if p.WidthMM <= 0 || p.HeightMM <= 0 {
			t.Errorf("paper %s has non-positive dimensions", p.Name)
		}
	}
}

func TestPaperByName(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
	}{
		{"A4", 210, 297},
		{"A5", 148, 210},
		{"Letter", 215.9, 279.4},
		{"4x6", 101.6, 152.4},
		{"5x7", 127, 177.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PaperByName(tt.name)
			if !ok {
				t.Fatalf("paper %s not found", tt.name)
			}
			if !approx(p.WidthMM, tt.width) || !approx(p.HeightMM, tt.height) {
				t.Errorf("expected %gx%g, got %gx%g", tt.width, tt.height, p.WidthMM, p.HeightMM)
			}
		})
	}
}

func TestPaperByName_Unknown(t *testing.T) {
	if _, ok := PaperByName("B5"); ok {
		t.Error("expected lookup miss for unknown paper")
	}
}
