package layout

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed papers.yaml
var papersYAML []byte

// PaperSize is a named physical sheet. The catalog is fixed and immutable.
type PaperSize struct {
	Name     string  `json:"name" yaml:"name"`
	WidthMM  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM float64 `json:"height_mm" yaml:"height_mm"`
}

type paperCatalog struct {
	Papers []PaperSize `yaml:"papers"`
}

var papers []PaperSize

func init() {
	var catalog paperCatalog
	if err := yaml.Unmarshal(papersYAML, &catalog); err != nil {
		// Embedded file, cannot fail in practice
		panic("failed to unmarshal embedded papers.yaml: " + err.Error())
	}
	papers = catalog.Papers
}

// Papers returns the paper catalog in declaration order.
func Papers() []PaperSize {
	out := make([]PaperSize, len(papers))
	copy(out, papers)
	return out
}

// PaperByName looks up a paper size by its catalog name.
func PaperByName(name string) (PaperSize, bool) {
	for _, p := range papers {
		if p.Name == name {
			return p, true
		}
	}
	return PaperSize{}, false
}

// MustPaper returns a catalog paper or panics. Only for known names.
func MustPaper(name string) PaperSize {
	p, ok := PaperByName(name)
	if !ok {
		panic("unknown paper size: " + name)
	}
	return p
}
