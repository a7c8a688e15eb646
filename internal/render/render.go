package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/kozaktomas/photo-printer/internal/constants"
	"github.com/kozaktomas/photo-printer/internal/layout"
)

// PhotoResult records what happened to one photo while rendering a page.
type PhotoResult struct {
	PhotoID      string  `json:"photo_id"`
	SlotIndex    int     `json:"slot_index"`
	EffectiveDPI float64 `json:"effective_dpi"`
	LowRes       bool    `json:"low_res"`
	Skipped      bool    `json:"skipped"`
	Error        string  `json:"error,omitempty"`
}

// PageRenderer rasterizes a laid-out page onto an RGBA canvas.
type PageRenderer struct {
	decoder Decoder
	dpi     float64
}

func NewPageRenderer(decoder Decoder, dpi float64) *PageRenderer {
	if dpi <= 0 {
		dpi = layout.DefaultDPI
	}
	return &PageRenderer{decoder: decoder, dpi: dpi}
}

// Render paints every placement onto a white page canvas sized for the
// paper at the renderer's density. A photo that fails to decode is skipped
// and reported in its PhotoResult; the page itself still renders. Only a
// cancelled context aborts the whole page.
func (r *PageRenderer) Render(ctx context.Context, placements []layout.PhotoPlacement, paper layout.PaperSize) (*image.RGBA, []PhotoResult, error) {
	pageW := int(math.Round(layout.ToDeviceUnits(paper.WidthMM, r.dpi)))
	pageH := int(math.Round(layout.ToDeviceUnits(paper.HeightMM, r.dpi)))
	canvas := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	results := make([]PhotoResult, 0, len(placements))
	for i, pl := range placements {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		result := PhotoResult{PhotoID: pl.Photo.ID, SlotIndex: i}
		img, err := r.decoder.Decode(pl.Photo)
		if err != nil {
			log.Warn().
				Str("photo", pl.Photo.DisplayName).
				Err(err).
				Msg("skipping photo that failed to decode")
			result.Skipped = true
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		bounds := img.Bounds()
		fit := layout.FitRect(float64(bounds.Dx()), float64(bounds.Dy()), pl.PhotoRect)
		dst := r.deviceRect(fit)
		xdraw.CatmullRom.Scale(canvas, dst, img, bounds, xdraw.Over, nil)

		result.EffectiveDPI = effectiveDPI(bounds.Dx(), fit.W)
		result.LowRes = result.EffectiveDPI > 0 && result.EffectiveDPI < constants.LowResDPIThreshold
		results = append(results, result)

		log.Debug().
			Str("photo", pl.Photo.DisplayName).
			Int("slot", i).
			Float64("effective_dpi", result.EffectiveDPI).
			Msg("placed photo")
	}
	return canvas, results, nil
}

// deviceRect converts a millimeter rectangle to pixel coordinates at the
// renderer's density.
func (r *PageRenderer) deviceRect(rect layout.Rect) image.Rectangle {
	x0 := int(math.Round(layout.ToDeviceUnits(rect.X, r.dpi)))
	y0 := int(math.Round(layout.ToDeviceUnits(rect.Y, r.dpi)))
	x1 := int(math.Round(layout.ToDeviceUnits(rect.X+rect.W, r.dpi)))
	y1 := int(math.Round(layout.ToDeviceUnits(rect.Y+rect.H, r.dpi)))
	return image.Rect(x0, y0, x1, y1)
}

// effectiveDPI computes the print density a photo achieves in its fitted
// rectangle, rounded to one decimal place.
func effectiveDPI(pixelWidth int, widthMM float64) float64 {
	if widthMM <= 0 {
		return 0
	}
	dpi := float64(pixelWidth) / widthMM * layout.MMPerInch
	return math.Round(dpi*10) / 10
}
