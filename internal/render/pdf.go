package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/photo-printer/internal/constants"
	"github.com/kozaktomas/photo-printer/internal/layout"
)

// DocumentWriter produces the paginated PDF output. Each page raster is
// embedded full bleed on a page matching the paper's physical size, so the
// PDF geometry stays proportional to the placement geometry bit for bit.
type DocumentWriter struct {
	paper   layout.PaperSize
	quality int
}

func NewDocumentWriter(paper layout.PaperSize, jpegQuality int) *DocumentWriter {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = constants.DefaultJPEGQuality
	}
	return &DocumentWriter{paper: paper, quality: jpegQuality}
}

// Write renders pageCount pages through the callback, in ascending page
// order, into a PDF at path. On cancellation or any failure the partial
// output is removed; the document either appears complete or not at all.
func (w *DocumentWriter) Write(ctx context.Context, path string, pageCount int, renderPage func(number int) (image.Image, error)) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: w.paper.WidthMM, Ht: w.paper.HeightMM},
	})
	pdf.SetAutoPageBreak(false, 0)

	for n := 1; n <= pageCount; n++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("document write cancelled at page %d: %w", n, err)
		}

		raster, err := renderPage(n)
		if err != nil {
			return fmt.Errorf("rendering page %d: %w", n, err)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, raster, &jpeg.Options{Quality: w.quality}); err != nil {
			return fmt.Errorf("encoding page %d: %w", n, err)
		}

		name := fmt.Sprintf("page-%d", n)
		opts := fpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, w.paper.WidthMM, w.paper.HeightMM, false, opts, 0, "")
		if pdf.Err() {
			return fmt.Errorf("writing page %d: %w", n, pdf.Error())
		}

		log.Debug().Int("page", n).Msg("page written to document")
	}

	// Write to a temp file first so a failure never leaves a partial
	// document behind.
	tmp := path + ".tmp"
	if err := pdf.OutputFileAndClose(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := ctx.Err(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("document write cancelled: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalizing document: %w", err)
	}
	return nil
}
