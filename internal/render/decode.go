// Package render consumes placement geometry to rasterize pages and write
// the final paginated PDF document. It is the only part of the pipeline
// that performs I/O; the layout engine it feeds from stays pure.
package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

// Decoder loads the pixels for a photo reference. Implementations must
// return the image already rotated per the photo's rotation field.
type Decoder interface {
	Decode(photo layout.Photo) (image.Image, error)
}

// FileDecoder decodes photos from local files.
type FileDecoder struct{}

func (FileDecoder) Decode(photo layout.Photo) (image.Image, error) {
	f, err := os.Open(photo.Ref)
	if err != nil {
		return nil, fmt.Errorf("opening photo %s: %w", photo.ID, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding photo %s: %w", photo.ID, err)
	}
	return Rotate(img, photo.Rotation), nil
}

// Rotate returns img rotated clockwise by the given number of degrees.
// Only 90, 180 and 270 rotate; any other value returns img unchanged.
func Rotate(img image.Image, degrees int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.NRGBA
	switch degrees {
	case 90:
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(h-1-y, x, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	case 180:
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(w-1-x, h-1-y, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	case 270:
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(y, w-1-x, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	default:
		return img
	}
	return dst
}
