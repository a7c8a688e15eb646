// Package compose orchestrates the print pipeline: pagination, placement,
// concurrent photo decoding, page rasterization and document output. It
// holds no state between runs; a configuration change simply means calling
// Compose again and discarding the stale result.
package compose

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/photo-printer/internal/constants"
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/render"
)

// ProgressInfo carries progress updates for CLI bars and web job status.
type ProgressInfo struct {
	Phase   string // "decoding" or "writing"
	Current int
	Total   int
	PhotoID string
}

// Options configures a single compose run.
type Options struct {
	Layout      layout.LayoutType
	Paper       layout.PaperSize
	Margins     layout.MarginConfig
	Mode        layout.IncompletePageMode
	DPI         float64
	JPEGQuality int
	Concurrency int
	OnProgress  func(ProgressInfo)
}

// Composer runs the compose pipeline with a pluggable decoder.
type Composer struct {
	decoder render.Decoder
}

func New(decoder render.Decoder) *Composer {
	return &Composer{decoder: decoder}
}

// decodedPhoto is the outcome of one concurrent decode.
type decodedPhoto struct {
	img image.Image
	err error
}

// Compose lays out the photos, renders every page and writes the PDF to
// output. Zero photos is a valid terminal state that produces an empty
// report and no document. Configuration problems fail fast before any
// decoding starts; individual photo decode failures are skipped and
// reported, never fatal.
func (c *Composer) Compose(ctx context.Context, photos []layout.Photo, output string, opts Options) (*Report, error) {
	if opts.DPI <= 0 {
		opts.DPI = layout.DefaultDPI
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = constants.DefaultConcurrency
	}

	pages, err := layout.Paginate(photos, opts.Layout, opts.Mode)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return &Report{}, nil
	}

	// Place everything up front so a bad configuration is rejected before
	// any pixel work happens.
	placed := make([][]layout.PhotoPlacement, len(pages))
	report := &Report{PageCount: len(pages), PhotoCount: len(photos), Output: output}
	for i, page := range pages {
		placements, err := layout.Place(page, opts.Paper, opts.Margins)
		if err != nil {
			return nil, err
		}
		placed[i] = placements
		for _, w := range layout.ValidatePlacements(page, placements, opts.Paper) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("layout: page %d slot %d: %s", w.PageNumber, w.SlotIndex, w.Message))
		}
	}

	cache := c.decodePhotos(ctx, photos, opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer := render.NewPageRenderer(&cachedDecoder{cache: cache}, opts.DPI)
	writer := render.NewDocumentWriter(opts.Paper, opts.JPEGQuality)

	err = writer.Write(ctx, output, len(pages), func(number int) (image.Image, error) {
		page := pages[number-1]
		canvas, results, err := renderer.Render(ctx, placed[number-1], opts.Paper)
		if err != nil {
			return nil, err
		}
		report.Pages = append(report.Pages, ReportPage{
			PageNumber: page.Number,
			Layout:     page.Layout,
			Photos:     results,
		})
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressInfo{Phase: "writing", Current: number, Total: len(pages)})
		}
		return canvas, nil
	})
	if err != nil {
		return nil, err
	}

	finishReport(report)
	return report, nil
}

// decodePhotos loads all photos concurrently through a bounded worker
// pool. Decode failures are recorded per photo; the pipeline carries on.
func (c *Composer) decodePhotos(ctx context.Context, photos []layout.Photo, opts Options) map[string]decodedPhoto {
	cache := make(map[string]decodedPhoto, len(photos))
	var mu sync.Mutex
	done := 0

	jobs := make(chan layout.Photo, len(photos))
	for _, p := range photos {
		jobs <- p
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for photo := range jobs {
				if ctx.Err() != nil {
					return
				}
				img, err := c.decoder.Decode(photo)
				if err != nil {
					log.Warn().Str("photo", photo.DisplayName).Err(err).Msg("failed to decode photo")
				}
				mu.Lock()
				cache[photo.ID] = decodedPhoto{img: img, err: err}
				done++
				current := done
				mu.Unlock()
				if opts.OnProgress != nil {
					opts.OnProgress(ProgressInfo{
						Phase:   "decoding",
						Current: current,
						Total:   len(photos),
						PhotoID: photo.ID,
					})
				}
			}
		}()
	}
	wg.Wait()
	return cache
}

// cachedDecoder serves pre-decoded images to the page renderer.
type cachedDecoder struct {
	cache map[string]decodedPhoto
}

func (d *cachedDecoder) Decode(photo layout.Photo) (image.Image, error) {
	dp, ok := d.cache[photo.ID]
	if !ok {
		return nil, fmt.Errorf("photo %s was not decoded", photo.ID)
	}
	if dp.err != nil {
		return nil, dp.err
	}
	return dp.img, nil
}

// finishReport aggregates per-photo outcomes into report-level counters
// and low-resolution warnings.
func finishReport(report *Report) {
	for _, page := range report.Pages {
		for _, photo := range page.Photos {
			if photo.Skipped {
				report.Skipped++
				continue
			}
			if photo.LowRes {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("page %d, slot %d (%s): effective DPI %.0f is below %d",
						page.PageNumber, photo.SlotIndex, photo.PhotoID,
						photo.EffectiveDPI, int(constants.LowResDPIThreshold)))
			}
		}
	}
}
