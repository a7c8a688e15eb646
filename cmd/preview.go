package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-printer/internal/config"
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/source"
)

var previewCmd = &cobra.Command{
	Use:   "preview [directory]",
	Short: "Show the page layout for a photo directory without writing a PDF",
	Long: `Preview lists the pages and photo positions that compose would produce
for the photos in a directory. No files are decoded or written; the
command only computes geometry.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addPrintFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	photos, err := source.ListPhotos(args[0])
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		fmt.Println("No photos found")
		return nil
	}

	paper := layout.MustPaper(settings.Paper)
	pages, err := layout.Paginate(photos, settings.Layout, settings.Mode)
	if err != nil {
		return err
	}

	fmt.Printf("%d photos on %d pages (%s, %s)\n", len(photos), len(pages), settings.Paper, settings.Layout)
	for _, page := range pages {
		placements, err := layout.Place(page, paper, settings.Margins)
		if err != nil {
			return err
		}
		fmt.Printf("\nPage %d (%s):\n", page.Number, page.Layout)
		for i, p := range placements {
			fmt.Printf("  %d. %-30s slot %.1f,%.1f %.1fx%.1f mm  photo %.1fx%.1f mm\n",
				i+1, p.Photo.DisplayName,
				p.Slot.X, p.Slot.Y, p.Slot.W, p.Slot.H,
				p.PhotoRect.W, p.PhotoRect.H)
		}
		for _, warn := range layout.ValidatePlacements(page, placements, paper) {
			fmt.Printf("  warning: %s\n", warn.Message)
		}
	}
	return nil
}
