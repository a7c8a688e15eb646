package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-printer/internal/compose"
	"github.com/kozaktomas/photo-printer/internal/config"
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/render"
	"github.com/kozaktomas/photo-printer/internal/source"
)

var composeCmd = &cobra.Command{
	Use:   "compose [directory]",
	Short: "Compose photos from a directory into a printable PDF",
	Long: `Compose reads all photos from a directory, arranges them into pages
using the selected layout and margins, and writes a single PDF ready
for printing. Photos that fail to decode are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
	addPrintFlags(composeCmd)

	composeCmd.Flags().StringP("output", "o", "photos.pdf", "Output PDF path")
	composeCmd.Flags().Float64("dpi", 0, "Raster density in DPI (0 = use PRINTER_DPI or 300)")
	composeCmd.Flags().Int("quality", 0, "JPEG quality for embedded page rasters (0 = use config)")
	composeCmd.Flags().Int("concurrency", 0, "Parallel photo decode workers (0 = use config)")
	composeCmd.Flags().Bool("save-prefs", false, "Persist the resolved layout settings for future runs")
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	output := mustGetString(cmd, "output")
	dpi := mustGetFloat64(cmd, "dpi")
	if dpi <= 0 {
		dpi = cfg.Output.DPI
	}
	quality := mustGetInt(cmd, "quality")
	if quality <= 0 {
		quality = cfg.Output.JPEGQuality
	}
	concurrency := mustGetInt(cmd, "concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Output.Concurrency
	}

	photos, err := source.ListPhotos(args[0])
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		fmt.Println("No photos found")
		return nil
	}

	fmt.Printf("Composing %d photos onto %s pages (%s)\n", len(photos), settings.Paper, settings.Layout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Println("\nCancelling...")
		cancel()
	}()

	var bar *progressbar.ProgressBar
	opts := compose.Options{
		Layout:      settings.Layout,
		Paper:       layout.MustPaper(settings.Paper),
		Margins:     settings.Margins,
		Mode:        settings.Mode,
		DPI:         dpi,
		JPEGQuality: quality,
		Concurrency: concurrency,
		OnProgress: func(info compose.ProgressInfo) {
			switch info.Phase {
			case "decoding":
				if bar == nil {
					bar = progressbar.NewOptions(info.Total,
						progressbar.OptionSetDescription("Decoding photos"),
						progressbar.OptionShowCount(),
						progressbar.OptionShowIts(),
						progressbar.OptionSetItsString("photos"),
						progressbar.OptionShowElapsedTimeOnFinish(),
						progressbar.OptionSetPredictTime(true),
						progressbar.OptionFullWidth(),
					)
				}
				_ = bar.Set(info.Current)
			case "writing":
				if bar != nil {
					_ = bar.Finish()
					bar = nil
					fmt.Println()
				}
				fmt.Printf("Writing page %d/%d\n", info.Current, info.Total)
			}
		},
	}

	composer := compose.New(&render.FileDecoder{})
	report, err := composer.Compose(ctx, photos, output, opts)
	if err != nil {
		return fmt.Errorf("composing %s: %w", output, err)
	}

	if mustGetBool(cmd, "save-prefs") {
		if err := saveSettings(cfg, settings); err != nil {
			log.Warn().Err(err).Msg("failed to save preferences")
		}
	}

	fmt.Printf("\nWrote %s: %d pages, %d photos", report.Output, report.PageCount, report.PhotoCount)
	if report.Skipped > 0 {
		fmt.Printf(" (%d skipped)", report.Skipped)
	}
	fmt.Println()
	for _, warn := range report.Warnings {
		fmt.Printf("warning: %s\n", warn)
	}
	return nil
}
