package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-printer/internal/config"
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/prefs"
)

// addPrintFlags registers the shared layout flags on a command. An empty
// default means "not set, fall back to saved preferences".
func addPrintFlags(cmd *cobra.Command) {
	cmd.Flags().String("layout", "", "Page layout: 2_per_page, 3_per_page, 4_per_page")
	cmd.Flags().String("paper", "", "Paper size name (see 'photo-printer layouts')")
	cmd.Flags().String("margins", "", "Margin preset (none, minimal, instant) or custom top,bottom,left,right in mm")
	cmd.Flags().String("mode", "", "Incomplete page mode: leave_blank, fill_layout")
}

// parseMargins converts a --margins flag value into a margin configuration.
func parseMargins(value string) (layout.MarginConfig, error) {
	switch value {
	case "none":
		return layout.MarginsNone, nil
	case "minimal":
		return layout.MarginsMinimal, nil
	case "instant":
		return layout.MarginsInstantCamera, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return layout.MarginConfig{}, fmt.Errorf("invalid margins %q: expected preset name or top,bottom,left,right", value)
	}
	mm := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 {
			return layout.MarginConfig{}, fmt.Errorf("invalid margin value %q", part)
		}
		mm[i] = v
	}
	return layout.MarginConfig{Top: mm[0], Bottom: mm[1], Left: mm[2], Right: mm[3]}, nil
}

// resolveSettings merges saved preferences with explicit flag overrides.
// Flags win; anything not set on the command line comes from the
// preference store, which itself falls back to the documented defaults.
func resolveSettings(cmd *cobra.Command, cfg *config.Config) (prefs.Settings, error) {
	settings := prefs.DefaultSettings()

	store, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Prefs.Path).Msg("preference store unavailable, using defaults")
	} else {
		defer store.Close()
		settings, err = store.LoadSettings()
		if err != nil {
			return settings, fmt.Errorf("loading preferences: %w", err)
		}
	}

	if v := mustGetString(cmd, "layout"); v != "" {
		lt := layout.LayoutType(v)
		if !lt.Valid() {
			return settings, fmt.Errorf("unknown layout: %q", v)
		}
		settings.Layout = lt
	}
	if v := mustGetString(cmd, "paper"); v != "" {
		if _, ok := layout.PaperByName(v); !ok {
			return settings, fmt.Errorf("unknown paper size: %q", v)
		}
		settings.Paper = v
	}
	if v := mustGetString(cmd, "margins"); v != "" {
		margins, err := parseMargins(v)
		if err != nil {
			return settings, err
		}
		settings.Margins = margins
	}
	if v := mustGetString(cmd, "mode"); v != "" {
		mode := layout.IncompletePageMode(v)
		if mode != layout.LeaveBlank && mode != layout.FillLayout {
			return settings, fmt.Errorf("unknown mode: %q", v)
		}
		settings.Mode = mode
	}

	return settings, nil
}

// saveSettings persists the resolved settings for the next run.
func saveSettings(cfg *config.Config, settings prefs.Settings) error {
	store, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer store.Close()
	return store.SaveSettings(settings)
}
