package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Output OutputConfig
	Prefs  PrefsConfig
	Log    LogConfig
}

type OutputConfig struct {
	DPI         float64 // raster density for page output (default 300)
	JPEGQuality int     // quality for page rasters embedded in the PDF (default 90)
	Concurrency int     // parallel photo decode workers (default 4)
}

type PrefsConfig struct {
	Path string // SQLite preference store path
}

type LogConfig struct {
	Level  string // zerolog level name (default info)
	Pretty bool   // human-readable console output (default true)
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// defaultPrefsPath places the preference store next to the user config dir,
// falling back to the working directory when none is available.
func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "photo-printer.db"
	}
	return filepath.Join(dir, "photo-printer", "prefs.db")
}

func Load() *Config {
	pretty := true
	if os.Getenv("PRINTER_LOG_JSON") != "" {
		pretty = false
	}
	return &Config{
		Output: OutputConfig{
			DPI:         envFloat("PRINTER_DPI", 300),
			JPEGQuality: envInt("PRINTER_JPEG_QUALITY", 90),
			Concurrency: envInt("PRINTER_CONCURRENCY", 4),
		},
		Prefs: PrefsConfig{
			Path: envString("PRINTER_PREFS_PATH", defaultPrefsPath()),
		},
		Log: LogConfig{
			Level:  envString("PRINTER_LOG_LEVEL", "info"),
			Pretty: pretty,
		},
	}
}
