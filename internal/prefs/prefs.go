// Package prefs persists the last-used print settings as simple key/value
// pairs in a local SQLite database. Missing keys fall back to the
// documented defaults, so a fresh install behaves identically to one
// where the user never changed anything.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

// Preference keys.
const (
	keyLayout       = "layout"
	keyPaper        = "paper"
	keyMode         = "incomplete_page_mode"
	keyMarginTop    = "margin_top"
	keyMarginBottom = "margin_bottom"
	keyMarginLeft   = "margin_left"
	keyMarginRight  = "margin_right"
)

// Settings holds the user-facing print configuration.
type Settings struct {
	Layout  layout.LayoutType
	Paper   string
	Margins layout.MarginConfig
	Mode    layout.IncompletePageMode
}

// DefaultSettings returns the documented fallback configuration: four
// photos per page on A4 with instant-camera margins, incomplete pages
// left blank.
func DefaultSettings() Settings {
	return Settings{
		Layout:  layout.FourPerPage,
		Paper:   "A4",
		Margins: layout.MarginsInstantCamera,
		Mode:    layout.LeaveBlank,
	}
}

// Store is a SQLite-backed preference store.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("creating preference directory: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("initializing preference schema: %w", err)
	}
	return nil
}

// get returns the stored value for key, or ok=false when absent.
func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// LoadSettings reads the stored settings, falling back per key to the
// defaults. Stored values that no longer parse or validate are ignored
// rather than surfaced, so a stale database never blocks startup.
func (s *Store) LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	if v, ok, err := s.get(keyLayout); err != nil {
		return settings, err
	} else if ok && layout.LayoutType(v).Valid() {
		settings.Layout = layout.LayoutType(v)
	}

	if v, ok, err := s.get(keyPaper); err != nil {
		return settings, err
	} else if ok {
		if _, found := layout.PaperByName(v); found {
			settings.Paper = v
		}
	}

	if v, ok, err := s.get(keyMode); err != nil {
		return settings, err
	} else if ok {
		mode := layout.IncompletePageMode(v)
		if mode == layout.LeaveBlank || mode == layout.FillLayout {
			settings.Mode = mode
		}
	}

	margins := settings.Margins
	for _, f := range []struct {
		key  string
		dest *float64
	}{
		{keyMarginTop, &margins.Top},
		{keyMarginBottom, &margins.Bottom},
		{keyMarginLeft, &margins.Left},
		{keyMarginRight, &margins.Right},
	} {
		v, ok, err := s.get(f.key)
		if err != nil {
			return settings, err
		}
		if !ok {
			continue
		}
		if mm, parseErr := strconv.ParseFloat(v, 64); parseErr == nil && mm >= 0 {
			*f.dest = mm
		}
	}
	settings.Margins = margins

	return settings, nil
}

// SaveSettings writes all settings, replacing any previous values.
func (s *Store) SaveSettings(settings Settings) error {
	pairs := []struct {
		key   string
		value string
	}{
		{keyLayout, string(settings.Layout)},
		{keyPaper, settings.Paper},
		{keyMode, string(settings.Mode)},
		{keyMarginTop, strconv.FormatFloat(settings.Margins.Top, 'f', -1, 64)},
		{keyMarginBottom, strconv.FormatFloat(settings.Margins.Bottom, 'f', -1, 64)},
		{keyMarginLeft, strconv.FormatFloat(settings.Margins.Left, 'f', -1, 64)},
		{keyMarginRight, strconv.FormatFloat(settings.Margins.Right, 'f', -1, 64)},
	}
	for _, p := range pairs {
		if err := s.set(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
