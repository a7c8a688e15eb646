// Package source enumerates photos from the local filesystem. It is the
// photo-source collaborator of the layout engine: it produces ordered Photo
// records and never touches image pixels itself.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

// imageExtensions lists the file extensions treated as printable photos.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ListPhotos scans a directory (non-recursively) for image files and
// returns them as Photo records in natural filename order, so photo_2
// sorts before photo_10. An empty directory yields an empty slice, not an
// error; an unreadable directory surfaces the underlying error.
func ListPhotos(dir string) ([]layout.Photo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading photo directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}

	c := collate.New(language.Und, collate.Numeric)
	sort.Slice(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})

	photos := make([]layout.Photo, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		photos[i] = layout.Photo{
			ID:          photoID(path),
			Ref:         path,
			DisplayName: name,
			Status:      layout.StatusPending,
		}
	}
	return photos, nil
}

// photoID derives a stable identifier from the photo path, so repeated
// enumerations of the same directory produce identical IDs.
func photoID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String()
}
