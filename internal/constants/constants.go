// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Compose pipeline constants
const (
	// DefaultConcurrency is the default number of parallel photo decode workers
	DefaultConcurrency = 4

	// DefaultJPEGQuality is the JPEG quality used when embedding page rasters
	DefaultJPEGQuality = 90

	// LowResDPIThreshold is the effective DPI below which a placed photo
	// gets a low-resolution warning in the compose report
	LowResDPIThreshold = 200.0
)

// Web server constants
const (
	// DefaultPreviewPhotoCount is the photo count used by the preview
	// endpoint when the request carries no explicit photos
	DefaultPreviewPhotoCount = 4

	// MaxPreviewPhotoCount caps synthetic preview requests
	MaxPreviewPhotoCount = 1000
)
