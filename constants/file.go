package constants

import "strings"

// Media types accepted by the upload surface.
const (
	MediaPNG  = "image/png"
	MediaJPEG = "image/jpeg"
	MediaPDF  = "application/pdf"
)

// AllowedExtensions holds the file extensions the upload surface accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToMediaType returns the declared media type for a normalized
// extension, or "" when the extension is not supported.
func MapExtToMediaType(ext string) string {
	switch NormalizeExt(ext) {
	case "png":
		return MediaPNG
	case "jpg", "jpeg":
		return MediaJPEG
	case "pdf":
		return MediaPDF
	}
	return ""
}
