package constants

import (
	"path/filepath"
	"strings"
)

// Image formats accepted for class pictures.
const (
	ImageJPEG    = "jpeg"
	ImagePNG     = "png"
	ImageWEBP    = "webp"
	ImageUnknown = ""
)

// DetectImageFormatFromExt maps a file name to an accepted image format.
func DetectImageFormatFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return ImageJPEG
	case ".png":
		return ImagePNG
	case ".webp":
		return ImageWEBP
	default:
		return ImageUnknown
	}
}
