package storage

import (
	"errors"
	"fmt"

	"gallery/config"
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// allowedImageTypes maps accepted upload content types to the file extension
// blobs get stored under.
var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// ValidateUpload enforces the upload constraints before anything touches a
// bucket: accepted image content type and size within the configured maximum.
func ValidateUpload(contentType string, size int64) error {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size <= 0 || size > int64(config.MAX_UPLOAD_SIZE) {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, size, config.MAX_UPLOAD_SIZE)
	}
	return nil
}

// ExtFor returns the storage extension for an accepted content type.
func ExtFor(contentType string) string {
	return allowedImageTypes[contentType]
}
