/*
Package chat contains the client-side domain model for direct-message conversations.

This file validates local image files before they are uploaded as message content.
*/
package chat

import (
	"os"
	"path/filepath"
	"strings"

	"hushchat/internal/pkg/errs"
)

const (
	// MaxImageSizeMB is the maximum allowed image file size in megabytes.
	MaxImageSizeMB = 5

	// MaxImageSize is the maximum allowed image file size in bytes.
	MaxImageSize = MaxImageSizeMB * 1024 * 1024
)

// ExtToMIME maps allowed file extensions to their corresponding MIME types.
var ExtToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ImageFile describes a validated local image selected for sending.
type ImageFile struct {
	// Path is the local filesystem path.
	Path string

	// MIMEType is the type inferred from the file extension.
	MIMEType string

	// Size is the file size in bytes.
	Size int64
}

// ValidateImageFile checks that the file at path exists, has an allowed image
// extension, and is within the size limit.
func ValidateImageFile(path string) (ImageFile, *errs.CustomError) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ImageFile{}, errs.NewError(errs.ErrImageFileUnreadable)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := ExtToMIME[ext]
	if !ok {
		return ImageFile{}, errs.NewError(errs.ErrImageTypeInvalid)
	}

	if info.Size() <= 0 || info.Size() > MaxImageSize {
		return ImageFile{}, errs.NewError(errs.ErrImageTooLarge, MaxImageSizeMB)
	}

	return ImageFile{Path: path, MIMEType: mimeType, Size: info.Size()}, nil
}
