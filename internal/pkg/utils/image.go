package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrImageTooLarge      = errors.New("file size exceeds the maximum limit")
	ErrImageInvalidFormat = errors.New("invalid file format")
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ValidateImage checks the extension and size of an uploaded image and returns its content type.
func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int) (string, error) {
	if fileHeader == nil {
		return "", ErrImageInvalidFormat
	}
	if fileHeader.Size > int64(maxSizeInMegabytes)*1024*1024 {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", ErrImageInvalidFormat
	}
	return contentType, nil
}
