package controllers

import (
	"errors"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"mime/multipart"
	"net/http"
)

type uploadedImage struct {
	file        multipart.File
	header      *multipart.FileHeader
	contentType string
}

// readImage parses the multipart form and validates the image under field.
// The caller closes the returned file.
func readImage(r *http.Request, field string, maxSizeInMegabytes int) (*uploadedImage, error) {
	err := r.ParseMultipartForm(int64(maxSizeInMegabytes) << 20)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType, err := utils.ValidateImage(header, maxSizeInMegabytes)
	if err != nil {
		file.Close()
		if errors.Is(err, utils.ErrImageTooLarge) {
			return nil, exceptions.ErrImageTooLarge(err, maxSizeInMegabytes)
		}
		return nil, exceptions.ErrImageValidation(err)
	}

	return &uploadedImage{file: file, header: header, contentType: contentType}, nil
}
