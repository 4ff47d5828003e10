package controller

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
)

// formFiles opens every file sent under fields. Requests that are not
// multipart carry no files. The returned func closes whatever was opened.
func formFiles(e echo.Context, fields ...string) (uploads []dto.FileUpload, closeAll func(), err error) {
	var opened []multipart.File
	closeAll = func() {
		for _, f := range opened {
			f.Close()
		}
	}

	form, err := e.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, closeAll, nil
	}
	if err != nil {
		return nil, closeAll, errs.ErrClient
	}

	for _, field := range fields {
		for _, header := range form.File[field] {
			file, err := header.Open()
			if err != nil {
				closeAll()
				return nil, func() {}, err
			}
			opened = append(opened, file)

			uploads = append(uploads, dto.FileUpload{
				Field:       field,
				Filename:    header.Filename,
				ContentType: header.Header.Get(echo.HeaderContentType),
				Size:        header.Size,
				Reader:      file,
			})
		}
	}

	return uploads, closeAll, nil
}
