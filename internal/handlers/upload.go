package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

const (
	uploadField     = "image"
	multipartMemory = 32 << 20
	// multipartEnvelope covers boundaries, part headers and form fields
	// around the file itself.
	multipartEnvelope = 1 << 20
)

// Size ceilings per accepted content type, in megabytes.
var uploadLimitsMB = map[string]int64{
	"image/jpeg": 15,
	"image/png":  20,
	"image/webp": 10,
}

const allowedTypesList = "image/jpeg, image/png, image/webp"

// readUpload reads and validates the multipart image field. maxBytes caps the
// file, the request body may carry multipartEnvelope bytes on top of it.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*models.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartEnvelope)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, invalidf("File too large: maximum request size is %dMB", (maxBytes+1<<20-1)>>20)
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, services.ErrImageRequired
		}
		return nil, invalidf(msgInvalidRequestFmt, "malformed multipart form")
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, services.ErrImageRequired
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, invalidf(msgInvalidRequestFmt, "unreadable image")
	}
	if len(data) == 0 {
		return nil, services.ErrImageRequired
	}

	contentType := normalizeContentType(header.Header.Get("Content-Type"))
	if _, ok := uploadLimitsMB[contentType]; !ok {
		contentType = normalizeContentType(http.DetectContentType(data))
	}

	limitMB, ok := uploadLimitsMB[contentType]
	if !ok {
		return nil, invalidf("Invalid file type: %s. Allowed types: %s", contentType, allowedTypesList)
	}
	if int64(len(data)) > limitMB<<20 {
		return nil, invalidf("File too large: maximum size for %s is %dMB", contentType, limitMB)
	}

	return &models.Upload{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

func normalizeContentType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "image/jpg" || ct == "image/pjpeg" {
		return "image/jpeg"
	}
	return ct
}
