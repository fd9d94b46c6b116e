package handlers

//go:generate mockgen -source=processed_images.go -destination=processed_images_mock.go -package=handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ImageHistory lists the caller's processed images.
type ImageHistory interface {
	ListImages(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProcessedImage, error)
}

// ImageOpener reads stored image bytes.
type ImageOpener interface {
	OpenImage(ctx context.Context, id uuid.UUID, original bool) ([]byte, string, error)
}

// ProcessedImageResponse is one history entry
// swagger:model ProcessedImageResponse
type ProcessedImageResponse struct {
	ID               string     `json:"id"`
	Operation        string     `json:"operation"`
	Variant          string     `json:"variant,omitempty"`
	Model            string     `json:"model"`
	Scale            int        `json:"scale,omitempty"`
	Cost             int        `json:"cost"`
	Status           string     `json:"status"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	OriginalURL      string     `json:"originalUrl,omitempty"`
	ContentType      string     `json:"contentType,omitempty"`
	Width            int        `json:"width,omitempty"`
	Height           int        `json:"height,omitempty"`
	ProcessingTimeMs int64      `json:"processingTimeMs"`
	Error            string     `json:"error,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// ProcessedImageListResponse is a page of history
// swagger:model ProcessedImageListResponse
type ProcessedImageListResponse struct {
	Images []ProcessedImageResponse `json:"images"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

func toProcessedImageResponse(img models.ProcessedImage) ProcessedImageResponse {
	resp := ProcessedImageResponse{
		ID:               img.ID.String(),
		Operation:        string(img.Operation),
		Variant:          img.Variant,
		Model:            img.Model,
		Scale:            img.Scale,
		Cost:             img.Cost,
		Status:           string(img.Status),
		ContentType:      img.ContentType,
		Width:            img.Width,
		Height:           img.Height,
		ProcessingTimeMs: img.ProcessingTimeMs,
		CreatedAt:        img.CreatedAt,
		CompletedAt:      img.CompletedAt,
	}
	if img.ResultKey != nil {
		resp.ImageURL = models.ViewURL(img.ID)
	}
	if img.OriginalKey != nil {
		resp.OriginalURL = models.OriginalURL(img.ID)
	}
	if img.Error != nil {
		resp.Error = *img.Error
	}
	return resp
}

func queryInt(r *http.Request, name string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < lo {
		return def
	}
	return min(v, hi)
}

// NewListProcessedImagesHandler returns the caller's history, newest first.
// @Summary List processed images
// @Tags images
// @Produce json
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} handlers.ProcessedImageListResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /processed-images [get]
// @Security BearerAuth
func NewListProcessedImagesHandler(history ImageHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		limit := queryInt(r, "limit", defaultHistoryLimit, 1, maxHistoryLimit)
		offset := queryInt(r, "offset", 0, 0, math.MaxInt32)

		images, err := history.ListImages(r.Context(), user.ID, limit, offset)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := ProcessedImageListResponse{Images: make([]ProcessedImageResponse, 0, len(images)), Limit: limit, Offset: offset}
		for _, img := range images {
			resp.Images = append(resp.Images, toProcessedImageResponse(img))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func newImageFileHandler(opener ImageOpener, original bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, msgImageNotFound)
			return
		}

		data, contentType, err := opener.OpenImage(r.Context(), id, original)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.Log.Warnw("failed to write image", "image_id", id, "err", err)
		}
	}
}

// NewViewProcessedImageHandler serves a processed result.
// @Summary View processed image
// @Description Public, unauthenticated access by id.
// @Tags images
// @Produce octet-stream
// @Param id path string true "Image id"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /processed-images/{id}/view [get]
func NewViewProcessedImageHandler(opener ImageOpener) http.HandlerFunc {
	return newImageFileHandler(opener, false)
}

// NewOriginalImageHandler serves the uploaded source of a processed image.
// @Summary View original image
// @Description Public, unauthenticated access by id.
// @Tags images
// @Produce octet-stream
// @Param id path string true "Image id"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /processed-images/{id}/original [get]
func NewOriginalImageHandler(opener ImageOpener) http.HandlerFunc {
	return newImageFileHandler(opener, true)
}

// RegisterProcessedImageFileHandlers registers the public image routes
func RegisterProcessedImageFileHandlers(r chi.Router, view, original http.HandlerFunc) {
	r.Get("/processed-images/{id}/view", view)
	r.Get("/processed-images/{id}/original", original)
}

// RegisterListProcessedImagesHandler registers the history route
func RegisterListProcessedImagesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/processed-images", h)
}
