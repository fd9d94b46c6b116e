package handlers

//go:generate mockgen -source=upscale.go -destination=upscale_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// ImageProcessor runs credit metered operations.
type ImageProcessor interface {
	Process(ctx context.Context, user *models.User, req services.Request) (*services.Result, error)
	Submit(ctx context.Context, user *models.User, req services.Request) (*services.Result, error)
}

// UpscaleResponse represents a successful upscale
// swagger:model UpscaleResponse
type UpscaleResponse struct {
	// example: true
	Success bool `json:"success"`
	// example: 5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b
	ImageID string `json:"imageId"`
	// Public URL of the result
	// example: /api/processed-images/5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b/view
	ImageURL string `json:"imageUrl"`
	// Public URL of the upload
	// example: /api/processed-images/5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b/original
	OriginalURL string `json:"originalUrl"`
	// example: 2
	Scale int `json:"scale"`
	// example: general
	ImageType string `json:"imageType"`
	// example: nightmareai/real-esrgan
	Model string `json:"model"`
	// example: 2
	CreditsUsed int `json:"creditsUsed"`
	// example: 98
	CreditsRemaining int `json:"creditsRemaining"`
}

// NewUpscaleHandler upscales an uploaded image.
// @Summary Upscale an image
// @Description Upscales the uploaded image 2x, 4x or 8x. imageType selects the model: general, product, portrait or faithful (local, free). Unknown values fall back to 2 and general.
// @Tags processing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (jpeg, png or webp)"
// @Param scale formData int false "Scale factor" Enums(2, 4, 8) default(2)
// @Param imageType formData string false "Image type" Enums(general, product, portrait, faithful) default(general)
// @Success 200 {object} handlers.UpscaleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /upscale [post]
// @Security BearerAuth
func NewUpscaleHandler(processor ImageProcessor, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		upload, err := readUpload(w, r, maxUploadBytes)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		req := services.Request{
			Operation: models.OperationUpscale,
			Variant:   services.NormalizeImageType(r.FormValue("imageType")),
			Scale:     services.NormalizeScale(r.FormValue("scale")),
			Upload:    upload,
		}

		res, err := processor.Process(r.Context(), user, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpscaleResponse{
			Success:          true,
			ImageID:          res.Image.ID.String(),
			ImageURL:         models.ViewURL(res.Image.ID),
			OriginalURL:      models.OriginalURL(res.Image.ID),
			Scale:            res.Image.Scale,
			ImageType:        res.Image.Variant,
			Model:            res.Image.Model,
			CreditsUsed:      res.CreditsUsed,
			CreditsRemaining: res.CreditsRemaining,
		})
	}
}

// RegisterUpscaleHandler registers the upscale route
func RegisterUpscaleHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/upscale", h)
}
