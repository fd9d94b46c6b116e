package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// ToolResponse represents a successful image tool run
// swagger:model ToolResponse
type ToolResponse struct {
	// example: true
	Success bool `json:"success"`
	// example: 5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b
	ImageID string `json:"imageId"`
	// example: /api/processed-images/5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b/view
	ImageURL string `json:"imageUrl"`
	// Empty for generated images
	OriginalURL string `json:"originalUrl,omitempty"`
	// example: style-transfer
	Operation string `json:"operation"`
	// example: anime
	Variant string `json:"variant,omitempty"`
	// example: fofr/style-transfer
	Model string `json:"model"`
	// example: 2
	CreditsUsed int `json:"creditsUsed"`
	// example: 8
	CreditsRemaining int `json:"creditsRemaining"`
}

func toolResponse(res *services.Result) ToolResponse {
	resp := ToolResponse{
		Success:          true,
		ImageID:          res.Image.ID.String(),
		ImageURL:         models.ViewURL(res.Image.ID),
		Operation:        string(res.Image.Operation),
		Variant:          res.Image.Variant,
		Model:            res.Image.Model,
		CreditsUsed:      res.CreditsUsed,
		CreditsRemaining: res.CreditsRemaining,
	}
	if res.Image.OriginalKey != nil {
		resp.OriginalURL = models.OriginalURL(res.Image.ID)
	}
	return resp
}

// newUploadToolHandler runs op on the uploaded image; extra fills the
// operation specific fields from the form.
func newUploadToolHandler(processor ImageProcessor, maxUploadBytes int64, op models.Operation, extra func(r *http.Request, req *services.Request)) http.HandlerFunc {
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

		req := services.Request{Operation: op, Upload: upload}
		if extra != nil {
			extra(r, &req)
		}

		res, err := processor.Process(r.Context(), user, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toolResponse(res))
	}
}

// NewRemoveBackgroundHandler removes the background of an uploaded image.
// @Summary Remove background
// @Description Returns a PNG with a transparent background. Costs 1 credit.
// @Tags processing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (jpeg, png or webp)"
// @Success 200 {object} handlers.ToolResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /remove-background [post]
// @Security BearerAuth
func NewRemoveBackgroundHandler(processor ImageProcessor, maxUploadBytes int64) http.HandlerFunc {
	return newUploadToolHandler(processor, maxUploadBytes, models.OperationRemoveBackground, nil)
}

// NewStyleTransferHandler restyles an uploaded image.
// @Summary Style transfer
// @Description Repaints the image in one of the predefined styles. Unknown styles fall back to oil-painting. Costs 2 credits.
// @Tags processing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (jpeg, png or webp)"
// @Param style formData string false "Style" Enums(anime, oil-painting, watercolor, sketch, cyberpunk)
// @Success 200 {object} handlers.ToolResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /style-transfer [post]
// @Security BearerAuth
func NewStyleTransferHandler(processor ImageProcessor, maxUploadBytes int64) http.HandlerFunc {
	return newUploadToolHandler(processor, maxUploadBytes, models.OperationStyleTransfer, func(r *http.Request, req *services.Request) {
		req.Variant = r.FormValue("style")
	})
}

// NewReimagineHandler produces a creative variation of an uploaded image.
// @Summary Reimagine
// @Description Generates a variation of the image guided by an optional prompt. Costs 2 credits.
// @Tags processing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (jpeg, png or webp)"
// @Param prompt formData string false "Guidance prompt"
// @Success 200 {object} handlers.ToolResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /reimagine [post]
// @Security BearerAuth
func NewReimagineHandler(processor ImageProcessor, maxUploadBytes int64) http.HandlerFunc {
	return newUploadToolHandler(processor, maxUploadBytes, models.OperationReimagine, func(r *http.Request, req *services.Request) {
		req.Prompt = r.FormValue("prompt")
	})
}

// RegisterToolHandlers registers the single image tool routes
func RegisterToolHandlers(r chi.Router, removeBackground, styleTransfer, reimagine http.HandlerFunc) {
	r.Post("/remove-background", removeBackground)
	r.Post("/style-transfer", styleTransfer)
	r.Post("/reimagine", reimagine)
}
