package handlers

//go:generate mockgen -source=generate.go -destination=generate_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// ImageLookup returns one of the caller's processed images.
type ImageLookup interface {
	GetImage(ctx context.Context, userID, id uuid.UUID) (*models.ProcessedImage, error)
}

// AIImageRequest represents the JSON body for image generation
// swagger:model AIImageRequest
type AIImageRequest struct {
	// Text prompt
	// required: true
	// example: a lighthouse at dusk, volumetric light
	Prompt string `json:"prompt" validate:"required,max=1000"`
	// Aspect ratio, defaults to 1:1
	// example: 16:9
	AspectRatio string `json:"aspectRatio"`
}

// AIVideoRequest represents the JSON body for video generation
// swagger:model AIVideoRequest
type AIVideoRequest struct {
	// Text prompt
	// required: true
	// example: waves rolling onto a beach at sunset
	Prompt string `json:"prompt" validate:"required,max=1000"`
	// Duration in seconds, 5 or 10
	// example: 5
	Duration int `json:"duration"`
}

// VideoJobResponse is returned when a video job is accepted
// swagger:model VideoJobResponse
type VideoJobResponse struct {
	// example: true
	Success bool `json:"success"`
	// example: 5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b
	JobID string `json:"jobId"`
	// example: processing
	Status string `json:"status"`
	// example: /api/ai-video/status/5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b
	StatusURL string `json:"statusUrl"`
	// Debited when the video is ready
	// example: 10
	CreditsRequired int `json:"creditsRequired"`
}

// VideoStatusResponse reports the state of a video job
// swagger:model VideoStatusResponse
type VideoStatusResponse struct {
	// example: 5b0c2f8e-3f57-4d7f-9b8c-7c0f1d2e3a4b
	JobID string `json:"jobId"`
	// example: completed
	Status string `json:"status"`
	// Set once completed
	VideoURL string `json:"videoUrl,omitempty"`
	// Set once failed
	Error string `json:"error,omitempty"`
	// example: 10
	CreditsUsed int `json:"creditsUsed"`
}

func videoStatusURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/ai-video/status/%s", id)
}

// NewAIImageHandler generates an image from a prompt.
// @Summary Generate an image
// @Description Generates an image from a text prompt. Costs 2 credits.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body handlers.AIImageRequest true "Generation request"
// @Success 200 {object} handlers.ToolResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /ai-image/generate [post]
// @Security BearerAuth
func NewAIImageHandler(processor ImageProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var body AIImageRequest
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(w, err)
			return
		}

		res, err := processor.Process(r.Context(), user, services.Request{
			Operation:   models.OperationAIImage,
			Prompt:      body.Prompt,
			AspectRatio: body.AspectRatio,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toolResponse(res))
	}
}

// NewAIVideoHandler starts a video generation job.
// @Summary Generate a video
// @Description Starts an asynchronous video job. Pro plans only. Costs 10 credits for 5s and 20 for 10s, debited on completion.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body handlers.AIVideoRequest true "Generation request"
// @Success 202 {object} handlers.VideoJobResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientCreditsResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ProcessingErrorResponse
// @Router /ai-video/generate [post]
// @Security BearerAuth
func NewAIVideoHandler(processor ImageProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var body AIVideoRequest
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(w, err)
			return
		}

		res, err := processor.Submit(r.Context(), user, services.Request{
			Operation: models.OperationAIVideo,
			Variant:   services.VideoVariant(body.Duration),
			Prompt:    body.Prompt,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, VideoJobResponse{
			Success:         true,
			JobID:           res.Image.ID.String(),
			Status:          string(res.Image.Status),
			StatusURL:       videoStatusURL(res.Image.ID),
			CreditsRequired: res.Image.Cost,
		})
	}
}

// NewAIVideoStatusHandler reports the state of a video job.
// @Summary Video job status
// @Tags generation
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} handlers.VideoStatusResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ai-video/status/{id} [get]
// @Security BearerAuth
func NewAIVideoStatusHandler(images ImageLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, msgImageNotFound)
			return
		}

		img, err := images.GetImage(r.Context(), user.ID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if img.Operation != models.OperationAIVideo {
			writeError(w, http.StatusNotFound, msgImageNotFound)
			return
		}

		resp := VideoStatusResponse{JobID: img.ID.String(), Status: string(img.Status)}
		switch img.Status {
		case models.ImageStatusCompleted:
			resp.VideoURL = models.ViewURL(img.ID)
			resp.CreditsUsed = img.Cost
		case models.ImageStatusFailed:
			if img.Error != nil {
				resp.Error = *img.Error
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGenerateHandlers registers the generation routes
func RegisterGenerateHandlers(r chi.Router, image, video http.HandlerFunc) {
	r.Post("/ai-image/generate", image)
	r.Post("/ai-video/generate", video)
}

// RegisterVideoStatusHandler registers the video job status route
func RegisterVideoStatusHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/ai-video/status/{id}", h)
}
