package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/middlewares"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// ErrorResponse is the body of every error reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: No image provided
	Error string `json:"error"`
}

// InsufficientCreditsResponse is returned with 402
// swagger:model InsufficientCreditsResponse
type InsufficientCreditsResponse struct {
	// example: Insufficient credits
	Error string `json:"error"`
	// Credits the operation costs
	// example: 2
	Required int `json:"required"`
	// Credits on the account
	// example: 0
	Available int `json:"available"`
}

// ProcessingErrorResponse is returned when processing fails after admission
// swagger:model ProcessingErrorResponse
type ProcessingErrorResponse struct {
	// example: Failed to process image
	Error string `json:"error"`
	// Cause reported by the processing step
	// example: model crashed
	Details string `json:"details"`
}

const (
	msgInternal          = "Internal server error"
	msgProcessingFailed  = "Failed to process image"
	msgInsufficient      = "Insufficient credits"
	msgRequiresPro       = "This feature requires a Pro subscription"
	msgImageNotFound     = "Image not found"
	msgAuthRequired      = "Authentication required"
	msgInvalidRequestFmt = "Invalid request: %s"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP replies.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		quota    *services.QuotaError
		procErr  *services.ProcessingError
		invalid  *validationError
		tooLarge *services.ImageTooLargeError
	)

	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.msg)
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusBadRequest, tooLarge.Error())
	case errors.As(err, &quota):
		writeJSON(w, http.StatusPaymentRequired, InsufficientCreditsResponse{
			Error:     msgInsufficient,
			Required:  quota.Required,
			Available: quota.Available,
		})
	case errors.Is(err, services.ErrImageRequired):
		writeError(w, http.StatusBadRequest, services.ErrImageRequired.Error())
	case errors.Is(err, services.ErrFeatureRequiresPro):
		writeError(w, http.StatusForbidden, msgRequiresPro)
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, services.ErrUserNotFound.Error())
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, msgImageNotFound)
	case errors.As(err, &procErr):
		writeJSON(w, http.StatusInternalServerError, ProcessingErrorResponse{Error: msgProcessingFailed, Details: procErr.Error()})
	default:
		logger.Log.Errorw("unhandled service error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// validationError is a client input problem whose message is returned as is.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// currentUser returns the user put in the context by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgAuthRequired)
	}
	return user, ok
}

// maxJSONBodyBytes caps JSON request bodies. Prompts and webhook settings fit easily.
const maxJSONBodyBytes = 64 << 10

// decodeJSON decodes and validates a JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return invalidf(msgInvalidRequestFmt, fmt.Sprintf("body exceeds %dKB", maxJSONBodyBytes>>10))
		}
		return invalidf(msgInvalidRequestFmt, "malformed JSON body")
	}
	if err := validate.Struct(v); err != nil {
		return invalidf(msgInvalidRequestFmt, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "url", "http_url":
			parts = append(parts, field+" must be a valid URL")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}
