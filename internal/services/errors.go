package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrUserNotFound        = errors.New("User not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrFeatureRequiresPro  = errors.New("this feature requires a Pro plan")
	ErrImageRequired       = errors.New("No image provided")
	ErrImageNotFound       = errors.New("image not found")
	ErrPollTimeout         = errors.New("generation timed out")
	ErrAPIKeyNotFound      = errors.New("API key not found")
	ErrWebhookNotFound     = errors.New("webhook not found")
	ErrInvalidWebhookEvent = errors.New("unknown webhook event")
)

// QuotaError reports a balance too low for the requested operation.
type QuotaError struct {
	Required  int
	Available int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d", e.Required, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientCredits) match any QuotaError.
func (e *QuotaError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// ProcessingError wraps a failure that happened after the credit check.
// Its message is the message of the cause, unchanged.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// ImageTooLargeError reports a source image over the local pixel budget.
type ImageTooLargeError struct {
	MaxMegapixels int
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("Image too large: maximum %d megapixels", e.MaxMegapixels)
}
