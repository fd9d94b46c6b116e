package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotaError(t *testing.T) {
	err := fmt.Errorf("upscale: %w", &QuotaError{Required: 2, Available: 0})

	assert.ErrorIs(t, err, ErrInsufficientCredits)

	var qe *QuotaError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, 2, qe.Required)
	assert.Equal(t, 0, qe.Available)
}

func TestProcessingError(t *testing.T) {
	cause := errors.New("Model overloaded")
	err := &ProcessingError{Err: cause}

	assert.Equal(t, "Model overloaded", err.Error())
	assert.ErrorIs(t, err, cause)
}
