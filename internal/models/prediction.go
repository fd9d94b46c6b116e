package models

// PredictionStatus is the status reported by the inference provider.
type PredictionStatus string

// Provider statuses
const (
	PredictionStarting   PredictionStatus = "starting"
	PredictionProcessing PredictionStatus = "processing"
	PredictionSucceeded  PredictionStatus = "succeeded"
	PredictionFailed     PredictionStatus = "failed"
	PredictionCanceled   PredictionStatus = "canceled"
)

// Terminal reports whether the provider has finished with the job.
func (s PredictionStatus) Terminal() bool {
	return s == PredictionSucceeded || s == PredictionFailed || s == PredictionCanceled
}

// Prediction is a remote inference job.
type Prediction struct {
	ID        string           // Provider job id
	Status    PredictionStatus // Current status
	OutputURL string           // First output URL once succeeded
	Error     string           // Provider error message once failed
}
