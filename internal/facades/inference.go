package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/tidwall/gjson"
)

// ErrDownloadTooLarge is returned when a provider output exceeds the download limit.
var ErrDownloadTooLarge = errors.New("output exceeds maximum download size")

// ProviderError is a non-2xx answer from the inference provider. Its message
// is the provider's own description of the failure.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// InferenceHTTPFacade talks to a Replicate-compatible prediction API.
type InferenceHTTPFacade struct {
	baseURL          string
	token            string
	maxDownloadBytes int64
	client           *http.Client
}

// NewInferenceHTTPFacade creates a facade for the provider at baseURL.
// Request lifetimes are bounded by the caller's context.
func NewInferenceHTTPFacade(baseURL, token string, maxDownloadBytes int64) *InferenceHTTPFacade {
	return &InferenceHTTPFacade{
		baseURL:          strings.TrimRight(baseURL, "/"),
		token:            token,
		maxDownloadBytes: maxDownloadBytes,
		client:           &http.Client{},
	}
}

// CreatePrediction starts a prediction for model with the given input. When
// wait is set the provider is asked to hold the response until the prediction
// finishes, which it may or may not honour.
func (f *InferenceHTTPFacade) CreatePrediction(ctx context.Context, model string, input map[string]any, wait bool) (*models.Prediction, error) {
	body, err := json.Marshal(map[string]any{"input": input})
	if err != nil {
		return nil, fmt.Errorf("marshaling prediction input: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s/predictions", f.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if wait {
		req.Header.Set("Prefer", "wait")
	}

	prediction, err := f.do(req)
	if err != nil {
		logger.Log.Errorw("failed to create prediction", "model", model, "error", err)
		return nil, err
	}

	logger.Log.Infow("prediction created", "model", model, "id", prediction.ID, "status", prediction.Status)
	return prediction, nil
}

// GetPrediction fetches the current state of a prediction.
func (f *InferenceHTTPFacade) GetPrediction(ctx context.Context, id string) (*models.Prediction, error) {
	url := fmt.Sprintf("%s/v1/predictions/%s", f.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating prediction request: %w", err)
	}

	prediction, err := f.do(req)
	if err != nil {
		logger.Log.Errorw("failed to get prediction", "id", id, "error", err)
		return nil, err
	}
	return prediction, nil
}

func (f *InferenceHTTPFacade) do(req *http.Request) (*models.Prediction, error) {
	req.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling inference provider: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(raw, "detail").String()
		if msg == "" {
			msg = gjson.GetBytes(raw, "error").String()
		}
		if msg == "" {
			msg = fmt.Sprintf("inference provider returned status %d", resp.StatusCode)
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	return parsePrediction(raw), nil
}

// parsePrediction reads the fields we need. The output is either a single URL
// or a list of URLs depending on the model; the first one is used.
func parsePrediction(raw []byte) *models.Prediction {
	res := gjson.ParseBytes(raw)

	prediction := &models.Prediction{
		ID:     res.Get("id").String(),
		Status: models.PredictionStatus(res.Get("status").String()),
		Error:  res.Get("error").String(),
	}

	output := res.Get("output")
	switch {
	case output.IsArray():
		if items := output.Array(); len(items) > 0 {
			prediction.OutputURL = items[0].String()
		}
	case output.Type == gjson.String:
		prediction.OutputURL = output.String()
	}

	return prediction
}

// Download fetches a provider output. It returns the body and its content type.
func (f *InferenceHTTPFacade) Download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating download request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("downloading output: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("downloading output: status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxDownloadBytes {
		return nil, "", ErrDownloadTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxDownloadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading output: %w", err)
	}
	if int64(len(data)) > f.maxDownloadBytes {
		return nil, "", ErrDownloadTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
