package facades

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Headers set on every webhook delivery
const (
	HeaderEvent     = "X-Pixelift-Event"
	HeaderSignature = "X-Pixelift-Signature"
)

// WebhookHTTPFacade delivers signed JSON payloads to webhook endpoints.
type WebhookHTTPFacade struct {
	client *http.Client
}

// NewWebhookHTTPFacade creates a sender whose deliveries time out after timeout.
func NewWebhookHTTPFacade(timeout time.Duration) *WebhookHTTPFacade {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookHTTPFacade{client: &http.Client{Timeout: timeout}}
}

// Send posts body to url and returns the response status code. Any status
// outside 2xx is an error; the code is still returned for logging.
func (f *WebhookHTTPFacade) Send(ctx context.Context, url, event, secret string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEvent, event)
	req.Header.Set(HeaderSignature, Sign(secret, body))

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("webhook request failed with status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// Sign returns the hex HMAC-SHA256 of body keyed with secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
