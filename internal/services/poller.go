package services

//go:generate mockgen -source=poller.go -destination=poller_mock.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

// PredictionGetter reads the state of a remote job.
type PredictionGetter interface {
	GetPrediction(ctx context.Context, id string) (*models.Prediction, error)
}

// JobPoller waits for remote jobs to reach a terminal status.
type JobPoller struct {
	client      PredictionGetter
	interval    time.Duration
	maxAttempts int
}

func NewJobPoller(client PredictionGetter, interval time.Duration, maxAttempts int) *JobPoller {
	return &JobPoller{client: client, interval: interval, maxAttempts: maxAttempts}
}

// Await polls job id once per interval until it is terminal, the attempt
// ceiling is reached or ctx is done. Failed lookups count as attempts.
func (p *JobPoller) Await(ctx context.Context, id string) (*models.Prediction, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		prediction, err := p.client.GetPrediction(ctx, id)
		if err != nil {
			logger.Log.Warnw("prediction poll failed", "id", id, "attempt", attempt, "error", err)
			continue
		}
		if prediction.Status.Terminal() {
			return prediction, nil
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrPollTimeout, p.maxAttempts)
}
