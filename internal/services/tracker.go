package services

//go:generate mockgen -source=tracker.go -destination=tracker_mock.go -package=services

import (
	"context"
	"sync"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

// PredictionAwaiter waits for a remote job to finish.
type PredictionAwaiter interface {
	Await(ctx context.Context, id string) (*models.Prediction, error)
}

// JobDone is called once with the final state of a tracked job.
type JobDone func(ctx context.Context, img *models.ProcessedImage, prediction *models.Prediction, err error)

// JobTracker follows asynchronous jobs in the background until they finish.
type JobTracker struct {
	poller PredictionAwaiter
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewJobTracker(poller PredictionAwaiter) *JobTracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &JobTracker{poller: poller, ctx: ctx, cancel: cancel}
}

// Track starts polling the job of img and calls done when it finishes.
// Cancellation by Shutdown is not reported to done; the job stays pending
// and is picked up again on the next start.
func (t *JobTracker) Track(img *models.ProcessedImage, done JobDone) {
	if img.ProviderJobID == nil {
		return
	}
	jobID := *img.ProviderJobID

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		logger.Log.Infow("tracking job", "image_id", img.ID, "job_id", jobID)
		prediction, err := t.poller.Await(t.ctx, jobID)
		if t.ctx.Err() != nil {
			logger.Log.Infow("job tracking stopped", "image_id", img.ID, "job_id", jobID)
			return
		}
		done(context.WithoutCancel(t.ctx), img, prediction, err)
	}()
}

// Shutdown stops all tracking and waits for running callbacks.
func (t *JobTracker) Shutdown() {
	t.cancel()
	t.wg.Wait()
}
