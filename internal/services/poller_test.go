package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPoller_Await(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockPredictionGetter(ctrl)
	gomock.InOrder(
		client.EXPECT().GetPrediction(gomock.Any(), "p1").Return(&models.Prediction{ID: "p1", Status: models.PredictionProcessing}, nil),
		client.EXPECT().GetPrediction(gomock.Any(), "p1").Return(nil, errors.New("connection reset")),
		client.EXPECT().GetPrediction(gomock.Any(), "p1").Return(&models.Prediction{ID: "p1", Status: models.PredictionSucceeded, OutputURL: "https://x/out.mp4"}, nil),
	)

	p, err := NewJobPoller(client, time.Millisecond, 5).Await(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://x/out.mp4", p.OutputURL)
}

func TestJobPoller_Await_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockPredictionGetter(ctrl)
	client.EXPECT().GetPrediction(gomock.Any(), "p1").
		Return(&models.Prediction{ID: "p1", Status: models.PredictionStarting}, nil).
		Times(3)

	_, err := NewJobPoller(client, time.Millisecond, 3).Await(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.EqualError(t, err, "generation timed out after 3 attempts")
}

func TestJobPoller_Await_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockPredictionGetter(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJobPoller(client, time.Hour, 3).Await(ctx, "p1")
	assert.ErrorIs(t, err, context.Canceled)
}
