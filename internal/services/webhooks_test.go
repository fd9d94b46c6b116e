package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockWebhookStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, wh *models.Webhook) error {
		assert.Equal(t, "https://hooks.example.com", wh.URL)
		assert.Equal(t, pq.StringArray{models.EventImageCompleted}, wh.Events)
		return nil
	})

	svc := NewWebhookService(store, NewMockWebhookSender(ctrl), time.Second)
	wh, err := svc.Create(context.Background(), WebhookInput{URL: "https://hooks.example.com", Events: []string{models.EventImageCompleted}, Active: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(wh.Secret, "whsec_"))
	assert.Len(t, wh.Secret, len("whsec_")+48)
	assert.True(t, wh.Active)
}

func TestWebhookService_Create_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewWebhookService(NewMockWebhookStore(ctrl), NewMockWebhookSender(ctrl), time.Second)
	_, err := svc.Create(context.Background(), WebhookInput{URL: "https://x", Events: []string{"image.deleted"}})
	assert.ErrorIs(t, err, ErrInvalidWebhookEvent)
}

func TestWebhookService_UpdateDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockWebhookStore(ctrl)
	id := uuid.New()
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
	store.EXPECT().Delete(gomock.Any(), id).Return(sql.ErrNoRows)

	svc := NewWebhookService(store, NewMockWebhookSender(ctrl), time.Second)

	_, err := svc.Update(context.Background(), id, WebhookInput{URL: "https://x"})
	assert.ErrorIs(t, err, ErrWebhookNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrWebhookNotFound)
}

func TestWebhookService_Logs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockWebhookStore(ctrl)
	id := uuid.New()
	store.EXPECT().GetByID(gomock.Any(), id).Return(&models.Webhook{ID: id}, nil)
	store.EXPECT().ListLogs(gomock.Any(), id, 50).Return([]models.WebhookLog{{WebhookID: id}}, nil)

	logs, err := NewWebhookService(store, NewMockWebhookSender(ctrl), time.Second).Logs(context.Background(), id, 50)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestWebhookService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockWebhookStore(ctrl)
	sender := NewMockWebhookSender(ctrl)
	ok := models.Webhook{ID: uuid.New(), URL: "https://ok.example.com", Secret: "a"}
	bad := models.Webhook{ID: uuid.New(), URL: "https://bad.example.com", Secret: "b"}
	evt := models.UsageEvent{Event: models.EventImageFailed, ImageID: "img-1"}

	store.EXPECT().ListActiveByEvent(gomock.Any(), models.EventImageFailed).Return([]models.Webhook{ok, bad}, nil)
	sender.EXPECT().Send(gomock.Any(), ok.URL, models.EventImageFailed, "a", gomock.Any()).Return(200, nil)
	sender.EXPECT().Send(gomock.Any(), bad.URL, models.EventImageFailed, "b", gomock.Any()).Return(500, errors.New("webhook request failed with status 500"))
	store.EXPECT().AppendLog(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, entry *models.WebhookLog) error {
		assert.Equal(t, ok.ID, entry.WebhookID)
		assert.True(t, entry.Success)
		assert.Nil(t, entry.Error)
		return nil
	})
	store.EXPECT().AppendLog(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, entry *models.WebhookLog) error {
		assert.Equal(t, bad.ID, entry.WebhookID)
		assert.False(t, entry.Success)
		assert.Equal(t, 500, entry.StatusCode)
		assert.NotNil(t, entry.Error)
		return nil
	})

	svc := NewWebhookService(store, sender, time.Second)
	svc.Dispatch(evt)
	svc.Wait()
}

func TestWebhookService_Dispatch_NoSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockWebhookStore(ctrl)
	store.EXPECT().ListActiveByEvent(gomock.Any(), models.EventCreditsDepleted).Return(nil, nil)

	svc := NewWebhookService(store, NewMockWebhookSender(ctrl), time.Second)
	svc.Dispatch(models.UsageEvent{Event: models.EventCreditsDepleted})
	svc.Wait()
}
