package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var processedImageRowColumns = []string{
	"id", "user_id", "operation", "variant", "model", "scale", "cost", "status", "provider_job_id",
	"original_key", "result_key", "content_type", "width", "height", "processing_time_ms", "error",
	"created_at", "completed_at",
}

func TestProcessedImageRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProcessedImageRepository(db)

	originalKey := "originals/x"
	img := &models.ProcessedImage{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Operation:   models.OperationUpscale,
		Variant:     models.ImageTypeGeneral,
		Model:       "nightmareai/real-esrgan",
		Scale:       2,
		Cost:        2,
		Status:      models.ImageStatusProcessing,
		OriginalKey: &originalKey,
		ContentType: "image/jpeg",
	}

	mock.ExpectExec(`INSERT INTO processed_images`).
		WithArgs(img.ID, img.UserID, "upscale", "general", img.Model, 2, 2, "processing",
			nil, originalKey, "image/jpeg").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), img))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessedImageRepository_MarkCompleted(t *testing.T) {
	resultKey := "processed/x"
	img := &models.ProcessedImage{
		ID:               uuid.New(),
		ResultKey:        &resultKey,
		ContentType:      "image/png",
		Width:            2048,
		Height:           1536,
		ProcessingTimeMs: 1200,
	}

	t.Run("processing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`SET status = 'completed'(.+)WHERE id = \$1 AND status = 'processing'`).
			WithArgs(img.ID, resultKey, "image/png", 2048, 1536, int64(1200)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewProcessedImageRepository(db).MarkCompleted(context.Background(), img))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("terminal row is not updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`SET status = 'completed'`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewProcessedImageRepository(db).MarkCompleted(context.Background(), img)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestProcessedImageRepository_MarkFailed(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec(`SET status = 'failed', error = \$2`).
		WithArgs(id, "Model overloaded").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewProcessedImageRepository(db).MarkFailed(context.Background(), id, "Model overloaded"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessedImageRepository_AttachJob(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec(`SET provider_job_id = \$2`).
		WithArgs(id, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewProcessedImageRepository(db).AttachJob(context.Background(), id, "job-1"))
}

func TestProcessedImageRepository_GetByID(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM processed_images WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(processedImageRowColumns).AddRow(
				id.String(), userID.String(), "ai-video", "5s", "kwaivgi/kling-v1.6-standard", 0, 10, "processing",
				"job-1", nil, nil, "", 0, 0, 0, nil, now, nil))

		img, err := NewProcessedImageRepository(db).GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, models.OperationAIVideo, img.Operation)
		assert.Equal(t, models.ImageStatusProcessing, img.Status)
		require.NotNil(t, img.ProviderJobID)
		assert.Equal(t, "job-1", *img.ProviderJobID)
		assert.False(t, img.IsTerminal())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM processed_images`).
			WillReturnRows(sqlmock.NewRows(processedImageRowColumns))

		img, err := NewProcessedImageRepository(db).GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, img)
	})
}

func TestProcessedImageRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(userID, 20, 0).
		WillReturnRows(sqlmock.NewRows(processedImageRowColumns).
			AddRow(uuid.NewString(), userID.String(), "upscale", "general", "m", 2, 2, "completed",
				nil, "originals/a", "processed/a", "image/png", 10, 10, 5, nil, now, now).
			AddRow(uuid.NewString(), userID.String(), "remove-background", "", "m", 0, 1, "failed",
				nil, "originals/b", nil, "", 0, 0, 0, "boom", now, now))

	images, err := NewProcessedImageRepository(db).ListByUser(context.Background(), userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.True(t, images[0].IsTerminal())
	require.NotNil(t, images[1].Error)
	assert.Equal(t, "boom", *images[1].Error)
}

func TestProcessedImageRepository_ListPendingJobs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`WHERE status = 'processing' AND provider_job_id IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows(processedImageRowColumns))

	images, err := NewProcessedImageRepository(db).ListPendingJobs(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, images)
}

func TestProcessedImageRepository_TerminalRowsImmutable(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewProcessedImageRepository(db)
	userID := insertUser(t, db, 10)
	img := &models.ProcessedImage{
		ID:        uuid.New(),
		UserID:    userID,
		Operation: models.OperationRemoveBackground,
		Model:     "851-labs/background-remover",
		Cost:      1,
		Status:    models.ImageStatusProcessing,
	}
	require.NoError(t, repo.Create(context.Background(), img))
	require.NoError(t, repo.MarkFailed(context.Background(), img.ID, "first"))

	resultKey := "processed/late"
	img.ResultKey = &resultKey
	assert.ErrorIs(t, repo.MarkCompleted(context.Background(), img), sql.ErrNoRows)
	assert.ErrorIs(t, repo.MarkFailed(context.Background(), img.ID, "second"), sql.ErrNoRows)

	stored, err := repo.GetByID(context.Background(), img.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ImageStatusFailed, stored.Status)
	require.NotNil(t, stored.Error)
	assert.Equal(t, "first", *stored.Error)
	assert.Nil(t, stored.ResultKey)
}
