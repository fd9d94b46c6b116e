package services

//go:generate mockgen -source=processing.go -destination=processing_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/facades"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

// ImageStore persists processed image records.
type ImageStore interface {
	Create(ctx context.Context, img *models.ProcessedImage) error
	AttachJob(ctx context.Context, id uuid.UUID, jobID string) error
	MarkCompleted(ctx context.Context, img *models.ProcessedImage) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProcessedImage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProcessedImage, error)
	ListPendingJobs(ctx context.Context) ([]models.ProcessedImage, error)
}

// CreditWriter changes the credit balance and usage markers of a user.
type CreditWriter interface {
	DebitCredits(ctx context.Context, userID uuid.UUID, cost int) (int, error)
	MarkFirstUpload(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ObjectStorage keeps image bytes.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, string, error)
}

// InferenceClient starts remote predictions and downloads their output.
type InferenceClient interface {
	CreatePrediction(ctx context.Context, model string, input map[string]any, wait bool) (*models.Prediction, error)
	Download(ctx context.Context, url string) ([]byte, string, error)
}

// Transactor runs fn in a single database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImageTransformer runs local image transforms.
type ImageTransformer interface {
	Upscale(data []byte, contentType string, scale int) (*TransformResult, error)
}

// UsagePublisher publishes usage events.
type UsagePublisher interface {
	Publish(ctx context.Context, evt models.UsageEvent)
}

// CreditNotifier sends credit related emails.
type CreditNotifier interface {
	FirstUpload(user *models.User, balance int)
	CreditsDepleted(user *models.User)
	AfterDebit(user *models.User, balance, cost int)
}

// JobStarter tracks asynchronous jobs in the background.
type JobStarter interface {
	Track(img *models.ProcessedImage, done JobDone)
}

// ProcessingDeps are the collaborators of ProcessingService.
type ProcessingDeps struct {
	Registry    *Registry
	Users       UserReader
	Credits     CreditWriter
	Images      ImageStore
	Storage     ObjectStorage
	Inference   InferenceClient
	Poller      PredictionAwaiter
	Transformer ImageTransformer
	Tx          Transactor
	Notifier    CreditNotifier
	Publisher   UsagePublisher
	Tracker     JobStarter
	SyncTimeout time.Duration
}

// Result is the outcome of a processing request.
type Result struct {
	Image            *models.ProcessedImage
	CreditsUsed      int
	CreditsRemaining int
}

// ProcessingService runs the credit metered processing pipeline.
type ProcessingService struct {
	ProcessingDeps
}

func NewProcessingService(deps ProcessingDeps) *ProcessingService {
	return &ProcessingService{ProcessingDeps: deps}
}

// Process runs a local or synchronous remote operation and debits its cost
// once the result is stored.
func (s *ProcessingService) Process(ctx context.Context, user *models.User, req Request) (*Result, error) {
	strategy, cost, err := s.admit(ctx, user, req)
	if err != nil {
		return nil, err
	}
	if strategy.Kind == KindRemoteAsync {
		return nil, fmt.Errorf("%s runs asynchronously", strategy.Operation)
	}
	if strategy.Kind == KindLocal {
		if err := checkPixelBudget(req.Upload.Data); err != nil {
			return nil, err
		}
	}

	img := newRecord(user, strategy, req, cost)

	if req.Upload != nil {
		key := models.OriginalStorageKey(img.ID)
		if err := s.Storage.Put(ctx, key, req.Upload.ContentType, req.Upload.Data); err != nil {
			logger.Log.Errorw("failed to store original", "image_id", img.ID, "error", err)
			return nil, &ProcessingError{Err: err}
		}
		img.OriginalKey = &key
	}

	if err := s.Images.Create(ctx, img); err != nil {
		logger.Log.Errorw("failed to create processing record", "image_id", img.ID, "error", err)
		return nil, &ProcessingError{Err: err}
	}

	out, err := s.run(ctx, strategy, req)
	if err != nil {
		logger.Log.Errorw("processing failed", "image_id", img.ID, "operation", img.Operation, "model", img.Model, "error", err)
		s.fail(ctx, img, err)
		return nil, &ProcessingError{Err: err}
	}

	balance, err := s.complete(ctx, user, img, out)
	if err != nil {
		return nil, err
	}

	return &Result{Image: img, CreditsUsed: cost, CreditsRemaining: balance}, nil
}

// Submit starts an asynchronous operation. The cost is debited when the job
// completes, so the returned result reports nothing used yet.
func (s *ProcessingService) Submit(ctx context.Context, user *models.User, req Request) (*Result, error) {
	strategy, cost, err := s.admit(ctx, user, req)
	if err != nil {
		return nil, err
	}
	if strategy.Kind != KindRemoteAsync {
		return nil, fmt.Errorf("%s runs synchronously", strategy.Operation)
	}

	img := newRecord(user, strategy, req, cost)
	if err := s.Images.Create(ctx, img); err != nil {
		logger.Log.Errorw("failed to create processing record", "image_id", img.ID, "error", err)
		return nil, &ProcessingError{Err: err}
	}

	prediction, err := s.Inference.CreatePrediction(ctx, strategy.Model, strategy.Input(req), false)
	if err != nil {
		s.fail(ctx, img, err)
		return nil, &ProcessingError{Err: err}
	}

	if err := s.Images.AttachJob(ctx, img.ID, prediction.ID); err != nil {
		s.fail(ctx, img, err)
		return nil, &ProcessingError{Err: err}
	}
	img.ProviderJobID = &prediction.ID

	s.Tracker.Track(img, s.finishJob)
	logger.Log.Infow("job submitted", "image_id", img.ID, "job_id", prediction.ID, "model", strategy.Model)

	return &Result{Image: img, CreditsUsed: 0, CreditsRemaining: user.Credits}, nil
}

// ResumeJobs hands every pending asynchronous job back to the tracker.
func (s *ProcessingService) ResumeJobs(ctx context.Context) (int, error) {
	jobs, err := s.Images.ListPendingJobs(ctx)
	if err != nil {
		return 0, err
	}
	for i := range jobs {
		s.Tracker.Track(&jobs[i], s.finishJob)
	}
	return len(jobs), nil
}

// admit resolves the strategy and checks tier, input and balance.
func (s *ProcessingService) admit(ctx context.Context, user *models.User, req Request) (Strategy, int, error) {
	strategy, err := s.Registry.Resolve(req.Operation, req.Variant)
	if err != nil {
		return Strategy{}, 0, err
	}
	if strategy.ProOnly && !user.HasPro() {
		return Strategy{}, 0, ErrFeatureRequiresPro
	}
	if strategy.RequiresImage && req.Upload == nil {
		return Strategy{}, 0, ErrImageRequired
	}

	cost := strategy.Cost(req.Scale)
	if user.Credits < cost {
		if user.Credits == 0 {
			s.Notifier.CreditsDepleted(user)
			s.publishDepleted(ctx, user)
		}
		return Strategy{}, 0, &QuotaError{Required: cost, Available: user.Credits}
	}

	return strategy, cost, nil
}

func newRecord(user *models.User, strategy Strategy, req Request, cost int) *models.ProcessedImage {
	img := &models.ProcessedImage{
		ID:        uuid.New(),
		UserID:    user.ID,
		Operation: strategy.Operation,
		Variant:   strategy.Variant,
		Model:     strategy.Model,
		Cost:      cost,
		Status:    models.ImageStatusProcessing,
		CreatedAt: time.Now(),
	}
	if strategy.Operation == models.OperationUpscale {
		img.Scale = req.Scale
	}
	if req.Upload != nil {
		img.ContentType = req.Upload.ContentType
	}
	return img
}

func (s *ProcessingService) run(ctx context.Context, strategy Strategy, req Request) (*TransformResult, error) {
	if strategy.Kind == KindLocal {
		return s.Transformer.Upscale(req.Upload.Data, req.Upload.ContentType, req.Scale)
	}

	ctx, cancel := context.WithTimeout(ctx, s.SyncTimeout)
	defer cancel()

	prediction, err := s.Inference.CreatePrediction(ctx, strategy.Model, strategy.Input(req), true)
	if err != nil {
		return nil, err
	}

	if !prediction.Status.Terminal() {
		prediction, err = s.Poller.Await(ctx, prediction.ID)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrPollTimeout, s.SyncTimeout)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.fetchOutput(ctx, prediction)
}

func (s *ProcessingService) fetchOutput(ctx context.Context, prediction *models.Prediction) (*TransformResult, error) {
	switch {
	case prediction.Status == models.PredictionFailed && prediction.Error != "":
		return nil, errors.New(prediction.Error)
	case prediction.Status != models.PredictionSucceeded:
		return nil, fmt.Errorf("prediction %s", prediction.Status)
	case prediction.OutputURL == "":
		return nil, errors.New("provider returned no output")
	}

	data, contentType, err := s.Inference.Download(ctx, prediction.OutputURL)
	if err != nil {
		return nil, err
	}

	width, height := imageSize(data)
	return &TransformResult{Data: data, ContentType: contentType, Width: width, Height: height}, nil
}

// complete stores the result, then debits and completes the record in one
// transaction. It returns the balance after the debit.
func (s *ProcessingService) complete(ctx context.Context, user *models.User, img *models.ProcessedImage, out *TransformResult) (int, error) {
	resultKey := models.ResultStorageKey(img.ID)
	if err := s.Storage.Put(ctx, resultKey, out.ContentType, out.Data); err != nil {
		logger.Log.Errorw("failed to store result", "image_id", img.ID, "error", err)
		s.fail(ctx, img, err)
		return 0, &ProcessingError{Err: err}
	}

	img.ResultKey = &resultKey
	img.ContentType = out.ContentType
	img.Width = out.Width
	img.Height = out.Height
	img.ProcessingTimeMs = time.Since(img.CreatedAt).Milliseconds()

	var balance int
	err := s.Tx.WithTx(ctx, func(ctx context.Context) error {
		b, err := s.Credits.DebitCredits(ctx, img.UserID, img.Cost)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientCredits
		}
		if err != nil {
			return err
		}
		balance = b
		return s.Images.MarkCompleted(ctx, img)
	})
	if errors.Is(err, ErrInsufficientCredits) {
		logger.Log.Warnw("balance changed during processing", "image_id", img.ID, "user_id", img.UserID, "cost", img.Cost)
		s.fail(ctx, img, err)
		return 0, &QuotaError{Required: img.Cost, Available: s.currentBalance(ctx, img.UserID)}
	}
	if err != nil {
		logger.Log.Errorw("failed to debit and complete", "image_id", img.ID, "error", err)
		s.fail(ctx, img, err)
		return 0, &ProcessingError{Err: err}
	}

	now := time.Now()
	img.Status = models.ImageStatusCompleted
	img.CompletedAt = &now
	logger.Log.Infow("processing completed", "image_id", img.ID, "operation", img.Operation, "cost", img.Cost, "balance", balance)

	s.afterSuccess(ctx, user, img, balance)
	return balance, nil
}

func (s *ProcessingService) afterSuccess(ctx context.Context, user *models.User, img *models.ProcessedImage, balance int) {
	if img.OriginalKey != nil {
		first, err := s.Credits.MarkFirstUpload(context.WithoutCancel(ctx), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to mark first upload", "user_id", user.ID, "error", err)
		} else if first {
			s.Notifier.FirstUpload(user, balance)
		}
	}

	s.Notifier.AfterDebit(user, balance, img.Cost)
	s.publish(ctx, img)
	if img.Cost > 0 && balance == 0 {
		s.publishDepleted(ctx, user)
	}
}

// fail marks the record failed. It runs even when ctx is already cancelled.
func (s *ProcessingService) fail(ctx context.Context, img *models.ProcessedImage, cause error) {
	ctx = context.WithoutCancel(ctx)
	reason := cause.Error()

	if err := s.Images.MarkFailed(ctx, img.ID, reason); err != nil {
		logger.Log.Errorw("failed to mark image failed", "image_id", img.ID, "error", err)
	}

	now := time.Now()
	img.Status = models.ImageStatusFailed
	img.Error = &reason
	img.CompletedAt = &now
	s.publish(ctx, img)
}

func (s *ProcessingService) finishJob(ctx context.Context, img *models.ProcessedImage, prediction *models.Prediction, err error) {
	if err != nil {
		logger.Log.Warnw("job did not finish", "image_id", img.ID, "error", err)
		s.fail(ctx, img, err)
		return
	}

	out, err := s.fetchOutput(ctx, prediction)
	if err != nil {
		s.fail(ctx, img, err)
		return
	}

	user, err := s.Users.GetByID(ctx, img.UserID)
	if err == nil && user == nil {
		err = ErrUserNotFound
	}
	if err != nil {
		s.fail(ctx, img, err)
		return
	}

	if _, err := s.complete(ctx, user, img, out); err != nil {
		logger.Log.Warnw("job could not be completed", "image_id", img.ID, "error", err)
	}
}

func (s *ProcessingService) currentBalance(ctx context.Context, userID uuid.UUID) int {
	user, err := s.Users.GetByID(context.WithoutCancel(ctx), userID)
	if err != nil || user == nil {
		return 0
	}
	return user.Credits
}

func (s *ProcessingService) publish(ctx context.Context, img *models.ProcessedImage) {
	evt := models.UsageEvent{
		Event:     models.EventImageCompleted,
		ImageID:   img.ID.String(),
		UserID:    img.UserID.String(),
		Operation: string(img.Operation),
		Variant:   img.Variant,
		Model:     img.Model,
		Cost:      img.Cost,
		Status:    string(img.Status),
		Timestamp: time.Now().Unix(),
	}
	if img.Status == models.ImageStatusFailed {
		evt.Event = models.EventImageFailed
		evt.Cost = 0
		if img.Error != nil {
			evt.Error = *img.Error
		}
	}
	s.Publisher.Publish(ctx, evt)
}

func (s *ProcessingService) publishDepleted(ctx context.Context, user *models.User) {
	s.Publisher.Publish(ctx, models.UsageEvent{
		Event:     models.EventCreditsDepleted,
		UserID:    user.ID.String(),
		Timestamp: time.Now().Unix(),
	})
}

// GetImage returns one of the user's records.
func (s *ProcessingService) GetImage(ctx context.Context, userID, id uuid.UUID) (*models.ProcessedImage, error) {
	img, err := s.Images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil || img.UserID != userID {
		return nil, ErrImageNotFound
	}
	return img, nil
}

// ListImages returns the user's history, newest first.
func (s *ProcessingService) ListImages(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProcessedImage, error) {
	return s.Images.ListByUser(ctx, userID, limit, offset)
}

// OpenImage returns the stored result, or the uploaded original, of a record.
func (s *ProcessingService) OpenImage(ctx context.Context, id uuid.UUID, original bool) ([]byte, string, error) {
	img, err := s.Images.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if img == nil {
		return nil, "", ErrImageNotFound
	}

	key := img.ResultKey
	if original {
		key = img.OriginalKey
	}
	if key == nil {
		return nil, "", ErrImageNotFound
	}

	data, contentType, err := s.Storage.Get(ctx, *key)
	if errors.Is(err, facades.ErrObjectNotFound) {
		return nil, "", ErrImageNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if contentType == "" && !original {
		contentType = img.ContentType
	}
	return data, contentType, nil
}
