package services

//go:generate mockgen -source=apikeys.go -destination=apikeys_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Hex lengths of the two random parts of an API key.
const (
	apiKeyPrefixLen = 8
	apiKeySecretLen = 32
)

// APIKeyStore persists API keys.
type APIKeyStore interface {
	Create(ctx context.Context, key *models.APIKey) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error)
	Revoke(ctx context.Context, userID, keyID uuid.UUID) error
}

// CreatedAPIKey carries the plaintext key, which is only available at creation.
type CreatedAPIKey struct {
	ID     uuid.UUID
	Name   string
	Prefix string
	Key    string
}

// APIKeyService issues and revokes API keys.
type APIKeyService struct {
	store APIKeyStore
}

func NewAPIKeyService(store APIKeyStore) *APIKeyService {
	return &APIKeyService{store: store}
}

// Create generates a new key for the user and stores its bcrypt hash.
func (svc *APIKeyService) Create(ctx context.Context, userID uuid.UUID, name string) (*CreatedAPIKey, error) {
	prefix, err := randomHex(apiKeyPrefixLen / 2)
	if err != nil {
		return nil, err
	}
	secret, err := randomHex(apiKeySecretLen / 2)
	if err != nil {
		return nil, err
	}
	plain := models.APIKeyPrefix + prefix + "_" + secret

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash api key", "err", err)
		return nil, err
	}

	key := &models.APIKey{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    name,
		Prefix:  prefix,
		KeyHash: string(hash),
	}
	if err := svc.store.Create(ctx, key); err != nil {
		logger.Log.Errorw("failed to save api key", "userID", userID, "err", err)
		return nil, err
	}

	return &CreatedAPIKey{ID: key.ID, Name: name, Prefix: prefix, Key: plain}, nil
}

// List returns the user's keys without their hashes.
func (svc *APIKeyService) List(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error) {
	return svc.store.ListByUser(ctx, userID)
}

// Revoke disables one of the user's keys.
func (svc *APIKeyService) Revoke(ctx context.Context, userID, keyID uuid.UUID) error {
	err := svc.store.Revoke(ctx, userID, keyID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAPIKeyNotFound
	}
	return err
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
