package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAPIKeyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	var stored *models.APIKey

	store := NewMockAPIKeyStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, key *models.APIKey) error {
		stored = key
		return nil
	})

	created, err := NewAPIKeyService(store).Create(context.Background(), userID, "ci")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.True(t, strings.HasPrefix(created.Key, models.APIKeyPrefix+created.Prefix+"_"))
	assert.Len(t, created.Key, len(models.APIKeyPrefix)+apiKeyPrefixLen+1+apiKeySecretLen)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, created.Prefix, stored.Prefix)
	assert.NotContains(t, stored.KeyHash, created.Key)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.KeyHash), []byte(created.Key)))

	prefix, ok := parseAPIKey(created.Key)
	assert.True(t, ok)
	assert.Equal(t, created.Prefix, prefix)
}

func TestAPIKeyService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, keyID := uuid.New(), uuid.New()
	store := NewMockAPIKeyStore(ctrl)
	store.EXPECT().Revoke(gomock.Any(), userID, keyID).Return(nil)
	store.EXPECT().Revoke(gomock.Any(), userID, gomock.Not(keyID)).Return(sql.ErrNoRows)

	svc := NewAPIKeyService(store)
	assert.NoError(t, svc.Revoke(context.Background(), userID, keyID))
	assert.ErrorIs(t, svc.Revoke(context.Background(), userID, uuid.New()), ErrAPIKeyNotFound)
}

func TestAPIKeyService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	store := NewMockAPIKeyStore(ctrl)
	store.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.APIKey{{Name: "ci"}, {Name: "local"}}, nil)

	keys, err := NewAPIKeyService(store).List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}
