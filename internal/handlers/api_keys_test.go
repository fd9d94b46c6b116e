package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIKeyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New()}
	keyID := uuid.New()

	keys := NewMockAPIKeyManager(ctrl)
	keys.EXPECT().Create(gomock.Any(), user.ID, "ci").Return(&services.CreatedAPIKey{
		ID: keyID, Name: "ci", Prefix: "0a1b2c3d", Key: "pk_0a1b2c3d_0123456789abcdef0123456789abcdef",
	}, nil)

	handler := NewCreateAPIKeyHandler(keys)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(jsonRequest(t, http.MethodPost, "/api/keys", CreateAPIKeyRequest{Name: "ci"}), user))
	require.Equal(t, http.StatusCreated, rr.Code)

	var body CreateAPIKeyResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, keyID.String(), body.ID)
	assert.Equal(t, "pk_0a1b2c3d_0123456789abcdef0123456789abcdef", body.Key)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(jsonRequest(t, http.MethodPost, "/api/keys", CreateAPIKeyRequest{}), user))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid request: name is required"}`, rr.Body.String())
}

func TestListAPIKeysHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New()}
	keys := NewMockAPIKeyManager(ctrl)
	keys.EXPECT().List(gomock.Any(), user.ID).Return([]models.APIKey{
		{ID: uuid.New(), Name: "ci", Prefix: "0a1b2c3d", KeyHash: "$2a$10$secret", CreatedAt: time.Now()},
	}, nil)

	rr := httptest.NewRecorder()
	NewListAPIKeysHandler(keys).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/keys", nil), user))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")

	var body []APIKeyResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "0a1b2c3d", body[0].Prefix)
}

func TestRevokeAPIKeyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New()}
	known, unknown := uuid.New(), uuid.New()

	keys := NewMockAPIKeyManager(ctrl)
	keys.EXPECT().Revoke(gomock.Any(), user.ID, known).Return(nil)
	keys.EXPECT().Revoke(gomock.Any(), user.ID, unknown).Return(services.ErrAPIKeyNotFound)

	r := chi.NewRouter()
	r.Delete("/api/keys/{id}", func(w http.ResponseWriter, req *http.Request) {
		NewRevokeAPIKeyHandler(keys).ServeHTTP(w, withUser(req, user))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/keys/"+known.String(), nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/keys/"+unknown.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"API key not found"}`, rr.Body.String())
}
