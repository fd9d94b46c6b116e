package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/jwt"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Authentication failure messages returned to clients as is.
const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInvalidSession         = "Invalid or expired session"
	MsgInvalidAPIKey          = "Invalid API key"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SessionParser extracts and validates session tokens.
type SessionParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// APIKeyReader looks up API keys for authentication.
type APIKeyReader interface {
	GetByPrefix(ctx context.Context, prefix string) (*models.APIKey, error)
	TouchLastUsed(ctx context.Context, keyID uuid.UUID) error
}

// AuthUser is the identity resolved by authentication.
type AuthUser struct {
	Email string
}

// AuthResult is the outcome of authenticating a request.
type AuthResult struct {
	Success    bool
	User       *AuthUser
	Error      string
	StatusCode int
}

func authFailure(msg string) AuthResult {
	return AuthResult{Error: msg, StatusCode: http.StatusUnauthorized}
}

// AuthService resolves the caller of a request.
type AuthService struct {
	users    UserReader
	sessions SessionParser
	keys     APIKeyReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, sessions SessionParser, keys APIKeyReader) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		keys:     keys,
	}
}

// Authenticate accepts a session token (cookie or bearer) or an API key
// (bearer pk_...) and returns the caller's email.
func (svc *AuthService) Authenticate(ctx context.Context, r *http.Request) AuthResult {
	token, err := svc.sessions.GetTokenFromRequest(ctx, r)
	if err != nil {
		if errors.Is(err, jwt.ErrMissingToken) {
			return authFailure(MsgAuthenticationRequired)
		}
		return authFailure(MsgInvalidSession)
	}

	if strings.HasPrefix(token, models.APIKeyPrefix) {
		return svc.authenticateAPIKey(ctx, token)
	}

	claims, err := svc.sessions.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("session rejected", "error", err)
		return authFailure(MsgInvalidSession)
	}

	return AuthResult{Success: true, User: &AuthUser{Email: claims.Email}, StatusCode: http.StatusOK}
}

func (svc *AuthService) authenticateAPIKey(ctx context.Context, token string) AuthResult {
	prefix, ok := parseAPIKey(token)
	if !ok {
		return authFailure(MsgInvalidAPIKey)
	}

	key, err := svc.keys.GetByPrefix(ctx, prefix)
	if err != nil {
		logger.Log.Errorw("failed to look up api key", "prefix", prefix, "err", err)
		return authFailure(MsgInvalidAPIKey)
	}
	if key == nil {
		return authFailure(MsgInvalidAPIKey)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(token)); err != nil {
		logger.Log.Warnw("api key hash mismatch", "prefix", prefix)
		return authFailure(MsgInvalidAPIKey)
	}

	if err := svc.keys.TouchLastUsed(ctx, key.ID); err != nil {
		logger.Log.Errorw("failed to touch api key", "id", key.ID, "err", err)
	}

	return AuthResult{Success: true, User: &AuthUser{Email: key.UserEmail}, StatusCode: http.StatusOK}
}

// parseAPIKey checks the pk_<8 hex>_<32 hex> shape and returns the prefix part.
func parseAPIKey(token string) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(token, models.APIKeyPrefix), "_")
	if len(parts) != 2 || len(parts[0]) != apiKeyPrefixLen || len(parts[1]) != apiKeySecretLen {
		return "", false
	}
	for _, p := range parts {
		if _, err := hex.DecodeString(p); err != nil {
			return "", false
		}
	}
	return parts[0], true
}

// LookupUser loads the authenticated user's record.
func (svc *AuthService) LookupUser(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
