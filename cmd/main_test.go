package main

import (
	"bytes"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelift/pixelift-api/internal/handlers"
	"github.com/pixelift/pixelift-api/internal/middlewares"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2026-10-01\n", buf.String())
}

// imageMocks satisfies imageService with one mock per handler interface.
type imageMocks struct {
	*handlers.MockImageProcessor
	*handlers.MockImageLookup
	*handlers.MockImageHistory
	*handlers.MockImageOpener
}

type routerFixture struct {
	auth     *middlewares.MockAuthenticator
	limiter  *middlewares.MockRateLimiter
	opener   *handlers.MockImageOpener
	webhooks *handlers.MockWebhookManager
	handler  http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &routerFixture{
		auth:     middlewares.NewMockAuthenticator(ctrl),
		limiter:  middlewares.NewMockRateLimiter(ctrl),
		opener:   handlers.NewMockImageOpener(ctrl),
		webhooks: handlers.NewMockWebhookManager(ctrl),
	}
	f.handler = newRouter(routerDeps{
		Auth:    f.auth,
		Limiter: f.limiter,
		Images: imageMocks{
			handlers.NewMockImageProcessor(ctrl),
			handlers.NewMockImageLookup(ctrl),
			handlers.NewMockImageHistory(ctrl),
			f.opener,
		},
		APIKeys:        handlers.NewMockAPIKeyManager(ctrl),
		Webhooks:       f.webhooks,
		AllowedOrigins: []string{"*"},
		MaxUploadBytes: 20 << 20,
		SwaggerURL:     "/swagger/doc.json",
	})
	return f
}

func allow() services.Decision {
	return services.Decision{Allowed: true, Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}
}

func loggedIn(f *routerFixture, user *models.User) {
	f.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(services.AuthResult{Success: true, User: &services.AuthUser{Email: user.Email}, StatusCode: http.StatusOK})
	f.auth.EXPECT().LookupUser(gomock.Any(), user.Email).Return(user, nil)
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_CreditsRequiresAuth(t *testing.T) {
	f := newRouterFixture(t)
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassAPI).Return(allow(), nil)
	f.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(services.AuthResult{Error: services.MsgAuthenticationRequired, StatusCode: http.StatusUnauthorized})

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/credits", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), services.MsgAuthenticationRequired)
}

func TestRouter_Credits(t *testing.T) {
	f := newRouterFixture(t)
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassAPI).Return(allow(), nil)
	loggedIn(f, &models.User{ID: uuid.New(), Email: "ann@example.com", Credits: 7, Role: models.RoleUser})

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/credits", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"credits":7`)
	assert.Equal(t, "9", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_ProcessingUsesProcessingClass(t *testing.T) {
	f := newRouterFixture(t)
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassImageProcessing).
		Return(services.Decision{Allowed: false, Limit: 20, ResetAt: time.Now().Add(30 * time.Second)}, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/upscale", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestRouter_ImageFilesArePublic(t *testing.T) {
	f := newRouterFixture(t)
	id := uuid.New()
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassAPI).Return(allow(), nil)
	f.opener.EXPECT().OpenImage(gomock.Any(), id, false).Return([]byte("png-bytes"), "image/png", nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/processed-images/"+id.String()+"/view", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png-bytes", rr.Body.String())
}

func TestRouter_WebhooksRequireAdmin(t *testing.T) {
	f := newRouterFixture(t)
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassAPI).Return(allow(), nil)
	loggedIn(f, &models.User{ID: uuid.New(), Email: "pro@example.com", Role: models.RolePro})

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/webhooks", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_WebhooksAsAdmin(t *testing.T) {
	f := newRouterFixture(t)
	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), services.ClassAPI).Return(allow(), nil)
	loggedIn(f, &models.User{ID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin})
	f.webhooks.EXPECT().List(gomock.Any()).Return([]models.Webhook{}, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/webhooks", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
