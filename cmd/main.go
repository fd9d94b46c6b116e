package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/resend/resend-go/v2"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"

	_ "github.com/pixelift/pixelift-api/docs"
	"github.com/pixelift/pixelift-api/internal/config"
	"github.com/pixelift/pixelift-api/internal/facades"
	"github.com/pixelift/pixelift-api/internal/handlers"
	"github.com/pixelift/pixelift-api/internal/jwt"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/middlewares"
	"github.com/pixelift/pixelift-api/internal/repositories"
	"github.com/pixelift/pixelift-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Pixelift API
// @version 1.0.0
// @description Credit-metered image upscaling, editing and generation
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// imageService is everything the image routes need from processing.
type imageService interface {
	handlers.ImageProcessor
	handlers.ImageLookup
	handlers.ImageHistory
	handlers.ImageOpener
}

// routerDeps are the collaborators the HTTP routes are built from.
type routerDeps struct {
	Auth           middlewares.Authenticator
	Limiter        middlewares.RateLimiter
	Images         imageService
	APIKeys        handlers.APIKeyManager
	Webhooks       handlers.WebhookManager
	AllowedOrigins []string
	MaxUploadBytes int64
	SwaggerURL     string
	TrustedProxies int
}

// newRouter builds the HTTP routes. Rate limiting runs before authentication
// so anonymous floods never reach the database.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(d.Limiter, services.ClassImageProcessing, d.TrustedProxies))
			r.Use(middlewares.AuthMiddleware(d.Auth))

			handlers.RegisterUpscaleHandler(r, handlers.NewUpscaleHandler(d.Images, d.MaxUploadBytes))
			handlers.RegisterToolHandlers(r,
				handlers.NewRemoveBackgroundHandler(d.Images, d.MaxUploadBytes),
				handlers.NewStyleTransferHandler(d.Images, d.MaxUploadBytes),
				handlers.NewReimagineHandler(d.Images, d.MaxUploadBytes),
			)
			handlers.RegisterGenerateHandlers(r,
				handlers.NewAIImageHandler(d.Images),
				handlers.NewAIVideoHandler(d.Images),
			)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(d.Limiter, services.ClassAPI, d.TrustedProxies))

			// File URLs are embedded in <img> tags and carry no credentials.
			handlers.RegisterProcessedImageFileHandlers(r,
				handlers.NewViewProcessedImageHandler(d.Images),
				handlers.NewOriginalImageHandler(d.Images),
			)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.AuthMiddleware(d.Auth))

				handlers.RegisterVideoStatusHandler(r, handlers.NewAIVideoStatusHandler(d.Images))
				handlers.RegisterListProcessedImagesHandler(r, handlers.NewListProcessedImagesHandler(d.Images))
				handlers.RegisterCreditsHandler(r, handlers.NewCreditsHandler())
				handlers.RegisterAPIKeyHandlers(r,
					handlers.NewCreateAPIKeyHandler(d.APIKeys),
					handlers.NewListAPIKeysHandler(d.APIKeys),
					handlers.NewRevokeAPIKeyHandler(d.APIKeys),
				)

				r.Group(func(r chi.Router) {
					r.Use(middlewares.RequireAdmin)
					handlers.RegisterWebhookHandlers(r,
						handlers.NewListWebhooksHandler(d.Webhooks),
						handlers.NewCreateWebhookHandler(d.Webhooks),
						handlers.NewUpdateWebhookHandler(d.Webhooks),
						handlers.NewDeleteWebhookHandler(d.Webhooks),
						handlers.NewWebhookLogsHandler(d.Webhooks),
					)
				})
			})
		})
	})

	return r
}

// newS3Client builds the object storage client. A custom endpoint switches to
// path-style addressing for S3 compatible stores.
func newS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading S3 config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// run initializes the logger, database, Redis, object storage, Kafka and the
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Development); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	if cfg.App.AutoMigrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Log.Info("Database schema applied")
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Rate limiter
	limits := map[string]int{
		services.ClassImageProcessing: cfg.RateLimit.ProcessingLimit,
		services.ClassAPI:             cfg.RateLimit.APILimit,
	}
	var limiter middlewares.RateLimiter
	if cfg.RateLimit.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		limiter = services.NewRedisRateLimiter(repositories.NewRateLimitRepository(rdb), limits, cfg.RateLimit.Window)
	} else {
		limiter = services.NewMemoryRateLimiter(limits, cfg.RateLimit.Window)
	}

	// Object storage
	s3Client, err := newS3Client(ctx, cfg.S3)
	if err != nil {
		return err
	}
	storage := facades.NewObjectStorageS3Facade(s3Client, cfg.S3.Bucket)

	// Usage events
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	} else {
		logger.Log.Warn("No Kafka brokers configured, usage events go to webhooks only")
	}

	// Email
	var emailSender services.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = facades.NewEmailResendFacade(resend.NewClient(cfg.Email.ResendAPIKey).Emails, cfg.Email.From)
	} else {
		logger.Log.Warn("No Resend API key configured, emails are disabled")
	}

	// Initialize JWT service
	sessions := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	imageRepo := repositories.NewProcessedImageRepository(db)
	apiKeyRepo := repositories.NewAPIKeyRepository(db)
	webhookRepo := repositories.NewWebhookRepository(db)
	txManager := repositories.NewTxManager(db)

	// Initialize services
	inference := facades.NewInferenceHTTPFacade(cfg.Inference.BaseURL, cfg.Inference.Token, cfg.Inference.MaxDownloadBytes)
	poller := services.NewJobPoller(inference, cfg.Inference.PollInterval, cfg.Inference.PollMaxAttempts)
	tracker := services.NewJobTracker(poller)

	webhookService := services.NewWebhookService(webhookRepo, facades.NewWebhookHTTPFacade(cfg.Webhooks.Timeout), cfg.Webhooks.Timeout)
	publisher := services.NewUsageEventPublisher(kafkaWriter, webhookService)
	notifier := services.NewNotifier(emailSender, cfg.App.PublicURL, cfg.Credits.LowThreshold, cfg.Email.Timeout)

	authService := services.NewAuthService(userReadRepo, sessions, apiKeyRepo)
	apiKeyService := services.NewAPIKeyService(apiKeyRepo)
	processing := services.NewProcessingService(services.ProcessingDeps{
		Registry:    services.NewRegistry(),
		Users:       userReadRepo,
		Credits:     userWriteRepo,
		Images:      imageRepo,
		Storage:     storage,
		Inference:   inference,
		Poller:      poller,
		Transformer: services.NewLocalUpscaler(),
		Tx:          txManager,
		Notifier:    notifier,
		Publisher:   publisher,
		Tracker:     tracker,
		SyncTimeout: cfg.Inference.SyncTimeout,
	})

	resumed, err := processing.ResumeJobs(ctx)
	if err != nil {
		logger.Log.Errorw("failed to resume pending jobs", "error", err)
	} else if resumed > 0 {
		logger.Log.Infow("Resumed pending jobs", "count", resumed)
	}

	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr: addr,
		Handler: newRouter(routerDeps{
			Auth:           authService,
			Limiter:        limiter,
			Images:         processing,
			APIKeys:        apiKeyService,
			Webhooks:       webhookService,
			AllowedOrigins: cfg.App.AllowedOrigins,
			MaxUploadBytes: cfg.App.MaxUploadBytes,
			SwaggerURL:     fmt.Sprintf("http://%s/swagger/doc.json", addr),
			TrustedProxies: cfg.RateLimit.TrustedProxies,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	// Stop polling; jobs left pending are picked up by ResumeJobs on the next start.
	tracker.Shutdown()
	notifier.Wait()
	webhookService.Wait()
	if err := publisher.Close(); err != nil {
		logger.Log.Errorw("failed to close usage event publisher", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
