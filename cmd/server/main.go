package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/adapters/event"
	httpAdapter "github.com/sammy-mbugua/portfolio/adapters/http"
	"github.com/sammy-mbugua/portfolio/adapters/media_storage"
	"github.com/sammy-mbugua/portfolio/adapters/persistence"
	"github.com/sammy-mbugua/portfolio/adapters/session"
	"github.com/sammy-mbugua/portfolio/internal/application/service"
	authUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/auth"
	contactUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/contact"
	contentUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/content"
	portfolioUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/portfolio"
	profileUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/profile"
	projectUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/project"
	resumeUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/resume"
	"github.com/sammy-mbugua/portfolio/internal/application/usecase/sitecontext"
	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start portfolio server...", zap.String("env", cfg.App.Env))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT secret is not configured", nil)
	}

	shutdownTracing, err := tracing.Init(cfg, appLogger, "portfolio-server")
	if err != nil {
		appLogger.Fatal("Failed to init tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	// Initialize dependencies
	if cfg.DB.AutoMigrate {
		if err := persistence.RunMigrations(cfg.DB.DSN, appLogger); err != nil {
			appLogger.Fatal("Cannot run migrations", err)
		}
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	var flashStore session.FlashStore
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		flashStore = session.NewRedisStore(redisClient, cfg.IsProduction())
	} else {
		appLogger.Info("Redis not configured, flash messages use cookies")
		flashStore = session.NewCookieStore(cfg.IsProduction())
	}

	notifier := service.NewNopNotifier()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		notifier = kafkaClient
	}

	storage, mediaRoot, err := newStorage(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	socialRepo := persistence.NewPostgresSocialRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	queryUseCase := portfolioUC.NewQueryUseCase(profileRepo, educationRepo, experienceRepo, skillRepo, projectRepo, socialRepo, appLogger)
	siteSupplier := sitecontext.NewSupplier(profileRepo, socialRepo)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(contactRepo, notifier, appLogger)
	contactAdminUseCase := contactUC.NewAdminUseCase(contactRepo, appLogger)
	downloadResumeUseCase := resumeUC.NewDownloadResumeUseCase(profileRepo, storage)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, storage, appLogger)
	contentUseCase := contentUC.NewContentUseCase(educationRepo, experienceRepo, skillRepo, socialRepo, appLogger)

	// HTTP Handlers
	templates, err := httpAdapter.NewTemplateSet(storage)
	if err != nil {
		appLogger.Fatal("Failed to parse templates", err)
	}
	renderer := httpAdapter.NewRenderer(siteSupplier, flashStore, appLogger)

	handlers := httpAdapter.Handlers{
		Public:  httpAdapter.NewPublicHandler(queryUseCase, submitContactUseCase, downloadResumeUseCase, renderer, appLogger),
		Auth:    httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, storage, appLogger),
		Project: httpAdapter.NewProjectHandler(
			projectUC.NewCreateProjectUseCase(projectRepo),
			projectUC.NewListProjectsUseCase(projectRepo),
			projectUC.NewGetProjectUseCase(projectRepo),
			projectUC.NewUpdateProjectUseCase(projectRepo),
			projectUC.NewDeleteProjectUseCase(projectRepo, storage, appLogger),
			projectUC.NewUploadImageUseCase(projectRepo, storage, appLogger),
			storage,
			appLogger,
		),
		Content: httpAdapter.NewContentHandler(contentUseCase, appLogger),
		Contact: httpAdapter.NewContactHandler(contactAdminUseCase, appLogger),
		Feed:    httpAdapter.NewFeedHandler(portfolioUC.NewFeedUseCase(profileRepo, projectRepo, appLogger), appLogger),
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		Templates: templates,
		JWT:       jwtSvc,
		Logger:    appLogger,
		Renderer:  renderer,
		MediaRoot: mediaRoot,
		MediaURL:  cfg.Storage.MediaURL,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}

// newStorage picks the blob backend. The returned root is non-empty only for local
// storage, which the router then serves under the media URL.
func newStorage(cfg config.Config, log logger.Logger) (service.BlobStorage, string, error) {
	switch cfg.Storage.Driver {
	case config.StorageCloudinary:
		s, err := media_storage.NewCloudinaryAdapter(cfg, log)
		return s, "", err
	default:
		s, err := media_storage.NewLocalAdapter(cfg, log)
		return s, cfg.Storage.LocalRoot, err
	}
}
