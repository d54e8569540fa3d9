package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	handlerHttp "github.com/medcharfeddine/nutricoach/internal/handler/http"
	redisclient "github.com/medcharfeddine/nutricoach/internal/infrastructure/cache"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/config"
	database "github.com/medcharfeddine/nutricoach/internal/infrastructure/database"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/external_services"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/jwt"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/logger"
	passwordservice "github.com/medcharfeddine/nutricoach/internal/infrastructure/password_service"
	randomgenerator "github.com/medcharfeddine/nutricoach/internal/infrastructure/random_generator"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/repository/mongodb"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/store"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/uuidgen"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/validator"
	"github.com/medcharfeddine/nutricoach/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	appConfig, envLoaded := config.Load()

	appLogger, err := logger.NewZapLogger(appConfig.IsProduction(), appConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zapLog := appLogger.Zap()

	if !envLoaded {
		zapLog.Info("no .env file found, using environment variables")
	}
	if appConfig.JWTSecret == "" {
		zapLog.Fatal("JWT_SECRET environment variable not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, appConfig.MongoURI, appConfig.MongoDBName, appConfig.MongoTimeout)
	if err != nil {
		zapLog.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			zapLog.Warn("mongodb disconnect", zap.Error(err))
		}
	}()
	if err := database.EnsureIndexes(ctx, mongoClient.DB); err != nil {
		zapLog.Fatal("failed to create indexes", zap.Error(err))
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(mongoClient.Collection(database.CollectionUsers))
	tokenRepo := mongodb.NewTokenRepository(mongoClient.Collection(database.CollectionTokens))
	assessmentRepo := mongodb.NewAssessmentRepository(mongoClient.Collection(database.CollectionAssessments))
	consultationRepo := mongodb.NewConsultationRepository(mongoClient.Collection(database.CollectionConsultations))
	appointmentRepo := mongodb.NewAppointmentRepository(mongoClient.Collection(database.CollectionAppointments))
	messageRepo := mongodb.NewMessageRepository(mongoClient.Collection(database.CollectionMessages))
	contentRepo := mongodb.NewContentRepository(mongoClient.Collection(database.CollectionContents))
	categoryRepo := mongodb.NewCategoryRepository(mongoClient.Collection(database.CollectionCategories))
	brandingRepo := mongodb.NewBrandingRepository(mongoClient.Collection(database.CollectionBranding))
	mediaRepo := mongodb.NewMediaRepository(mongoClient.Collection(database.CollectionMedia))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(0)
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.AccessTokenExpiry, appConfig.RefreshTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	sanitizer := external_services.NewHTMLSanitizer()

	var mailService contract.IEmailService
	if appConfig.SMTPHost != "" {
		mailService = external_services.NewSMTPEmailService(appConfig.SMTPHost, appConfig.SMTPPort, appConfig.SMTPUsername, appConfig.SMTPPassword, appConfig.SMTPFrom)
	} else {
		zapLog.Warn("EMAIL_HOST not set, notifications are only logged")
		mailService = external_services.NewLogEmailService(appLogger)
	}
	notifier := external_services.NewEmailNotifier(mailService)

	var translator contract.ITranslator
	if appConfig.TranslationURL != "" {
		translator = external_services.NewHTTPTranslator(appConfig.TranslationURL, appConfig.TranslationAPIKey, appConfig.TranslationTimeout)
	}

	mediaStorage, err := external_services.NewGridFSMediaStorage(mongoClient.DB, database.MediaBucket, appConfig.GetAppBaseURL(), uuidGenerator)
	if err != nil {
		zapLog.Fatal("failed to open media bucket", zap.Error(err))
	}

	// Dependency Injection: Usecases
	assessmentUsecase := usecase.NewAssessmentUseCase(assessmentRepo, userRepo, uuidGenerator, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, assessmentUsecase, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	consultationUsecase := usecase.NewConsultationUseCase(consultationRepo, userRepo, uuidGenerator, notifier, appLogger, appConfig)
	appointmentUsecase := usecase.NewAppointmentUseCase(appointmentRepo, userRepo, uuidGenerator, notifier, appLogger, appConfig)
	messageUsecase := usecase.NewMessageUseCase(messageRepo, userRepo, uuidGenerator, appLogger)
	contentUsecase := usecase.NewContentUseCase(contentRepo, sanitizer, uuidGenerator, appValidator, appLogger, appConfig)
	categoryUsecase := usecase.NewCategoryUseCase(categoryRepo, translator, uuidGenerator, appLogger, appConfig)
	brandingUsecase := usecase.NewBrandingUseCase(brandingRepo, appValidator, appLogger, appConfig)
	mediaUsecase := usecase.NewMediaUseCase(mediaRepo, mediaStorage, uuidGenerator, appLogger)
	adminUsecase := usecase.NewAdminUseCase(userRepo, assessmentRepo, consultationRepo, appointmentRepo, messageRepo, tokenRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			zapLog.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			defer func() { _ = redisclient.Close(rdb) }()
			cacheStore := store.NewRedisCacheStore(rdb)
			appointmentUsecase.SetCache(cacheStore)
			contentUsecase.SetCache(cacheStore)
			brandingUsecase.SetCache(cacheStore)
		}
	}

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(handlerHttp.UseCases{
		User:         userUsecase,
		Assessment:   assessmentUsecase,
		Consultation: consultationUsecase,
		Appointment:  appointmentUsecase,
		Message:      messageUsecase,
		Content:      contentUsecase,
		Category:     categoryUsecase,
		Branding:     brandingUsecase,
		Media:        mediaUsecase,
		Admin:        adminUsecase,
	}, mongoClient, randomGenerator, zapLog, handlerHttp.RouterConfig{
		BaseURL:            appConfig.GetAppBaseURL(),
		AllowedOrigins:     appConfig.CORSAllowedOrigins,
		RateLimitPerSecond: appConfig.RateLimitPerSecond,
		MetricsEnabled:     appConfig.MetricsEnabled,
		SecureCookies:      appConfig.IsProduction(),
		GoogleClientID:     appConfig.GoogleClientID,
		GoogleClientSecret: appConfig.GoogleClientSecret,
	})
	appRouter.SetupRoutes(router)

	// Start the server
	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}
	go func() {
		zapLog.Info("server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
