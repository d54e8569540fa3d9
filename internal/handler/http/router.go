package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/middleware"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig carries the HTTP settings taken from the environment.
type RouterConfig struct {
	BaseURL            string
	AllowedOrigins     []string
	RateLimitPerSecond float64
	MetricsEnabled     bool
	SecureCookies      bool
	GoogleClientID     string
	GoogleClientSecret string
}

type UseCases struct {
	User         usecasecontract.IUserUseCase
	Assessment   usecasecontract.IAssessmentUseCase
	Consultation usecasecontract.IConsultationUseCase
	Appointment  usecasecontract.IAppointmentUseCase
	Message      usecasecontract.IMessageUseCase
	Content      usecasecontract.IContentUseCase
	Category     usecasecontract.ICategoryUseCase
	Branding     usecasecontract.IBrandingUseCase
	Media        usecasecontract.IMediaUseCase
	Admin        usecasecontract.IAdminUseCase
}

type Router struct {
	userHandler         *UserHandler
	authHandler         *AuthHandler
	consultationHandler *ConsultationHandler
	appointmentHandler  *AppointmentHandler
	messagingHandler    *MessagingHandler
	contentHandler      *ContentHandler
	brandingHandler     *BrandingHandler
	mediaHandler        *MediaHandler
	adminHandler        *AdminHandler
	healthHandler       *HealthHandler
	userUsecase         usecasecontract.IUserUseCase
	log                 *zap.Logger
	cfg                 RouterConfig
}

func NewRouter(uc UseCases, db Pinger, randomGen contract.IRandomGenerator, log *zap.Logger, cfg RouterConfig) *Router {
	return &Router{
		userHandler:         NewUserHandler(uc.User, uc.Assessment),
		authHandler:         NewAuthHandler(uc.User, randomGen, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.BaseURL, cfg.SecureCookies),
		consultationHandler: NewConsultationHandler(uc.Consultation),
		appointmentHandler:  NewAppointmentHandler(uc.Appointment),
		messagingHandler:    NewMessagingHandler(uc.Message),
		contentHandler:      NewContentHandler(uc.Content, uc.Category),
		brandingHandler:     NewBrandingHandler(uc.Branding),
		mediaHandler:        NewMediaHandler(uc.Media),
		adminHandler:        NewAdminHandler(uc.Admin),
		healthHandler:       NewHealthHandler(db),
		userUsecase:         uc.User,
		log:                 log,
		cfg:                 cfg,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.log))
	router.Use(middleware.Recovery(r.log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.cfg.RateLimitPerSecond)))

	router.GET("/healthz", r.healthHandler.Healthz)
	if r.cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	v1.GET("/content", r.contentHandler.ListPublished)
	v1.GET("/content/:slug", r.contentHandler.GetBySlug)
	v1.GET("/categories", r.contentHandler.ListCategories)
	v1.GET("/branding", r.brandingHandler.Get)
	v1.GET("/media/:publicId", r.mediaHandler.Serve)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateCurrentUser)
		protected.GET("/me/assessment", r.userHandler.GetMyAssessment)
		protected.POST("/assessments", r.userHandler.SubmitAssessment)
		protected.GET("/specialists", r.userHandler.ListSpecialists)

		protected.POST("/consultation-request", r.consultationHandler.Submit)
		protected.GET("/consultation-request", r.consultationHandler.List)
		protected.PATCH("/consultation-request", r.consultationHandler.Decide)

		protected.GET("/appointments/availability", r.appointmentHandler.GetAvailability)
		protected.POST("/appointments", r.appointmentHandler.Book)
		protected.GET("/appointments", r.appointmentHandler.List)
		protected.PATCH("/appointments", r.appointmentHandler.Update)
		protected.DELETE("/appointments", r.appointmentHandler.Cancel)

		protected.POST("/messages", r.messagingHandler.Send)
		protected.GET("/messages", r.messagingHandler.List)
		protected.PATCH("/messages", r.messagingHandler.MarkRead)
		protected.GET("/messages/unread-count", r.messagingHandler.UnreadCount)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleWare(r.userUsecase), middleware.RequireAdmin())
	{
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.GET("/users/:id", r.adminHandler.GetUser)
		admin.PUT("/users/:id", r.adminHandler.UpdateUser)
		admin.DELETE("/users/:id", r.adminHandler.DeleteUser)
		admin.GET("/stats", r.adminHandler.Stats)

		admin.GET("/content", r.contentHandler.ListAll)
		admin.POST("/content", r.contentHandler.Create)
		admin.PUT("/content/:id", r.contentHandler.Update)
		admin.DELETE("/content/:id", r.contentHandler.Delete)

		admin.POST("/categories", r.contentHandler.CreateCategory)
		admin.PUT("/categories/:id", r.contentHandler.UpdateCategory)
		admin.DELETE("/categories/:id", r.contentHandler.DeleteCategory)

		admin.PUT("/branding", r.brandingHandler.Update)

		admin.POST("/media", r.mediaHandler.Upload)
		admin.DELETE("/media/:publicId", r.mediaHandler.Delete)
	}
}
