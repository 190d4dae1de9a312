package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintusecases "civicdesk/internal/application/complaint/usecases"
	userusecases "civicdesk/internal/application/user/usecases"
	"civicdesk/internal/infrastructure/auth"
	"civicdesk/internal/infrastructure/config"
	"civicdesk/internal/infrastructure/email"
	"civicdesk/internal/infrastructure/ml"
	"civicdesk/internal/infrastructure/ratelimit"
	"civicdesk/internal/infrastructure/repository"
	"civicdesk/internal/infrastructure/storage"
	"civicdesk/internal/interfaces/http/handlers"
	complainthandlers "civicdesk/internal/interfaces/http/handlers/complaint"
	"civicdesk/internal/interfaces/http/middleware"
	"civicdesk/internal/interfaces/http/routes"
	"civicdesk/internal/shared/authorization"
	shareddb "civicdesk/internal/shared/db"
	"civicdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	authHandler      *handlers.AuthHandler
	complaintHandler *complainthandlers.ComplaintHandler
	authMiddleware   *middleware.AuthMiddleware
	submitRateLimit  gin.HandlerFunc
	uploadsDir       string
	uploadsPath      string
}

type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil when Redis is disabled.
func NewRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) (*Router, error) {
	engine := gin.New()

	complaintRepo := repository.NewComplaintRepository(db)
	userRepo := repository.NewUserRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	classifier, embedder, err := ml.Select(&cfg.ML, log)
	if err != nil {
		return nil, err
	}

	photoStore, err := storage.NewPhotoStore(cfg.Upload.Dir, cfg.Upload.MaxSizeMB, cfg.Upload.PublicPath)
	if err != nil {
		return nil, err
	}

	var notifier complaintusecases.NotificationService
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotificationService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	submitUC := complaintusecases.NewSubmitComplaintUseCase(complaintRepo, userRepo, classifier, embedder, notifier, cfg.ML.MinConfidence, log)
	getUC := complaintusecases.NewGetComplaintUseCase(complaintRepo, log)
	listUC := complaintusecases.NewListComplaintsUseCase(complaintRepo, log)
	priorityUC := complaintusecases.NewListByPriorityUseCase(complaintRepo, log)
	statusUC := complaintusecases.NewUpdateStatusUseCase(complaintRepo, userRepo, notifier, log)
	deleteUC := complaintusecases.NewDeleteComplaintUseCase(complaintRepo, photoStore, log)
	statsUC := complaintusecases.NewGetComplaintStatsUseCase(complaintRepo, log)

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, txManager, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)

	complaintHandler := complainthandlers.NewComplaintHandler(
		submitUC, getUC, listUC, priorityUC, statusUC, deleteUC, statsUC,
		photoStore, log,
	)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log, cfg.Auth.Cookie, cfg.Auth.JWT)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	var submitRateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		submitRateLimit = middleware.SubmitRateLimit(limiter, cfg.RateLimit.SubmitPerMinute, window, log)
	}

	return &Router{
		engine:           engine,
		authHandler:      authHandler,
		complaintHandler: complaintHandler,
		authMiddleware:   authMiddleware,
		submitRateLimit:  submitRateLimit,
		uploadsDir:       photoStore.Dir(),
		uploadsPath:      cfg.Upload.PublicPath,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.Static(r.uploadsPath, r.uploadsDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupComplaintRoutes(r.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: r.complaintHandler,
		AuthMiddleware:   r.authMiddleware,
		SubmitRateLimit:  r.submitRateLimit,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
