package router

import (
	"github.com/campusmkt/marketplace/internal/handlers"
	"github.com/campusmkt/marketplace/internal/mailer"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/campusmkt/marketplace/internal/uploads"
	"github.com/campusmkt/marketplace/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(middleware.RequestLogger())
}

// SetupRoutes runs migrations, wires dependencies and registers all routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Interested{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("migrations completed for all models")

	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	interestedRepo := repositories.NewGormInterestedRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)

	mail := mailer.New(cfg)

	// Session loading, last-seen touch and locale resolution apply to every
	// request, authenticated or not.
	e.Use(middleware.LoadUser(userRepo, cfg.SecretKey))
	e.Use(middleware.TouchLastSeen(userRepo))
	e.Use(middleware.ResolveLocale(cfg.Languages))

	// Public routes
	e.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.SecretKey)
	authHandler.RegisterAuthRoutes(e)

	passwordHandler := handlers.NewPasswordHandler(userRepo, mail, cfg.SecretKey)
	passwordHandler.RegisterPasswordRoutes(e)

	uploadHandler := handlers.NewUploadHandler(store)
	uploadHandler.RegisterUploadRoutes(e)

	// Gated routes
	authed := e.Group("", middleware.RequireAuth())

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, interestedRepo, commentRepo, store)
	feedHandler.RegisterFeedRoutes(authed)

	userHandler := handlers.NewUserHandler(userRepo, postRepo, interestedRepo, commentRepo)
	userHandler.RegisterUserRoutes(authed)

	postHandler := handlers.NewPostHandler(postRepo, userRepo, interestedRepo, commentRepo)
	postHandler.RegisterPostRoutes(authed)

	interestHandler := handlers.NewInterestHandler(postRepo, interestedRepo)
	interestHandler.RegisterInterestRoutes(authed)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(authed)

	log.Info().Msg("all routes configured")
	return nil
}
