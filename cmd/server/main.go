package main

import (
	"github.com/campusmkt/marketplace/internal/logger"
	"github.com/campusmkt/marketplace/internal/render"
	"github.com/campusmkt/marketplace/internal/router"
	"github.com/campusmkt/marketplace/pkg/config"
	"github.com/campusmkt/marketplace/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing database")
	}
	defer config.CloseDB(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	renderer, err := render.New("web/templates/*.html")
	if err != nil {
		log.Fatal().Err(err).Msg("parsing templates")
	}
	e.Renderer = renderer

	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("configuring routes")
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
