package middleware

import (
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TouchLastSeen stamps the authenticated user's last-seen time on every
// request.
func TouchLastSeen(users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := CurrentUser(c); user != nil {
				if err := users.TouchLastSeen(user.ID); err != nil {
					log.Error().Err(err).Uint("user_id", user.ID).Msg("updating last seen")
				}
			}
			return next(c)
		}
	}
}

// ResolveLocale computes the active locale for the response context. Only
// the first configured language is ever selected.
func ResolveLocale(languages []string) echo.MiddlewareFunc {
	locale := "en"
	if len(languages) > 0 {
		locale = languages[0]
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("locale", locale)
			return next(c)
		}
	}
}

// RequestLogger logs each request with zerolog.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			log.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Msg("request")
			return err
		}
	}
}
