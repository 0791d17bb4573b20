package middleware

import (
	"net/http"
	"net/url"

	"github.com/campusmkt/marketplace/internal/auth"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "session"

const currentUserKey = "current_user"

// LoadUser resolves the session cookie into the current user and stores it
// in the request context. Requests without a valid session pass through
// unauthenticated.
func LoadUser(users repositories.UserRepository, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			userID, ok := auth.VerifySessionToken(cookie.Value, secret)
			if !ok {
				return next(c)
			}
			user, err := users.GetUserByID(userID)
			if err != nil {
				return next(c)
			}
			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireAuth redirects unauthenticated requests to the login page,
// preserving the original destination for the post-login redirect.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusFound,
					"/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
