package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/campusmkt/marketplace/internal/auth"
	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/forms"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// AuthHandler handles login, logout and registration
type AuthHandler struct {
	userRepository repositories.UserRepository
	secret         string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, secret string) *AuthHandler {
	return &AuthHandler{userRepository: userRepo, secret: secret}
}

// RegisterAuthRoutes registers the authentication routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)
	e.GET("/register", h.RegisterPage)
	e.POST("/register", h.Register)
}

// LoginPage renders the login form, or bounces authenticated users to the feed
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "login.html", templateData(c, echo.Map{
		"Title": "Log In",
		"Next":  c.QueryParam("next"),
	}))
}

// Login validates credentials and establishes the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}

	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusFound, "/login")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "error", "Invalid username or password.")
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.userRepository.GetUserByUsername(form.Username)
	if err != nil || !user.CheckPassword(form.Password) {
		flash.Set(c, "error", "Invalid username or password.")
		return c.Redirect(http.StatusFound, "/login")
	}

	ttl := sessionTTL
	if form.RememberMe {
		ttl = rememberTTL
	}
	token, err := auth.GenerateSessionToken(user.ID, h.secret, ttl)
	if err != nil {
		log.Error().Err(err).Msg("generating session token")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to establish session")
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	}
	if form.RememberMe {
		cookie.Expires = time.Now().Add(rememberTTL)
	}
	c.SetCookie(cookie)
	flash.Set(c, "success", "You were logged in")

	// FormValue covers both the hidden form field and a ?next= query.
	return c.Redirect(http.StatusFound, safeNextPage(c.FormValue("next")))
}

// safeNextPage guards the post-login redirect against open redirects: only
// same-origin relative paths are honored.
func safeNextPage(next string) string {
	if next == "" {
		return "/index"
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Host != "" || parsed.Scheme != "" {
		return "/index"
	}
	return next
}

// Logout clears the session
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	flash.Set(c, "success", "You were logged out")
	return c.Redirect(http.StatusFound, "/index")
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "register.html", templateData(c, echo.Map{"Title": "Register"}))
}

// Register creates a new user from a valid submission
func (h *AuthHandler) Register(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}

	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "error", "Please fill out all required fields correctly.")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := form.CheckUnique(h.userRepository); err != nil {
		flash.Set(c, "error", err.Error())
		return c.Redirect(http.StatusFound, "/register")
	}

	user := &models.User{
		Username: form.Username,
		Name:     form.Name,
		Email:    form.Email,
		Venmo:    form.Venmo,
	}
	if err := user.SetPassword(form.Password); err != nil {
		log.Error().Err(err).Msg("hashing password")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	flash.Set(c, "success", "Congratulations, you are now a registered user!")
	return c.Redirect(http.StatusFound, "/login")
}
