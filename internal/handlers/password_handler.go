package handlers

import (
	"net/http"
	"time"

	"github.com/campusmkt/marketplace/internal/auth"
	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/forms"
	"github.com/campusmkt/marketplace/internal/mailer"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// resetTokenTTL is the validity window of an emailed reset token.
const resetTokenTTL = 600 * time.Second

// PasswordHandler handles the password-reset request and confirm flows
type PasswordHandler struct {
	userRepository repositories.UserRepository
	mailer         *mailer.Mailer
	secret         string
}

// NewPasswordHandler creates a new PasswordHandler
func NewPasswordHandler(userRepo repositories.UserRepository, m *mailer.Mailer, secret string) *PasswordHandler {
	return &PasswordHandler{userRepository: userRepo, mailer: m, secret: secret}
}

// RegisterPasswordRoutes registers the reset routes
func (h *PasswordHandler) RegisterPasswordRoutes(e *echo.Echo) {
	e.GET("/reset_password_request", h.RequestPage)
	e.POST("/reset_password_request", h.Request)
	e.GET("/reset_password/:token", h.ResetPage)
	e.POST("/reset_password/:token", h.Reset)
}

// RequestPage renders the reset-request form
func (h *PasswordHandler) RequestPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "reset_password_request.html",
		templateData(c, echo.Map{"Title": "Reset Password"}))
}

// Request mails a signed reset token when the email matches an account. The
// response is identical either way, so callers cannot probe which emails are
// registered.
func (h *PasswordHandler) Request(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}

	var form forms.ResetPasswordRequestForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusFound, "/reset_password_request")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "error", "Please enter a valid email address.")
		return c.Redirect(http.StatusFound, "/reset_password_request")
	}

	if user, err := h.userRepository.GetUserByEmail(form.Email); err == nil {
		token, err := auth.GenerateResetToken(user.ID, h.secret, resetTokenTTL)
		if err != nil {
			log.Error().Err(err).Msg("generating reset token")
		} else {
			go h.mailer.SendPasswordReset(user, token)
		}
	}

	flash.Set(c, "success", "Check your email for the instructions to reset your password")
	return c.Redirect(http.StatusFound, "/login")
}

// ResetPage renders the new-password form for a valid token. An invalid or
// expired token redirects to the feed without explanation.
func (h *PasswordHandler) ResetPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	if _, ok := auth.VerifyResetToken(c.Param("token"), h.secret); !ok {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "reset_password.html",
		templateData(c, echo.Map{"Title": "Reset Password", "Token": c.Param("token")}))
}

// Reset sets the new password for the token's user
func (h *PasswordHandler) Reset(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	userID, ok := auth.VerifyResetToken(c.Param("token"), h.secret)
	if !ok {
		return c.Redirect(http.StatusFound, "/index")
	}

	var form forms.ResetPasswordForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "error", "Invalid form submission.")
		return redirectBack(c)
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "error", "Passwords must match and must not be empty.")
		return redirectBack(c)
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return c.Redirect(http.StatusFound, "/index")
	}
	if err := user.SetPassword(form.Password); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reset password")
	}
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	flash.Set(c, "success", "Your password has been reset.")
	return c.Redirect(http.StatusFound, "/login")
}
