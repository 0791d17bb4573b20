// Package forms declares the submitted field sets and their constraints.
// Structural constraints live in validate tags; the registration form
// additionally cross-checks username and email against persisted users.
package forms

import (
	"errors"

	"github.com/campusmkt/marketplace/internal/repositories"
)

// LoginForm carries a login attempt.
type LoginForm struct {
	Username   string `form:"username" validate:"required"`
	Password   string `form:"password" validate:"required"`
	RememberMe bool   `form:"remember_me"`
}

// RegisterForm carries a registration submission.
type RegisterForm struct {
	Username  string `form:"username" validate:"required"`
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
	Venmo     string `form:"venmo_username"`
}

// CheckUnique verifies that the username and email are not already taken.
// The check reads current state and is not transactional with the eventual
// insert; concurrent registrations can still race.
func (f *RegisterForm) CheckUnique(users repositories.UserRepository) error {
	taken, err := users.UsernameTaken(f.Username)
	if err != nil {
		return err
	}
	if taken {
		return errors.New("Please use a different username.")
	}
	taken, err = users.EmailTaken(f.Email)
	if err != nil {
		return err
	}
	if taken {
		return errors.New("Please use a different email address.")
	}
	return nil
}

// PostForm carries a new listing.
type PostForm struct {
	Title string  `form:"title" validate:"required"`
	Text  string  `form:"text"`
	Price float64 `form:"price" validate:"required"`
}

// CommentForm carries a comment on a post.
type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

// ResetPasswordRequestForm carries a password-reset request.
type ResetPasswordRequestForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ResetPasswordForm carries the new password set via a reset link.
type ResetPasswordForm struct {
	Password  string `form:"password" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}
