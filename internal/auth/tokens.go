package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims are the claims carried by the login session cookie.
type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// ResetClaims are the claims carried by a password-reset token. The claim
// name matches the link format mailed to users.
type ResetClaims struct {
	UserID uint `json:"reset_password"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed session token for a user id.
func GenerateSessionToken(userID uint, secret string, expiresIn time.Duration) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken parses a session token and returns the user id it was
// issued for. Any failure (expired, malformed, bad signature) returns ok=false.
func VerifySessionToken(tokenStr, secret string) (uint, bool) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// GenerateResetToken issues a signed, time-limited password-reset token.
func GenerateResetToken(userID uint, secret string, expiresIn time.Duration) (string, error) {
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyResetToken validates a password-reset token. Expired, malformed and
// forged tokens all yield ok=false; the caller never learns which.
func VerifyResetToken(tokenStr, secret string) (uint, bool) {
	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
