package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered member of the marketplace.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:25;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:250"`
	Email        string    `json:"email" gorm:"size:250;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	Venmo        string    `json:"venmo,omitempty" gorm:"size:25"`
	LastSeen     time.Time `json:"last_seen"`

	Posts      []Post       `json:"-" gorm:"foreignKey:UserID"`
	Interested []Interested `json:"-" gorm:"foreignKey:UserID"`
	Comments   []Comment    `json:"-" gorm:"foreignKey:UserID"`
}

// SetPassword hashes the raw password with bcrypt and stores the hash.
// The plaintext is never persisted.
func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored password hash.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}

// AvatarURL derives a gravatar identicon URL from the lower-cased email.
func (u *User) AvatarURL(size int) string {
	digest := md5.Sum([]byte(strings.ToLower(u.Email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d",
		hex.EncodeToString(digest[:]), size)
}
