package models

import "time"

// Comment is a remark left on a post. Comments are never edited or deleted.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID    uint      `json:"user_id" gorm:"index"`
	PostID    uint      `json:"post_id" gorm:"index"`

	Author *User `json:"-" gorm:"foreignKey:UserID"`
}
