package models

import (
	"strings"
	"time"
)

// Post is a marketplace listing. ImageFilenames and ImagePaths are parallel
// semicolon-delimited lists: filename[i] pairs with path[i], and slots for
// rejected uploads are kept as empty strings so the alignment holds.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Text      string    `json:"text"`
	Price     float64   `json:"price" gorm:"not null"`
	Sold      bool      `json:"sold" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID    uint      `json:"user_id" gorm:"index"`

	ImageFilenames string `json:"image_filenames"`
	ImagePaths     string `json:"image_paths"`

	Author     *User        `json:"-" gorm:"foreignKey:UserID"`
	Interested []Interested `json:"-" gorm:"foreignKey:PostID"`
	Comments   []Comment    `json:"-" gorm:"foreignKey:PostID"`
}

// ImageFilenameList splits the semicolon-joined filename list. Empty slots
// are preserved.
func (p *Post) ImageFilenameList() []string {
	if p.ImageFilenames == "" {
		return nil
	}
	return strings.Split(p.ImageFilenames, ";")
}

// ImagePathList splits the semicolon-joined storage path list.
func (p *Post) ImagePathList() []string {
	if p.ImagePaths == "" {
		return nil
	}
	return strings.Split(p.ImagePaths, ";")
}
