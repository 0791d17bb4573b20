package repositories

import (
	"strings"

	"github.com/campusmkt/marketplace/internal/models"
	"gorm.io/gorm"
)

// InterestedRepository defines the interface for interest data operations
type InterestedRepository interface {
	ShowInterest(userID, postID uint) error
	UnshowInterest(userID, postID uint) error
	HasInterest(userID, postID uint) (bool, error)
	CountByPost(postID uint) (int64, error)
	InterestedMembers(postID uint) (string, error)
	InterestedPosts(userID uint) ([]models.Post, error)
}

// GormInterestedRepository implements InterestedRepository over gorm
type GormInterestedRepository struct {
	db *gorm.DB
}

// NewGormInterestedRepository creates a new GormInterestedRepository
func NewGormInterestedRepository(db *gorm.DB) *GormInterestedRepository {
	return &GormInterestedRepository{db: db}
}

// ShowInterest inserts an interest row for the (user, post) pair. There is
// no dedup guard; calling it twice creates two rows.
func (r *GormInterestedRepository) ShowInterest(userID, postID uint) error {
	return r.db.Create(&models.Interested{UserID: userID, PostID: postID}).Error
}

// UnshowInterest deletes every interest row for the (user, post) pair
func (r *GormInterestedRepository) UnshowInterest(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Interested{}).Error
}

// HasInterest reports whether the user has at least one interest row for the post
func (r *GormInterestedRepository) HasInterest(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Interested{}).
		Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByPost counts interest rows for a post, duplicates included
func (r *GormInterestedRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Interested{}).
		Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InterestedMembers returns the usernames of users interested in a post,
// joined with ", ". Each username appears once, in order of first interest,
// even when duplicate rows exist for the pair.
func (r *GormInterestedRepository) InterestedMembers(postID uint) (string, error) {
	var rows []models.Interested
	if err := r.db.Where("post_id = ?", postID).Order("id").Find(&rows).Error; err != nil {
		return "", err
	}

	seen := make(map[uint]bool)
	var usernames []string
	for _, row := range rows {
		if seen[row.UserID] {
			continue
		}
		seen[row.UserID] = true
		var user models.User
		if err := r.db.First(&user, row.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return "", err
		}
		usernames = append(usernames, user.Username)
	}
	return strings.Join(usernames, ", "), nil
}

// InterestedPosts resolves the posts a user has shown interest in, in
// insertion order. Dangling post references are silently skipped.
func (r *GormInterestedRepository) InterestedPosts(userID uint) ([]models.Post, error) {
	var rows []models.Interested
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	for _, row := range rows {
		if row.PostID == 0 {
			continue
		}
		var post models.Post
		if err := r.db.First(&post, row.PostID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
