package repositories

import (
	"github.com/campusmkt/marketplace/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByUserID(userID uint) ([]models.Post, error)
	SetSold(id uint, sold bool) error
	DeletePost(id uint) error
}

// GormPostRepository implements PostRepository over gorm
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// CreatePost inserts a new post
func (r *GormPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by primary key
func (r *GormPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves every post for the feed. The feed renders the whole
// table; the configured page size is intentionally not applied here.
func (r *GormPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByUserID retrieves all posts owned by a user
func (r *GormPostRepository) GetPostsByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// SetSold sets the sold flag. Repeated identical calls are idempotent; both
// states stay reachable from each other.
func (r *GormPostRepository) SetSold(id uint, sold bool) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Update("sold", sold).Error
}

// DeletePost deletes a post by primary key. Uploaded images are left behind
// on disk.
func (r *GormPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
