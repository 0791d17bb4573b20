package models

// Interested links a user to a post they want to buy. The (user, post) pair
// carries no unique constraint; duplicate rows are tolerated and collapsed
// at read time.
type Interested struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"index"`
	PostID uint `json:"post_id" gorm:"index"`
}
