package models

import "time"

// Like records a user liking a post. One row per (user, post) pair,
// enforced by the composite unique index.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"uniqueIndex:idx_likes_user_post;not null" json:"user_id"`
	PostID    int       `gorm:"uniqueIndex:idx_likes_user_post;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
