package models

import "time"

// Share records a user reposting someone else's post. One row per
// (user, original_post) pair, enforced by the composite unique index.
type Share struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	UserID         int       `gorm:"uniqueIndex:idx_shares_user_post;not null" json:"user_id"`
	OriginalPostID int       `gorm:"uniqueIndex:idx_shares_user_post;not null" json:"original_post_id"`
	OriginalPost   Post      `gorm:"foreignKey:OriginalPostID" json:"original_post"`
	CreatedAt      time.Time `json:"created_at"`
}
