package models

import "time"

type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	AuthorID int    `gorm:"index;not null" json:"author_id"`
	User     User   `gorm:"foreignKey:AuthorID" json:"user"`

	// Stored aggregates; kept in sync with the interaction rows
	// inside the same transaction that mutates them.
	LikeCount    int `gorm:"default:0" json:"like_count"`
	ShareCount   int `gorm:"default:0" json:"share_count"`
	CommentCount int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
