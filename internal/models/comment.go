package models

import "time"

type Comment struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"not null" json:"content"`
	AuthorID int    `gorm:"index;not null" json:"author_id"`
	User     User   `gorm:"foreignKey:AuthorID" json:"user"`
	PostID   int    `gorm:"index;not null" json:"post_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
