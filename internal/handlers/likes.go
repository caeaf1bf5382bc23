package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/backend/internal/models"
)

type LikeHandler struct {
	db *gorm.DB
}

func NewLikeHandler(db *gorm.DB) *LikeHandler {
	return &LikeHandler{db: db}
}

var errAlreadyLiked = errors.New("already liked")

// LikePost creates a like and increments the post's like_count in one
// transaction (PROTECTED - requires authentication).
// Liking a post twice is rejected with 409.
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var like models.Like
	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Lock the post row so concurrent likes serialize on the counter
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		var existing models.Like
		if err := tx.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&existing).Error; err == nil {
			return errAlreadyLiked
		}

		like = models.Like{UserID: userID, PostID: post.ID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}

		return tx.Model(&post).UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, errAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already liked this post"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
	default:
		c.JSON(http.StatusCreated, like)
	}
}

// UnlikePost removes an existing like and decrements like_count in one
// transaction (PROTECTED). 404 when the caller never liked the post.
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		var like models.Like
		if err := tx.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&like).Error; err != nil {
			return err
		}

		if err := tx.Delete(&like).Error; err != nil {
			return err
		}

		if post.LikeCount > 0 {
			return tx.Model(&post).UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
		}
		return nil
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
	default:
		c.Status(http.StatusNoContent)
	}
}
