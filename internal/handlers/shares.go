package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/backend/internal/models"
)

type ShareHandler struct {
	db *gorm.DB
}

func NewShareHandler(db *gorm.DB) *ShareHandler {
	return &ShareHandler{db: db}
}

var (
	errAlreadyShared = errors.New("already shared")
	errOwnPost       = errors.New("cannot share own post")
)

// RepostPost creates a share and increments the post's share_count in
// one transaction (PROTECTED). Reposting your own post is rejected, as
// is reposting the same post twice.
func (h *ShareHandler) RepostPost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var share models.Share
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		if post.AuthorID == userID {
			return errOwnPost
		}

		var existing models.Share
		if err := tx.Where("user_id = ? AND original_post_id = ?", userID, post.ID).First(&existing).Error; err == nil {
			return errAlreadyShared
		}

		share = models.Share{UserID: userID, OriginalPostID: post.ID}
		if err := tx.Create(&share).Error; err != nil {
			return err
		}

		return tx.Model(&post).UpdateColumn("share_count", gorm.Expr("share_count + ?", 1)).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, errOwnPost):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot share your own post"})
	case errors.Is(err, errAlreadyShared):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already shared this post"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share post"})
	default:
		h.db.Preload("OriginalPost").Preload("OriginalPost.User").First(&share, share.ID)
		c.JSON(http.StatusCreated, share)
	}
}

// UnrepostPost removes an existing share and decrements share_count in
// one transaction (PROTECTED). 404 when the caller never shared the post.
func (h *ShareHandler) UnrepostPost(c *gin.Context) {
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

		var share models.Share
		if err := tx.Where("user_id = ? AND original_post_id = ?", userID, post.ID).First(&share).Error; err != nil {
			return err
		}

		if err := tx.Delete(&share).Error; err != nil {
			return err
		}

		if post.ShareCount > 0 {
			return tx.Model(&post).UpdateColumn("share_count", gorm.Expr("share_count - ?", 1)).Error
		}
		return nil
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Share not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unshare post"})
	default:
		c.Status(http.StatusNoContent)
	}
}
