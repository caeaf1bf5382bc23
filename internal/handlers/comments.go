package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// findComment loads a comment scoped to its post; a comment reached
// through the wrong post's URL is treated as absent.
func (h *CommentHandler) findComment(postID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := h.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, err
	}
	if strconv.Itoa(comment.PostID) != postID {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

// GetComments returns all comments for a post, newest first, paginated
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	page, pageSize, offset := pagination(c)

	var count int64
	if err := h.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	var comments []models.Comment
	if err := h.db.Where("post_id = ?", post.ID).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(pageSize).Offset(offset).
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, paginatedResponse(count, page, pageSize, comments))
}

// CreateComment creates a new comment on a post and increments the
// post's comment_count in one transaction (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input models.CreateCommentRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content must not be empty"})
		return
	}

	postID := c.Param("id")
	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var comment models.Comment
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		comment = models.Comment{
			Content:  input.Content,
			PostID:   post.ID,
			AuthorID: authorID,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		return tx.Model(&post).UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	h.db.Preload("User").First(&comment, comment.ID)
	c.JSON(http.StatusCreated, comment)
}

// GetComment returns a single comment nested under its post
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.findComment(c.Param("id"), c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	h.db.Preload("User").First(comment, comment.ID)
	c.JSON(http.StatusOK, comment)
}

// UpdateComment updates a comment (owner only)
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content must not be empty"})
		return
	}

	comment, err := h.findComment(c.Param("id"), c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.AuthorID != authorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own comments"})
		return
	}

	comment.Content = input.Content
	h.db.Save(comment)
	h.db.Preload("User").First(comment, comment.ID)

	c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment and decrements the post's
// comment_count in one transaction (owner only)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.findComment(c.Param("id"), c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.AuthorID != authorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", comment.PostID).Error; err != nil {
			return err
		}

		// A concurrent delete may have removed the row after findComment;
		// only an actual delete may decrement the counter.
		res := tx.Delete(comment)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if post.CommentCount > 0 {
			return tx.Model(&post).UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}
