package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pulsefeed/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUsers returns all users, paginated
func (h *UserHandler) GetUsers(c *gin.Context) {
	page, pageSize, offset := pagination(c)

	var count int64
	if err := h.db.Model(&models.User{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	var users []models.User
	if err := h.db.Order("id asc").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, paginatedResponse(count, page, pageSize, users))
}

// GetUser returns a user's profile by username
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserPosts returns all posts authored by a user, newest first
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	page, pageSize, offset := pagination(c)

	var count int64
	if err := h.db.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user posts"})
		return
	}

	var posts []models.Post
	if err := h.db.Where("author_id = ?", user.ID).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(pageSize).Offset(offset).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, paginatedResponse(count, page, pageSize, posts))
}

// GetUserShares returns the posts a user has shared, joined through the
// share rows, ordered by share time descending
func (h *UserHandler) GetUserShares(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	page, pageSize, offset := pagination(c)

	var count int64
	if err := h.db.Model(&models.Share{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user shares"})
		return
	}

	var shares []models.Share
	if err := h.db.Where("user_id = ?", user.ID).
		Preload("OriginalPost").
		Preload("OriginalPost.User").
		Order("created_at desc, id desc").
		Limit(pageSize).Offset(offset).
		Find(&shares).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user shares"})
		return
	}

	if shares == nil {
		shares = []models.Share{}
	}

	c.JSON(http.StatusOK, paginatedResponse(count, page, pageSize, shares))
}
