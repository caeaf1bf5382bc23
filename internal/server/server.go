package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pulsefeed/backend/internal/database"
	"github.com/pulsefeed/backend/internal/handlers"
	"github.com/pulsefeed/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db := database.New()

	// Harden schema constraints over the migrated tables
	raw, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := raw.Initialize(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	raw.Close()

	// Create unified handler
	handler := handlers.NewHandler(db.GetDB())

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	RegisterAPIRoutes(r, s.handler)

	return r
}

// RegisterAPIRoutes attaches all resource routes to the router
func RegisterAPIRoutes(r *gin.Engine, handler *handlers.Handler) {
	// Auth routes (public)
	api := r.Group("/api")
	{
		api.POST("/register", handler.Auth.Register)
		api.POST("/token", handler.Auth.Token)
		api.POST("/token/refresh", handler.Auth.Refresh)
	}

	// Post routes (public reads)
	r.GET("/posts", handler.Post.GetPosts)
	r.GET("/posts/trending", handler.Post.GetTrendingPosts)
	r.GET("/posts/:id", handler.Post.GetPost)

	// Comment routes (public reads)
	r.GET("/posts/:id/comments", handler.Comment.GetComments)
	r.GET("/posts/:id/comments/:commentId", handler.Comment.GetComment)

	// User routes (public reads)
	r.GET("/users", handler.User.GetUsers)
	r.GET("/users/:username", handler.User.GetUser)
	r.GET("/users/:username/posts", handler.User.GetUserPosts)
	r.GET("/users/:username/shares", handler.User.GetUserShares)

	// Protected routes (authentication required)
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// Post protected routes
		protected.POST("/posts", handler.Post.CreatePost)
		protected.PUT("/posts/:id", handler.Post.UpdatePost)
		protected.PATCH("/posts/:id", handler.Post.UpdatePost)
		protected.DELETE("/posts/:id", handler.Post.DeletePost)

		// Interaction protected routes
		protected.POST("/posts/:id/like", handler.Like.LikePost)
		protected.DELETE("/posts/:id/like", handler.Like.UnlikePost)
		protected.POST("/posts/:id/repost", handler.Share.RepostPost)
		protected.DELETE("/posts/:id/repost", handler.Share.UnrepostPost)

		// Comment protected routes
		protected.POST("/posts/:id/comments", handler.Comment.CreateComment)
		protected.PUT("/posts/:id/comments/:commentId", handler.Comment.UpdateComment)
		protected.PATCH("/posts/:id/comments/:commentId", handler.Comment.UpdateComment)
		protected.DELETE("/posts/:id/comments/:commentId", handler.Comment.DeleteComment)
	}
}
