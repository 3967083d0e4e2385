package handler

import (
	"log"
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/session"
	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires the vocabulary into the binding engine and builds the gin
// engine with all API routes.
func SetupRouter(sessions *session.Store, vocab validation.Vocabulary, cfg *config.Config) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v, vocab); err != nil {
			log.Fatalf("Failed to register validators: %v", err)
		}
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	authHandler := NewAuthHandler(sessions, cfg)

	api := router.Group("/api")
	{
		// Game routes
		api.GET("/games", ListGames)
		api.GET("/games/:id", GetGame)
		api.POST("/games", CreateGame)
		api.PUT("/games/:id", UpdateGame)
		api.DELETE("/games/:id", DeleteGame)

		// Company routes
		api.GET("/developers", ListCompanies(models.RoleDeveloper))
		api.GET("/publishers", ListCompanies(models.RolePublisher))
		api.GET("/companies/:id", GetCompany)
		api.PUT("/companies/:id", UpdateCompany)
		api.POST("/company", CreateCompany)
		api.DELETE("/company/:id", DeleteCompany)

		// Vocabulary routes
		api.GET("/genres", ListGenres(vocab))
		api.GET("/platforms", ListPlatforms(vocab))

		// User and session routes
		api.POST("/user", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", auth.RequireSession(sessions), authHandler.CurrentSession)
		api.DELETE("/auth", authHandler.Logout)
	}

	return router
}
