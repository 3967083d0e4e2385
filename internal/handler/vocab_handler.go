package handler

import (
	"net/http"

	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListGenres godoc
// @Summary      List the genre vocabulary
// @Tags         vocabularies
// @Produce      json
// @Success      200 {array} string
// @Router       /genres [get]
func ListGenres(vocab validation.Vocabulary) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, vocab.Genres)
	}
}

// ListPlatforms godoc
// @Summary      List the platform vocabulary
// @Tags         vocabularies
// @Produce      json
// @Success      200 {array} string
// @Router       /platforms [get]
func ListPlatforms(vocab validation.Vocabulary) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, vocab.Platforms)
	}
}
