package handler

import (
	"errors"
	"net/http"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameInput defines the structure for creating a game. All fields are
// required except the company references; dateAdded is never client-supplied.
type GameInput struct {
	Name        string   `json:"name" binding:"required,min=3" example:"Disco Elysium"`
	Platform    []string `json:"platform" binding:"required,min=1,dive,platform"`
	PublisherID *string  `json:"publisherID" binding:"omitempty,min=3"`
	DeveloperID *string  `json:"developerID" binding:"omitempty,min=3"`
	Genres      []string `json:"genres" binding:"required,min=1,dive,genre"`
	Pegi        *int     `json:"pegi" binding:"required" example:"18"`
	IsAvailable *bool    `json:"isAvailable" binding:"required"`
}

// GameUpdateInput is the partial-update variant: every field is optional, but
// a present field is validated by the same rules as on create.
type GameUpdateInput struct {
	Name        *string   `json:"name" binding:"omitempty,min=3"`
	Platform    *[]string `json:"platform" binding:"omitempty,min=1,dive,platform"`
	PublisherID *string   `json:"publisherID" binding:"omitempty,min=3"`
	DeveloperID *string   `json:"developerID" binding:"omitempty,min=3"`
	Genres      *[]string `json:"genres" binding:"omitempty,min=1,dive,genre"`
	Pegi        *int      `json:"pegi"`
	IsAvailable *bool     `json:"isAvailable"`
}

// GameFilter holds the list-endpoint query parameters. All are optional and
// combine as a conjunction.
type GameFilter struct {
	PublisherID string `form:"publisherID" binding:"omitempty,min=3"`
	DeveloperID string `form:"developerID" binding:"omitempty,min=3"`
	Genre       string `form:"genre" binding:"omitempty,genre"`
	Platform    string `form:"platform" binding:"omitempty,platform"`
	Limit       *int   `form:"limit" binding:"omitempty,min=1"`
}

// GameDetailResponse is a game with its company references resolved to
// {id, name} summaries.
type GameDetailResponse struct {
	models.Game
	Publisher *models.CompanySummary `json:"publisher,omitempty"`
	Developer *models.CompanySummary `json:"developer,omitempty"`
}

// endregion

// region --- Handlers ---

// ListGames godoc
// @Summary      List games
// @Description  Retrieves games matching the given filters. Absent filters impose no constraint.
// @Tags         games
// @Produce      json
// @Param        publisherID query string false "Publisher company id"
// @Param        developerID query string false "Developer company id"
// @Param        genre       query string false "Genre (fixed vocabulary)"
// @Param        platform    query string false "Platform (fixed vocabulary)"
// @Param        limit       query int    false "Maximum number of results"
// @Success      200 {array}  models.Game
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func ListGames(c *gin.Context) {
	var filter GameFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	query := database.DB.Model(&models.Game{})
	if filter.PublisherID != "" {
		query = query.Where("publisher_id = ?", filter.PublisherID)
	}
	if filter.DeveloperID != "" {
		query = query.Where("developer_id = ?", filter.DeveloperID)
	}
	if filter.Genre != "" {
		query = query.Where("genres LIKE ?", models.LikePattern(filter.Genre))
	}
	if filter.Platform != "" {
		query = query.Where("platform LIKE ?", models.LikePattern(filter.Platform))
	}
	if filter.Limit != nil {
		query = query.Limit(*filter.Limit)
	}

	games := []models.Game{}
	if err := query.Find(&games).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its publisher and developer resolved to {id, name} summaries.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameDetailResponse
// @Failure      400 {object} ErrorResponse "Malformed id"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGame(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		internalError(c, err)
		return
	}

	response := GameDetailResponse{Game: game}
	response.Publisher = companySummary(game.PublisherID)
	response.Developer = companySummary(game.DeveloperID)

	c.JSON(http.StatusOK, response)
}

// companySummary resolves a company reference best-effort. A dangling
// reference yields no summary rather than an error.
func companySummary(id *string) *models.CompanySummary {
	if id == nil {
		return nil
	}
	var company models.Company
	if err := database.DB.First(&company, "id = ?", *id).Error; err != nil {
		return nil
	}
	summary := company.Summary()
	return &summary
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Validates the payload and inserts the game, stamping dateAdded at insertion time.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	game := models.Game{
		Name:        input.Name,
		Platform:    input.Platform,
		PublisherID: input.PublisherID,
		DeveloperID: input.DeveloperID,
		Genres:      input.Genres,
		Pegi:        *input.Pegi,
		IsAvailable: *input.IsAvailable,
	}

	if err := database.DB.Create(&game).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Applies a merge-update: only the fields present in the body change.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path string          true "Game ID"
// @Param        input body GameUpdateInput true "Fields to update"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		internalError(c, err)
		return
	}

	var input GameUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Platform != nil {
		updates["platform"] = models.StringList(*input.Platform)
	}
	if input.PublisherID != nil {
		updates["publisher_id"] = *input.PublisherID
	}
	if input.DeveloperID != nil {
		updates["developer_id"] = *input.DeveloperID
	}
	if input.Genres != nil {
		updates["genres"] = models.StringList(*input.Genres)
	}
	if input.Pegi != nil {
		updates["pegi"] = *input.Pegi
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&game).Updates(updates).Error; err != nil {
			internalError(c, err)
			return
		}
	}

	if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes the game and returns the removed record.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		internalError(c, err)
		return
	}

	if err := database.DB.Delete(&game).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// endregion
