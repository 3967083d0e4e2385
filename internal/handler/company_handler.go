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

// CompanyInput defines the structure for creating a company.
type CompanyInput struct {
	Name         string `json:"name" binding:"required,min=3" example:"Ubisoft"`
	Founded      *int   `json:"founded" binding:"required" example:"1986"`
	Headquarters string `json:"headquarters" binding:"required,min=2" example:"Saint-Mandé, France"`
	Perex        string `json:"perex" binding:"required,min=10"`
	Role         string `json:"role" binding:"required,companyrole" example:"publisher"`
}

// CompanyUpdateInput is the partial-update variant of CompanyInput.
type CompanyUpdateInput struct {
	Name         *string `json:"name" binding:"omitempty,min=3"`
	Founded      *int    `json:"founded"`
	Headquarters *string `json:"headquarters" binding:"omitempty,min=2"`
	Perex        *string `json:"perex" binding:"omitempty,min=10"`
	Role         *string `json:"role" binding:"omitempty,companyrole"`
}

// CompanyFilter holds the list-endpoint query parameters.
type CompanyFilter struct {
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// endregion

// serializes the count-then-delete integrity check per company id
var companyLocks = newKeyedMutex()

// region --- Handlers ---

// ListCompanies returns a handler listing companies with the given role. The
// same handler backs both the developers and the publishers endpoint.
func ListCompanies(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter CompanyFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
			return
		}

		query := database.DB.Where("role = ?", role)
		if filter.Limit != nil {
			query = query.Limit(*filter.Limit)
		}

		companies := []models.Company{}
		if err := query.Find(&companies).Error; err != nil {
			internalError(c, err)
			return
		}

		c.JSON(http.StatusOK, companies)
	}
}

// GetCompany godoc
// @Summary      Get a single company by ID
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} models.Company
// @Failure      400 {object} ErrorResponse "Malformed id"
// @Failure      404 {object} ErrorResponse "Company not found"
// @Router       /companies/{id} [get]
func GetCompany(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// CreateCompany godoc
// @Summary      Create a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        input body CompanyInput true "Company Info"
// @Success      201 {object} models.Company
// @Failure      400 {object} ErrorResponse
// @Router       /company [post]
func CreateCompany(c *gin.Context) {
	var input CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	company := models.Company{
		Name:         input.Name,
		Founded:      *input.Founded,
		Headquarters: input.Headquarters,
		Perex:        input.Perex,
		Role:         input.Role,
	}

	if err := database.DB.Create(&company).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Description  Applies a merge-update: only the fields present in the body change.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path string             true "Company ID"
// @Param        input body CompanyUpdateInput true "Fields to update"
// @Success      200 {object} models.Company
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Company not found"
// @Router       /companies/{id} [put]
func UpdateCompany(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			return
		}
		internalError(c, err)
		return
	}

	var input CompanyUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Founded != nil {
		updates["founded"] = *input.Founded
	}
	if input.Headquarters != nil {
		updates["headquarters"] = *input.Headquarters
	}
	if input.Perex != nil {
		updates["perex"] = *input.Perex
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&company).Updates(updates).Error; err != nil {
			internalError(c, err)
			return
		}
	}

	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Description  Refuses deletion while any game references the company as publisher or developer.
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} models.Company
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Company not found"
// @Failure      409 {object} ErrorResponse "Company still referenced by games"
// @Router       /company/{id} [delete]
func DeleteCompany(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	// The store cannot make count-then-delete atomic across collections, so
	// concurrent deletes for the same company are serialized here.
	companyLocks.Lock(id)
	defer companyLocks.Unlock(id)

	var company models.Company
	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			return
		}
		internalError(c, err)
		return
	}

	var refs int64
	err := database.DB.Model(&models.Game{}).
		Where("publisher_id = ? OR developer_id = ?", id, id).
		Count(&refs).Error
	if err != nil {
		internalError(c, err)
		return
	}
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Company is referenced by existing games"})
		return
	}

	if err := database.DB.Delete(&company).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// endregion
