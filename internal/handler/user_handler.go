package handler

import (
	"errors"
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/session"
	"gamevault/backend/internal/validation"
	"gamevault/backend/pkg/password"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=4" example:"password123"`
}

// LoginInput defines the structure for user login. Beyond presence there is no
// format constraint; the lookup decides.
type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// endregion

// One message for unknown email and wrong password; callers must not be able
// to probe which one it was.
const invalidCredentials = "invalid email or password"

// AuthHandler serves registration, login, logout and session introspection.
type AuthHandler struct {
	sessions      *session.Store
	bcryptCost    int
	cookieMaxAge  int
	secureCookies bool
}

func NewAuthHandler(sessions *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:      sessions,
		bcryptCost:    cfg.BcryptCost,
		cookieMaxAge:  cfg.SessionTTLHours * 3600,
		secureCookies: cfg.SecureCookies,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user with a hashed password. The password hash is never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Router       /user [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	hashed, err := password.Hash(input.Password, h.bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: hashed,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in a user
// @Description  Verifies credentials, establishes a session and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200 {object} session.User
// @Failure      400 {object} ErrorResponse "Invalid credentials"
// @Router       /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
			return
		}
		internalError(c, err)
		return
	}

	if !password.Verify(user.PasswordHash, input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}

	payload := session.User{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}
	token, err := h.sessions.Create(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetCookie(session.CookieName, token, h.cookieMaxAge, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, payload)
}

// Logout godoc
// @Summary      Log out
// @Description  Destroys the session and clears the cookie. An already-absent session is fine.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /auth [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(token)
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// CurrentSession godoc
// @Summary      Get the current session
// @Description  Returns the public fields of the authenticated user.
// @Tags         auth
// @Produce      json
// @Success      200 {object} session.User
// @Failure      401 {object} ErrorResponse "Unauthenticated"
// @Router       /auth [get]
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	v, exists := c.Get(auth.SessionKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	c.JSON(http.StatusOK, v.(session.User))
}
