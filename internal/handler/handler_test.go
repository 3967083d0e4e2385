package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/session"
	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points database.DB at a fresh in-memory sqlite database and
// returns a fully wired router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		BcryptCost:      4, // bcrypt.MinCost, keeps the auth tests fast
		SessionTTLHours: 1,
	}
	sessions := session.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour)

	return SetupRouter(sessions, validation.DefaultVocabulary(), cfg)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func seedCompany(t *testing.T, role string) models.Company {
	t.Helper()
	company := models.Company{
		Name:         "Remedy Entertainment",
		Founded:      1995,
		Headquarters: "Espoo, Finland",
		Perex:        "Finnish studio known for story-driven action games.",
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&company).Error)
	return company
}

func seedGame(t *testing.T, name, genre string, publisherID, developerID *string) models.Game {
	t.Helper()
	game := models.Game{
		Name:        name,
		Platform:    models.StringList{"PC"},
		PublisherID: publisherID,
		DeveloperID: developerID,
		Genres:      models.StringList{genre},
		Pegi:        12,
		IsAvailable: true,
	}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}
