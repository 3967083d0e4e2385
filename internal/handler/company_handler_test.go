package handler

import (
	"net/http"
	"testing"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCompanyPayload() map[string]any {
	return map[string]any{
		"name":         "Ubisoft",
		"founded":      1986,
		"headquarters": "Saint-Mandé, France",
		"perex":        "French video-game developer and publisher.",
		"role":         "publisher",
	}
}

func TestCreateCompany(t *testing.T) {
	router := setupTest(t)

	w := performJSON(t, router, http.MethodPost, "/api/company", validCompanyPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Company
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ubisoft", created.Name)
	assert.Equal(t, 1986, created.Founded)
}

func TestCreateCompanyValidation(t *testing.T) {
	router := setupTest(t)

	cases := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{"short name", func(m map[string]any) { m["name"] = "ab" }, "name must be at least 3 characters"},
		{"short perex", func(m map[string]any) { m["perex"] = "too short" }, "perex must be at least 10 characters"},
		{"bad role", func(m map[string]any) { m["role"] = "distributor" }, `role must be "developer" or "publisher"`},
		{"missing founded", func(m map[string]any) { delete(m, "founded") }, "founded is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validCompanyPayload()
			tc.mutate(payload)

			w := performJSON(t, router, http.MethodPost, "/api/company", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestListCompaniesByRole(t *testing.T) {
	router := setupTest(t)

	seedCompany(t, models.RoleDeveloper)
	seedCompany(t, models.RoleDeveloper)
	seedCompany(t, models.RolePublisher)

	w := performJSON(t, router, http.MethodGet, "/api/developers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var developers []models.Company
	decodeBody(t, w, &developers)
	require.Len(t, developers, 2)
	for _, company := range developers {
		assert.Equal(t, models.RoleDeveloper, company.Role)
	}

	w = performJSON(t, router, http.MethodGet, "/api/publishers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var publishers []models.Company
	decodeBody(t, w, &publishers)
	assert.Len(t, publishers, 1)

	w = performJSON(t, router, http.MethodGet, "/api/developers?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &developers)
	assert.Len(t, developers, 1)
}

func TestUpdateCompanyMergesPartialBody(t *testing.T) {
	router := setupTest(t)
	company := seedCompany(t, models.RoleDeveloper)

	w := performJSON(t, router, http.MethodPut, "/api/companies/"+company.ID, map[string]any{
		"headquarters": "Helsinki, Finland",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Company
	decodeBody(t, w, &updated)
	assert.Equal(t, "Helsinki, Finland", updated.Headquarters)
	assert.Equal(t, company.Name, updated.Name)
	assert.Equal(t, company.Role, updated.Role)
}

func TestDeleteCompanyRefusedWhileReferenced(t *testing.T) {
	router := setupTest(t)
	company := seedCompany(t, models.RoleDeveloper)
	game := seedGame(t, "Control", "Action", nil, &company.ID)

	w := performJSON(t, router, http.MethodDelete, "/api/company/"+company.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// still resolvable after the refused delete
	w = performJSON(t, router, http.MethodGet, "/api/companies/"+company.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// drop the referencing game, then deletion goes through
	w = performJSON(t, router, http.MethodDelete, "/api/games/"+game.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodDelete, "/api/company/"+company.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodGet, "/api/companies/"+company.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.Company{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCompanyCountsPublisherAndDeveloperReferences(t *testing.T) {
	router := setupTest(t)
	company := seedCompany(t, models.RolePublisher)
	seedGame(t, "Published", "RPG", &company.ID, nil)

	w := performJSON(t, router, http.MethodDelete, "/api/company/"+company.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompanyMalformedAndUnknownID(t *testing.T) {
	router := setupTest(t)

	w := performJSON(t, router, http.MethodGet, "/api/companies/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, router, http.MethodGet, "/api/companies/"+models.NewID(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, router, http.MethodDelete, "/api/company/"+models.NewID(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
