package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

type fakeCategories struct {
	resp []models.ActivityCategory
	err  error
	gotQ string
}

func (f *fakeCategories) List(q string) ([]models.ActivityCategory, error) {
	f.gotQ = q
	return f.resp, f.err
}

func categoryApp(categories CategoryProvider) *fiber.App {
	h := NewCategoryHandler(categories)
	app := fiber.New()
	app.Get("/activity-categories", h.List)
	return app
}

func TestListCategoriesPassesSearchQuery(t *testing.T) {
	fake := &fakeCategories{resp: []models.ActivityCategory{
		{ID: 1, Name: "Run"},
		{ID: 2, Name: "Weight Training"},
	}}
	app := categoryApp(fake)

	status, body := doJSON(t, app, "GET", "/activity-categories?q=r", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "r", fake.gotQ)

	var resp dto.CategoriesResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "Run", resp.Categories[0].Name)
}

func TestListCategoriesEmptyIsArrayNotNull(t *testing.T) {
	app := categoryApp(&fakeCategories{})

	status, body := doJSON(t, app, "GET", "/activity-categories", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"categories":[]`)
}
