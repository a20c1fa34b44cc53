package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

type CategoryProvider interface {
	List(q string) ([]models.ActivityCategory, error)
}

type CategoryHandler struct {
	categories CategoryProvider
}

func NewCategoryHandler(categories CategoryProvider) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.categories.List(c.Query("q"))
	if err != nil {
		return err
	}
	if cats == nil {
		cats = []models.ActivityCategory{}
	}
	return c.JSON(dto.CategoriesResponse{Categories: cats})
}
