package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/services"
)

// ActivityProvider is the slice of the activity service the handler consumes.
type ActivityProvider interface {
	Create(userID uint, req *dto.CreateActivityRequest) (*models.Activity, error)
	List(userID uint, q dto.ListActivitiesQuery) ([]models.Activity, error)
	Get(userID, activityID uint) (*models.Activity, error)
	Update(userID, activityID uint, req *dto.UpdateActivityRequest, hasField func(string) bool) (*models.Activity, error)
	Delete(userID, activityID uint) error
}

type ActivityHandler struct {
	activities ActivityProvider
}

func NewActivityHandler(activities ActivityProvider) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	req, ok := middleware.BodyFrom[dto.CreateActivityRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	activity, err := h.activities.Create(user.ID, req)
	if err != nil {
		return activityError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ActivityEnvelope{
		Activity: dto.NewActivityResponse(activity),
	})
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}

	q := dto.ListActivitiesQuery{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			q.CategoryID = &cid
		}
	}
	if flag := parseCompleteFlag(c.Query("complete")); flag != nil {
		q.Complete = flag
	}

	activities, err := h.activities.List(user.ID, q)
	if err != nil {
		return err
	}

	resp := dto.ActivityListResponse{
		Activities: make([]dto.ActivityResponse, 0, len(activities)),
		Count:      len(activities),
	}
	for i := range activities {
		resp.Activities = append(resp.Activities, dto.NewActivityResponse(&activities[i]))
	}
	return c.JSON(resp)
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	activityID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(
			dto.NewError(fiber.StatusNotFound, "Activity not found"))
	}

	activity, err := h.activities.Get(user.ID, activityID)
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(dto.ActivityEnvelope{Activity: dto.NewActivityResponse(activity)})
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	activityID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(
			dto.NewError(fiber.StatusNotFound, "Activity not found"))
	}
	req, ok := middleware.BodyFrom[dto.UpdateActivityRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	activity, err := h.activities.Update(user.ID, activityID, req, func(name string) bool {
		return middleware.HasField(c, name)
	})
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(dto.ActivityEnvelope{Activity: dto.NewActivityResponse(activity)})
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	activityID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(
			dto.NewError(fiber.StatusNotFound, "Activity not found"))
	}

	if err := h.activities.Delete(user.ID, activityID); err != nil {
		return activityError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func activityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(
			dto.NewError(fiber.StatusNotFound, "Activity not found"))
	case errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(
			dto.NewError(fiber.StatusNotFound, "Category not found"))
	case errors.Is(err, services.ErrCategoryRequired):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "category_id or category is required"))
	default:
		return err
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseCompleteFlag interprets the completion filter; anything outside the
// recognized spellings means "no filter".
func parseCompleteFlag(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	default:
		return nil
	}
}
