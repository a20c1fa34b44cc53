package dto

import (
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

// CreateActivityRequest logs one activity. The category may be supplied by
// id or by name; exactly one must resolve to an existing category.
type CreateActivityRequest struct {
	Title      string            `json:"title" validate:"required,max=20"`
	CategoryID *uint             `json:"category_id"`
	Category   *string           `json:"category" validate:"omitempty,max=50"`
	Distance   *float64          `json:"distance" validate:"required,gte=0"`
	Duration   *models.ClockTime `json:"duration" validate:"required"`
	Time       *models.ClockTime `json:"time" validate:"required"`
	Notes      *string           `json:"notes"`
	Complete   *bool             `json:"complete"`
}

// UpdateActivityRequest is a partial update: only non-nil fields change.
type UpdateActivityRequest struct {
	Title      *string           `json:"title" validate:"omitempty,max=20"`
	CategoryID *uint             `json:"category_id"`
	Category   *string           `json:"category" validate:"omitempty,max=50"`
	Distance   *float64          `json:"distance" validate:"omitempty,gte=0"`
	Duration   *models.ClockTime `json:"duration"`
	Time       *models.ClockTime `json:"time"`
	Notes      *string           `json:"notes"`
	Complete   *bool             `json:"complete"`
}

// ActivityResponse is the wire shape of one activity, with the category
// name denormalized alongside its id.
type ActivityResponse struct {
	ID         uint             `json:"id"`
	Title      string           `json:"title"`
	CategoryID uint             `json:"category_id"`
	Category   string           `json:"category"`
	Distance   float64          `json:"distance"`
	Duration   models.ClockTime `json:"duration"`
	Notes      *string          `json:"notes"`
	UserID     uint             `json:"user_id"`
	Time       models.ClockTime `json:"time"`
	Complete   bool             `json:"complete"`
}

// NewActivityResponse maps a model (with Category preloaded) to its wire shape.
func NewActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:         a.ID,
		Title:      a.Title,
		CategoryID: a.CategoryID,
		Category:   a.Category.Name,
		Distance:   a.Distance,
		Duration:   a.Duration,
		Notes:      a.Notes,
		UserID:     a.UserID,
		Time:       a.Time,
		Complete:   a.Complete,
	}
}

type ActivityEnvelope struct {
	Activity ActivityResponse `json:"activity"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Count      int                `json:"count"`
}

// ListActivitiesQuery holds the parsed, clamped list filters.
type ListActivitiesQuery struct {
	CategoryID *uint
	Complete   *bool
	Limit      int
	Offset     int
}

type CategoriesResponse struct {
	Categories []models.ActivityCategory `json:"categories"`
}
