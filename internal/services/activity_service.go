package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryRequired = errors.New("category_id or category is required")
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// ClampPage bounds list pagination: limit to [1,100] with a default of 50,
// offset to >= 0.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		if limit == 0 {
			limit = defaultListLimit
		} else {
			limit = 1
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// resolveCategory looks the category up by id, or by case-insensitive exact
// name match. Categories are never created from activity input.
func (s *ActivityService) resolveCategory(categoryID *uint, name *string) (*models.ActivityCategory, error) {
	var cat models.ActivityCategory
	var err error
	switch {
	case categoryID != nil:
		err = s.db.First(&cat, *categoryID).Error
	case name != nil && strings.TrimSpace(*name) != "":
		err = s.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(*name)).First(&cat).Error
	default:
		return nil, ErrCategoryRequired
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	return &cat, nil
}

func (s *ActivityService) Create(userID uint, req *dto.CreateActivityRequest) (*models.Activity, error) {
	cat, err := s.resolveCategory(req.CategoryID, req.Category)
	if err != nil {
		return nil, err
	}

	activity := models.Activity{
		UserID:     userID,
		CategoryID: cat.ID,
		Title:      req.Title,
		Distance:   *req.Distance,
		Duration:   *req.Duration,
		Time:       *req.Time,
		Notes:      req.Notes,
	}
	if req.Complete != nil {
		activity.Complete = *req.Complete
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	activity.Category = *cat
	return &activity, nil
}

// List returns the user's activities, newest id first.
func (s *ActivityService) List(userID uint, q dto.ListActivitiesQuery) ([]models.Activity, error) {
	limit, offset := ClampPage(q.Limit, q.Offset)

	query := s.db.Preload("Category").Where("user_id = ?", userID)
	if q.CategoryID != nil {
		query = query.Where("category_id = ?", *q.CategoryID)
	}
	if q.Complete != nil {
		query = query.Where("complete = ?", *q.Complete)
	}

	var activities []models.Activity
	err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *ActivityService) Get(userID, activityID uint) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("load activity: %w", err)
	}
	return &activity, nil
}

// Update applies a partial update. hasField reports raw-body presence so an
// explicit "notes": null clears the notes while an absent field leaves them.
func (s *ActivityService) Update(userID, activityID uint, req *dto.UpdateActivityRequest, hasField func(string) bool) (*models.Activity, error) {
	activity, err := s.Get(userID, activityID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.CategoryID != nil || (req.Category != nil && *req.Category != "") {
		cat, err := s.resolveCategory(req.CategoryID, req.Category)
		if err != nil {
			return nil, err
		}
		activity.CategoryID = cat.ID
		activity.Category = *cat
	}
	if req.Distance != nil {
		activity.Distance = *req.Distance
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}
	if req.Time != nil {
		activity.Time = *req.Time
	}
	if hasField("notes") {
		activity.Notes = req.Notes
	}
	if req.Complete != nil {
		activity.Complete = *req.Complete
	}

	if err := s.db.Save(activity).Error; err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return activity, nil
}

func (s *ActivityService) Delete(userID, activityID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", activityID, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return fmt.Errorf("delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}
