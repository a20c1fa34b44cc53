package dto

import (
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

// UpdateProfileRequest is a partial update: only non-nil fields are applied.
type UpdateProfileRequest struct {
	Email      *string                `json:"email" validate:"omitempty,email"`
	FirstName  *string                `json:"first_name"`
	LastName   *string                `json:"last_name"`
	Birthday   *models.Date           `json:"birthday"`
	Weight     *int                   `json:"weight"`
	Gender     *string                `json:"gender"`
	Benchmarks map[string]interface{} `json:"benchmarks"`
	Password   *string                `json:"password" validate:"omitempty,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type DeleteAccountRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	ConfirmEmail    string `json:"confirm_email" validate:"required,email"`
}

// ProfileResponse carries the profile and, when the email changed, a
// re-issued token for the new subject.
type ProfileResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token,omitempty"`
}
