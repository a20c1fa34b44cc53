package dto

import (
	"github.com/fittrackapp/fittrack-backend/internal/models"
)

type SignupRequest struct {
	Email      string                 `json:"email" validate:"required,email"`
	Password   string                 `json:"password" validate:"required,min=6"`
	FirstName  string                 `json:"first_name" validate:"required"`
	LastName   string                 `json:"last_name" validate:"required"`
	Birthday   *models.Date           `json:"birthday"`
	Weight     *int                   `json:"weight"`
	Gender     *string                `json:"gender"`
	Benchmarks map[string]interface{} `json:"benchmarks"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is returned by signup and login: the profile plus a fresh
// bearer token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorBody is the single error envelope every failure is normalized to.
type ErrorBody struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
