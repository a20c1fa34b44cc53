package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is an account holder. The email doubles as the bearer-token subject,
// so changing it invalidates previously issued tokens.
type User struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Email        string            `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName    string            `gorm:"size:100;not null" json:"first_name"`
	LastName     string            `gorm:"size:100;not null" json:"last_name"`
	PasswordHash string            `gorm:"not null" json:"-"`
	Birthday     *Date             `json:"birthday"`
	Weight       *int              `json:"weight"`
	Gender       *string           `gorm:"size:50" json:"gender"`
	Benchmarks   datatypes.JSONMap `gorm:"type:jsonb" json:"benchmarks"`
	CreatedAt    time.Time         `json:"-"`
	UpdatedAt    time.Time         `json:"-"`
}
