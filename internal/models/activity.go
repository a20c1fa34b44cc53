package models

import "time"

// ActivityCategory is a shared lookup row. Name uniqueness is enforced
// case-insensitively by the category service before insert; the index
// backstops exact duplicates.
type ActivityCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

func (ActivityCategory) TableName() string { return "activity_categories" }

// Activity is one recorded exercise session owned by a single user.
type Activity struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"not null;index" json:"user_id"`
	CategoryID uint    `gorm:"not null;index" json:"category_id"`
	Title      string  `gorm:"size:20;not null" json:"title"`
	Distance   float64 `gorm:"not null" json:"distance"`
	// Duration and Time are clock values ("HH:MM:SS"), not epoch offsets.
	Duration  ClockTime `gorm:"not null" json:"duration"`
	Time      ClockTime `gorm:"not null" json:"time"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	Complete  bool      `gorm:"not null;default:false" json:"complete"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	User     User             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Category ActivityCategory `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// PasswordChangeLog is one append-only password-change attempt record.
// Rows are never updated; the change-password rate limiter counts recent
// failures per user.
type PasswordChangeLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	IP        string    `gorm:"size:45" json:"ip"`
	Success   bool      `gorm:"not null" json:"success"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
