// Package credentials owns password hashing and the append-only
// password-change audit log that drives the change-password rate limiter.
package credentials

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/models"
)

type Store struct {
	db   *gorm.DB
	cost int
}

func NewStore(db *gorm.DB, cost int) *Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{db: db, cost: cost}
}

// Hash returns a salted bcrypt hash. The salt is randomized per call, so
// hashing the same plaintext twice yields different strings.
func (s *Store) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (s *Store) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// RecordAttempt appends one audit row. Rows are immutable once written.
func (s *Store) RecordAttempt(userID uint, ip string, success bool) (*models.PasswordChangeLog, error) {
	entry := models.PasswordChangeLog{
		UserID:  userID,
		IP:      ip,
		Success: success,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("record password attempt: %w", err)
	}
	return &entry, nil
}

// RecentFailureCount counts failed attempts for the user at or after since.
func (s *Store) RecentFailureCount(userID uint, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.PasswordChangeLog{}).
		Where("user_id = ? AND success = ? AND created_at >= ?", userID, false, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count recent failures: %w", err)
	}
	return count, nil
}
