package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/config"
	"github.com/fittrackapp/fittrack-backend/internal/credentials"
	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/token"
)

var (
	ErrTooManyAttempts      = errors.New("too many failed attempts, try again later")
	ErrSamePassword         = errors.New("new password must be different from current password")
	ErrPasswordTooShort     = errors.New("new password is too short")
	ErrConfirmEmailMismatch = errors.New("confirmation email does not match")
)

type UserService struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *token.Service
	creds  *credentials.Store

	// now is swappable so tests can advance the lockout window.
	now func() time.Time
}

func NewUserService(db *gorm.DB, cfg *config.Config, tokens *token.Service, creds *credentials.Store) *UserService {
	return &UserService{db: db, cfg: cfg, tokens: tokens, creds: creds, now: time.Now}
}

// UpdateProfile applies a partial update: only fields present in the request
// change. Changing the email re-issues a token, since the email is the token
// subject. hasField reports raw-body presence, which distinguishes an
// explicit null from an absent field for the benchmarks document.
func (s *UserService) UpdateProfile(user *models.User, req *dto.UpdateProfileRequest, hasField func(string) bool) (*dto.ProfileResponse, error) {
	oldEmail := user.Email

	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.FirstName != nil && *req.FirstName != "" {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		user.LastName = *req.LastName
	}
	if req.Birthday != nil {
		user.Birthday = req.Birthday
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Gender != nil && *req.Gender != "" {
		user.Gender = req.Gender
	}
	if hasField("benchmarks") {
		user.Benchmarks = datatypes.JSONMap(req.Benchmarks)
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := s.creds.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	resp := &dto.ProfileResponse{User: user}
	if user.Email != oldEmail {
		tok, err := s.tokens.Issue(user.Email)
		if err != nil {
			return nil, fmt.Errorf("issue token: %w", err)
		}
		resp.Token = tok
	}
	return resp, nil
}

// ChangePassword runs the lockout state machine: once the recent failure
// count reaches the threshold the request is rejected up front, without
// verification and without appending another audit row. The lock releases
// by itself as failures age past the window; nothing is swept in the
// background.
func (s *UserService) ChangePassword(user *models.User, currentPassword, newPassword, ip string) error {
	since := s.now().Add(-s.cfg.LockoutWindow)
	failures, err := s.creds.RecentFailureCount(user.ID, since)
	if err != nil {
		return err
	}
	if failures >= int64(s.cfg.LockoutThreshold) {
		return ErrTooManyAttempts
	}

	if !s.creds.Verify(currentPassword, user.PasswordHash) {
		if _, err := s.creds.RecordAttempt(user.ID, ip, false); err != nil {
			return err
		}
		return ErrInvalidCredentials
	}

	if s.creds.Verify(newPassword, user.PasswordHash) {
		return ErrSamePassword
	}
	if len(newPassword) < s.cfg.PasswordMinLength {
		return ErrPasswordTooShort
	}

	hash, err := s.creds.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.db.Model(user).Update("password_hash", hash).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = hash

	_, err = s.creds.RecordAttempt(user.ID, ip, true)
	return err
}

// DeleteAccount requires the current password plus an exact confirmation of
// the account email, then cascades to owned activities and audit rows in
// one transaction.
func (s *UserService) DeleteAccount(user *models.User, currentPassword, confirmEmail string) error {
	if confirmEmail != user.Email {
		return ErrConfirmEmailMismatch
	}
	if !s.creds.Verify(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PasswordChangeLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
