package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/credentials"
	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/token"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db     *gorm.DB
	tokens *token.Service
	creds  *credentials.Store
}

func NewAuthService(db *gorm.DB, tokens *token.Service, creds *credentials.Store) *AuthService {
	return &AuthService{db: db, tokens: tokens, creds: creds}
}

// Signup creates the account and issues a token immediately, so no separate
// login round-trip is needed. Email uniqueness is not pre-checked; the
// constraint violation is caught at commit time to close the check/insert race.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	hash, err := s.creds.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Birthday:     req.Birthday,
		Weight:       req.Weight,
		Gender:       req.Gender,
	}
	if req.Benchmarks != nil {
		user.Benchmarks = datatypes.JSONMap(req.Benchmarks)
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.AuthResponse{User: &user, Token: tok}, nil
}

// Login verifies credentials and issues a fresh token. Prior tokens stay
// valid; sessions are stateless.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.creds.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.AuthResponse{User: &user, Token: tok}, nil
}
