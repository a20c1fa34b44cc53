package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/services"
)

// AuthProvider is the slice of the auth service the handler consumes.
type AuthProvider interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthHandler struct {
	auth AuthProvider
}

func NewAuthHandler(auth AuthProvider) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req, ok := middleware.BodyFrom[dto.SignupRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.auth.Signup(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(
				dto.NewError(fiber.StatusConflict, "Email already registered"))
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, ok := middleware.BodyFrom[dto.LoginRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.NewError(fiber.StatusUnauthorized, "Invalid email or password"))
		}
		return err
	}

	return c.JSON(resp)
}

// Logout is purely client-side token disposal; nothing changes server-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}
