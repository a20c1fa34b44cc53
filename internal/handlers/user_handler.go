package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/services"
)

// ProfileProvider is the slice of the user service the handler consumes.
type ProfileProvider interface {
	UpdateProfile(user *models.User, req *dto.UpdateProfileRequest, hasField func(string) bool) (*dto.ProfileResponse, error)
	ChangePassword(user *models.User, currentPassword, newPassword, ip string) error
	DeleteAccount(user *models.User, currentPassword, confirmEmail string) error
}

type UserHandler struct {
	users ProfileProvider
}

func NewUserHandler(users ProfileProvider) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	req, ok := middleware.BodyFrom[dto.UpdateProfileRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.users.UpdateProfile(user, req, func(name string) bool {
		return middleware.HasField(c, name)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(
				dto.NewError(fiber.StatusConflict, "Email already in use"))
		}
		return err
	}

	return c.JSON(resp)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	req, ok := middleware.BodyFrom[dto.ChangePasswordRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	err := h.users.ChangePassword(user, req.CurrentPassword, req.NewPassword, c.IP())
	switch {
	case err == nil:
		return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
	case errors.Is(err, services.ErrTooManyAttempts):
		return c.Status(fiber.StatusTooManyRequests).JSON(
			dto.NewError(fiber.StatusTooManyRequests, "Too many failed attempts. Try again in 15 minutes"))
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Current password is incorrect"))
	case errors.Is(err, services.ErrSamePassword):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "New password must be different from current password"))
	case errors.Is(err, services.ErrPasswordTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "New password is too short"))
	default:
		return err
	}
}

func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}
	req, ok := middleware.BodyFrom[dto.DeleteAccountRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
	}

	err := h.users.DeleteAccount(user, req.CurrentPassword, req.ConfirmEmail)
	switch {
	case err == nil:
		return c.JSON(dto.MessageResponse{Message: "Account deleted"})
	case errors.Is(err, services.ErrConfirmEmailMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError(fiber.StatusBadRequest, "Confirmation email does not match"))
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.NewError(fiber.StatusUnauthorized, "Current password is incorrect"))
	default:
		return err
	}
}
