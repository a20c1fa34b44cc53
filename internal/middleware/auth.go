package middleware

import (
	"errors"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/config"
	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/token"
)

const currentUserKey = "current_user"

// Protected verifies the "Authorization: Bearer <token>" header signature.
// The accepted algorithm is pinned to HS256, so a token signed with any
// other method is rejected even when it carries the right secret. A missing
// header, a malformed prefix, or a bad signature all reject with 401 before
// any handler runs.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.JWTSecret),
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.NewError(fiber.StatusUnauthorized, "Invalid or missing bearer token"))
		},
	})
}

// CurrentUser resolves the bearer token's email subject to an account and
// stores it in locals for this request only. Verification goes through the
// token service so there is a single pinned verification path. An account
// that no longer exists is a 404, deliberately distinct from the 401
// signature failures; any other lookup failure propagates as a server error.
func CurrentUser(db *gorm.DB, tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		email, err := tokens.Verify(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.NewError(fiber.StatusUnauthorized, "Invalid or missing bearer token"))
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(
					dto.NewError(fiber.StatusNotFound, "Account not found"))
			}
			return err
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// UserFrom returns the account resolved by CurrentUser.
func UserFrom(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	return user, ok
}
