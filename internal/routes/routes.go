package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/config"
	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/handlers"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/token"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	tokens *token.Service,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	activityHandler *handlers.ActivityHandler,
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Public category lookup
	api.Get("/activity-categories", categoryHandler.List)

	// Signup and login share a stricter sliding-window limit: 10 req/min per
	// IP across both. Attached per-route so no other endpoint is throttled.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimiter, middleware.ValidateBody[dto.SignupRequest](), authHandler.Signup)
	api.Post("/login", authLimiter, middleware.ValidateBody[dto.LoginRequest](), authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	// Everything under /me requires a valid token resolved to an account
	me := api.Group("/me", middleware.Protected(cfg), middleware.CurrentUser(db, tokens))
	me.Get("/", userHandler.Me)
	me.Patch("/", middleware.ValidateBody[dto.UpdateProfileRequest](), userHandler.UpdateMe)
	me.Patch("/password", middleware.ValidateBody[dto.ChangePasswordRequest](), userHandler.ChangePassword)
	me.Delete("/", middleware.ValidateBody[dto.DeleteAccountRequest](), userHandler.DeleteMe)

	me.Post("/activities", middleware.ValidateBody[dto.CreateActivityRequest](), activityHandler.Create)
	me.Get("/activities", activityHandler.List)
	me.Get("/activities/:id", activityHandler.Get)
	me.Patch("/activities/:id", middleware.ValidateBody[dto.UpdateActivityRequest](), activityHandler.Update)
	me.Delete("/activities/:id", activityHandler.Delete)

	// Legacy delete path kept for old clients
	api.Delete("/activities/:id", middleware.Protected(cfg), middleware.CurrentUser(db, tokens), activityHandler.Delete)
}
