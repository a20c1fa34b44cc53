// Command seed provisions the database with the stock activity categories,
// two sample accounts with activities, and prints ready-to-use bearer
// tokens for manual API testing.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/config"
	"github.com/fittrackapp/fittrack-backend/internal/credentials"
	"github.com/fittrackapp/fittrack-backend/internal/database"
	"github.com/fittrackapp/fittrack-backend/internal/logging"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/services"
	"github.com/fittrackapp/fittrack-backend/internal/token"
)

var stockCategories = []string{"Run", "Bike", "Swim", "Weight Training", "Yoga"}

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewService(cfg.JWTSecret)
	creds := credentials.NewStore(db, cfg.BcryptCost)
	categories := services.NewCategoryService(db)

	if err := categories.Ensure(stockCategories); err != nil {
		slog.Error("seeding categories failed", "error", err)
		os.Exit(1)
	}

	user1, err := upsertUser(db, creds, "test.user1@example.com", "password123", "Jane", "Doe")
	if err != nil {
		slog.Error("seeding user failed", "error", err)
		os.Exit(1)
	}
	user2, err := upsertUser(db, creds, "john.doe@example.com", "password123", "John", "Doe")
	if err != nil {
		slog.Error("seeding user failed", "error", err)
		os.Exit(1)
	}

	if err := resetActivities(db, user1,
		sampleActivity("Morning Run", "Run", 5.0, "00:42:30", "06:30:00", "Tempo run", true),
		sampleActivity("Evening Yoga", "Yoga", 0.0, "00:30:00", "19:00:00", "Vinyasa flow", true),
	); err != nil {
		slog.Error("seeding activities failed", "error", err)
		os.Exit(1)
	}
	if err := resetActivities(db, user2,
		sampleActivity("Lunch Ride", "Bike", 12.5, "00:50:00", "12:15:00", "Windy", true),
		sampleActivity("Pool Swim", "Swim", 1.2, "00:40:00", "07:00:00", "Drills", false),
	); err != nil {
		slog.Error("seeding activities failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Seed complete. Test users and tokens:")
	for _, u := range []*models.User{user1, user2} {
		tok, err := tokens.Issue(u.Email)
		if err != nil {
			slog.Error("issuing seed token failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("- %s / password123\n  Bearer %s\n", u.Email, tok)
	}
}

func upsertUser(db *gorm.DB, creds *credentials.Store, email, password, firstName, lastName string) (*models.User, error) {
	hash, err := creds.Hash(password)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		// Reset to known values for testing
		user.FirstName = firstName
		user.LastName = lastName
		user.PasswordHash = hash
		return &user, db.Save(&user).Error
	}

	user = models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	return &user, db.Create(&user).Error
}

type seedActivity struct {
	title    string
	category string
	distance float64
	duration string
	time     string
	notes    string
	complete bool
}

func sampleActivity(title, category string, distance float64, duration, clock, notes string, complete bool) seedActivity {
	return seedActivity{
		title:    title,
		category: category,
		distance: distance,
		duration: duration,
		time:     clock,
		notes:    notes,
		complete: complete,
	}
}

func resetActivities(db *gorm.DB, user *models.User, acts ...seedActivity) error {
	if err := db.Where("user_id = ?", user.ID).Delete(&models.Activity{}).Error; err != nil {
		return err
	}

	for _, a := range acts {
		var cat models.ActivityCategory
		if err := db.Where("LOWER(name) = LOWER(?)", a.category).First(&cat).Error; err != nil {
			return fmt.Errorf("category %q missing: %w", a.category, err)
		}

		duration, err := models.ParseClockTime(a.duration)
		if err != nil {
			return err
		}
		clock, err := models.ParseClockTime(a.time)
		if err != nil {
			return err
		}

		notes := a.notes
		activity := models.Activity{
			UserID:     user.ID,
			CategoryID: cat.ID,
			Title:      a.title,
			Distance:   a.distance,
			Duration:   duration,
			Time:       clock,
			Notes:      &notes,
			Complete:   a.complete,
		}
		if err := db.Create(&activity).Error; err != nil {
			return err
		}
	}
	return nil
}
