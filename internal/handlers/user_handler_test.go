package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/services"
)

type fakeProfile struct {
	updateResp *dto.ProfileResponse
	updateErr  error
	changeErr  error
	deleteErr  error

	gotUpdate    *dto.UpdateProfileRequest
	gotPresence  map[string]bool
	gotCurrent   string
	gotNew       string
	gotIP        string
	gotConfirmed string
}

func (f *fakeProfile) UpdateProfile(user *models.User, req *dto.UpdateProfileRequest, hasField func(string) bool) (*dto.ProfileResponse, error) {
	f.gotUpdate = req
	// Evaluated here, while the request is in flight: the closure reads the
	// request context, which is recycled once the handler returns.
	f.gotPresence = map[string]bool{
		"first_name": hasField("first_name"),
		"weight":     hasField("weight"),
		"gender":     hasField("gender"),
	}
	return f.updateResp, f.updateErr
}

func (f *fakeProfile) ChangePassword(user *models.User, currentPassword, newPassword, ip string) error {
	f.gotCurrent = currentPassword
	f.gotNew = newPassword
	f.gotIP = ip
	return f.changeErr
}

func (f *fakeProfile) DeleteAccount(user *models.User, currentPassword, confirmEmail string) error {
	f.gotCurrent = currentPassword
	f.gotConfirmed = confirmEmail
	return f.deleteErr
}

// injectUser stands in for the JWT middleware chain so handler tests can run
// with a pre-resolved account.
func injectUser(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("current_user", user)
		return c.Next()
	}
}

func userApp(users ProfileProvider, user *models.User) *fiber.App {
	h := NewUserHandler(users)
	app := fiber.New()
	me := app.Group("/me", injectUser(user))
	me.Get("/", h.Me)
	me.Patch("/", middleware.ValidateBody[dto.UpdateProfileRequest](), h.UpdateMe)
	me.Patch("/password", middleware.ValidateBody[dto.ChangePasswordRequest](), h.ChangePassword)
	me.Delete("/", middleware.ValidateBody[dto.DeleteAccountRequest](), h.DeleteMe)
	return app
}

func testAccount() *models.User {
	return &models.User{ID: 7, Email: "jane@x.com", FirstName: "Jane", LastName: "Doe"}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app := userApp(&fakeProfile{}, testAccount())

	status, body := doJSON(t, app, "GET", "/me/", "")
	assert.Equal(t, fiber.StatusOK, status)

	var resp struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "jane@x.com", resp.User.Email)
}

func TestUpdateMePassesFieldPresence(t *testing.T) {
	fake := &fakeProfile{updateResp: &dto.ProfileResponse{User: testAccount()}}
	app := userApp(fake, testAccount())

	status, _ := doJSON(t, app, "PATCH", "/me/", `{"first_name":"Janet","weight":null}`)
	assert.Equal(t, fiber.StatusOK, status)

	require.NotNil(t, fake.gotUpdate)
	require.NotNil(t, fake.gotUpdate.FirstName)
	assert.Equal(t, "Janet", *fake.gotUpdate.FirstName)

	require.NotNil(t, fake.gotPresence)
	assert.True(t, fake.gotPresence["first_name"])
	assert.True(t, fake.gotPresence["weight"], "explicit null still counts as present")
	assert.False(t, fake.gotPresence["gender"])
}

func TestUpdateMeDuplicateEmailIsConflict(t *testing.T) {
	app := userApp(&fakeProfile{updateErr: services.ErrEmailTaken}, testAccount())

	status, body := doJSON(t, app, "PATCH", "/me/", `{"email":"taken@x.com"}`)
	assert.Equal(t, fiber.StatusConflict, status)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Email already in use", resp.Error.Message)
}

func TestChangePasswordStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, fiber.StatusOK},
		{"locked out", services.ErrTooManyAttempts, fiber.StatusTooManyRequests},
		{"wrong current", services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"same password", services.ErrSamePassword, fiber.StatusBadRequest},
		{"too short", services.ErrPasswordTooShort, fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeProfile{changeErr: tc.err}
			app := userApp(fake, testAccount())

			status, _ := doJSON(t, app, "PATCH", "/me/password",
				`{"current_password":"old-secret","new_password":"new-secret"}`)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, "old-secret", fake.gotCurrent)
			assert.Equal(t, "new-secret", fake.gotNew)
			assert.NotEmpty(t, fake.gotIP)
		})
	}
}

func TestDeleteMeRequiresMatchingConfirmation(t *testing.T) {
	app := userApp(&fakeProfile{deleteErr: services.ErrConfirmEmailMismatch}, testAccount())

	status, body := doJSON(t, app, "DELETE", "/me/",
		`{"current_password":"secret1","confirm_email":"other@x.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Confirmation email does not match", resp.Error.Message)
}

func TestDeleteMeSuccess(t *testing.T) {
	fake := &fakeProfile{}
	app := userApp(fake, testAccount())

	status, body := doJSON(t, app, "DELETE", "/me/",
		`{"current_password":"secret1","confirm_email":"jane@x.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "jane@x.com", fake.gotConfirmed)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Account deleted", resp.Message)
}
