package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
	"github.com/fittrackapp/fittrack-backend/internal/middleware"
	"github.com/fittrackapp/fittrack-backend/internal/models"
	"github.com/fittrackapp/fittrack-backend/internal/services"
)

type fakeAuth struct {
	signupResp *dto.AuthResponse
	signupErr  error
	loginResp  *dto.AuthResponse
	loginErr   error

	gotSignup *dto.SignupRequest
	gotLogin  *dto.LoginRequest
}

func (f *fakeAuth) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	f.gotSignup = req
	return f.signupResp, f.signupErr
}

func (f *fakeAuth) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	f.gotLogin = req
	return f.loginResp, f.loginErr
}

func authApp(auth AuthProvider) *fiber.App {
	h := NewAuthHandler(auth)
	app := fiber.New()
	app.Post("/signup", middleware.ValidateBody[dto.SignupRequest](), h.Signup)
	app.Post("/login", middleware.ValidateBody[dto.LoginRequest](), h.Login)
	app.Post("/logout", h.Logout)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestSignupCreatesAccountAndToken(t *testing.T) {
	fake := &fakeAuth{signupResp: &dto.AuthResponse{
		User:  &models.User{ID: 1, Email: "a@x.com", FirstName: "A", LastName: "B"},
		Token: "tok-123",
	}}
	app := authApp(fake)

	status, body := doJSON(t, app, "POST", "/signup",
		`{"email":"a@x.com","password":"secret1","first_name":"A","last_name":"B"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, "tok-123", resp.Token)
	require.NotNil(t, fake.gotSignup)
	assert.Equal(t, "secret1", fake.gotSignup.Password)
}

func TestSignupDuplicateEmailIsConflict(t *testing.T) {
	app := authApp(&fakeAuth{signupErr: services.ErrEmailTaken})

	status, body := doJSON(t, app, "POST", "/signup",
		`{"email":"a@x.com","password":"secret1","first_name":"A","last_name":"B"}`)
	assert.Equal(t, fiber.StatusConflict, status)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, fiber.StatusConflict, resp.Error.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := authApp(&fakeAuth{loginErr: services.ErrInvalidCredentials})

	status, body := doJSON(t, app, "POST", "/login", `{"email":"a@x.com","password":"wrong-1"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, fiber.StatusUnauthorized, resp.Error.Code)
}

func TestLoginSuccess(t *testing.T) {
	fake := &fakeAuth{loginResp: &dto.AuthResponse{
		User:  &models.User{ID: 1, Email: "a@x.com"},
		Token: "tok-456",
	}}
	app := authApp(fake)

	status, body := doJSON(t, app, "POST", "/login", `{"email":"a@x.com","password":"secret1"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "tok-456", resp.Token)
}

func TestLogoutIsStateless(t *testing.T) {
	app := authApp(&fakeAuth{})

	status, body := doJSON(t, app, "POST", "/logout", "")
	assert.Equal(t, fiber.StatusOK, status)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "logged out", resp.Message)
}
