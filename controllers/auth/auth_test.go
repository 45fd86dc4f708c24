package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"finacademy/models"
	authRoutes "finacademy/routers/authRoutes"
	"finacademy/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type authEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	} `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload map[string]string) (*fiber.App, int, authEnvelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out authEnvelope
	testutil.DecodeBody(t, resp, &out)
	return app, resp.StatusCode, out
}

func TestRegisterCreatesUserProfileAndToken(t *testing.T) {
	app, db := newApp(t)

	_, status, body := postJSON(t, app, "/register", map[string]string{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "password123",
	})

	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, body.Status)
	assert.NotEmpty(t, body.Data.Token, "registration auto-logs the user in")
	assert.Equal(t, models.RoleUser, body.Data.User.Role)

	// exactly one profile, created as part of registration
	var profiles int64
	db.Model(&models.Profile{}).Where("user_id = ?", body.Data.User.ID).Count(&profiles)
	assert.Equal(t, int64(1), profiles)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, db := newApp(t)
	testutil.CreateUser(t, db, "Ann", "ann@example.com", models.RoleUser)

	_, status, _ := postJSON(t, app, "/register", map[string]string{
		"name":     "Another Ann",
		"email":    "ann@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRegisterEmailHeldBySoftDeletedAccount(t *testing.T) {
	app, db := newApp(t)
	user, _ := testutil.CreateUser(t, db, "Ann", "ann@example.com", models.RoleUser)
	require.NoError(t, db.Delete(&user).Error)

	// the soft-deleted row is invisible to the pre-check but still occupies
	// the unique email index, so the insert itself must surface the conflict
	_, status, _ := postJSON(t, app, "/register", map[string]string{
		"name":     "New Ann",
		"email":    "ann@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, status)

	var live int64
	db.Model(&models.User{}).Where("email = ?", "ann@example.com").Count(&live)
	assert.Zero(t, live)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newApp(t)

	_, status, _ := postJSON(t, app, "/register", map[string]string{
		"name":     "Ann",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestLogin(t *testing.T) {
	app, db := newApp(t)
	testutil.CreateUser(t, db, "Ann", "ann@example.com", models.RoleUser)

	_, status, body := postJSON(t, app, "/login", map[string]string{
		"email":    "ann@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body.Data.Token)

	_, status, _ = postJSON(t, app, "/login", map[string]string{
		"email":    "ann@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLogoutRequiresToken(t *testing.T) {
	app, db := newApp(t)
	_, token := testutil.CreateUser(t, db, "Ann", "ann@example.com", models.RoleUser)

	resp, err := app.Test(httptest.NewRequest("POST", "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
