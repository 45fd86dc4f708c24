package cartController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finacademy/models"
	cartRoutes "finacademy/routers/cartRoutes"
	"finacademy/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cartResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	CartCount  int64   `json:"cart_count"`
	TotalPrice float64 `json:"total_price"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	app := fiber.New()
	cartRoutes.SetupCartRoutes(app)
	return app, db
}

func seedCourse(t *testing.T, db *gorm.DB, title string, price float64) models.Course {
	t.Helper()
	course := models.Course{
		Title:       title,
		Description: "About " + title,
		Category:    models.CategoryGeneral,
		Price:       price,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "cart_session" {
			return cookie
		}
	}
	return nil
}

func TestAnonymousAddToCartCreatesSessionKey(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", 0)

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/add-to-cart/%d", course.ID), nil))
	require.NoError(t, err)

	var body cartResponse
	testutil.DecodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.CartCount)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie, "first mutating call should set the session cookie")
	require.NotEmpty(t, cookie.Value)

	var item models.CartItem
	require.NoError(t, db.Where("session_key = ?", cookie.Value).First(&item).Error)
	assert.Equal(t, course.ID, item.CourseID)
	assert.Zero(t, item.UserID)
}

func TestAddToCartIsIdempotent(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", 0)

	first, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/add-to-cart/%d", course.ID), nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, first)
	require.NotNil(t, cookie)

	req := httptest.NewRequest("POST", fmt.Sprintf("/add-to-cart/%d", course.ID), nil)
	req.AddCookie(cookie)
	second, err := app.Test(req)
	require.NoError(t, err)

	var body cartResponse
	testutil.DecodeBody(t, second, &body)
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.CartCount)

	var count int64
	db.Model(&models.CartItem{}).Where("session_key = ?", cookie.Value).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddToCartUnknownCourse(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/add-to-cart/999", nil))
	require.NoError(t, err)

	var body cartResponse
	testutil.DecodeBody(t, resp, &body)
	assert.False(t, body.Success)
}

func TestRemoveFromCartCrossIdentityReadsAsNotFound(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", 0)

	other := models.CartItem{SessionKey: "someone-else", CourseID: course.ID}
	require.NoError(t, db.Create(&other).Error)

	req := httptest.NewRequest("POST", fmt.Sprintf("/cart/remove/%d", other.ID), nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "my-session"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body cartResponse
	testutil.DecodeBody(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Item not found", body.Message)

	// the foreign row is untouched
	var count int64
	db.Model(&models.CartItem{}).Where("session_key = ?", "someone-else").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRemoveFromCartRecomputesTotals(t *testing.T) {
	app, db := newApp(t)
	cheap := seedCourse(t, db, "Budget Basics", 10)
	pricey := seedCourse(t, db, "Stocks 101", 25.50)

	cookie := &http.Cookie{Name: "cart_session", Value: "my-session"}
	for _, course := range []models.Course{cheap, pricey} {
		req := httptest.NewRequest("POST", fmt.Sprintf("/add-to-cart/%d", course.ID), nil)
		req.AddCookie(cookie)
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	var item models.CartItem
	require.NoError(t, db.Where("session_key = ? AND course_id = ?", "my-session", cheap.ID).First(&item).Error)

	req := httptest.NewRequest("POST", fmt.Sprintf("/cart/remove/%d", item.ID), nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body cartResponse
	testutil.DecodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.CartCount)
	assert.InDelta(t, 25.50, body.TotalPrice, 0.001)
}

func TestCartDetailSumsCoursePrices(t *testing.T) {
	app, db := newApp(t)
	seedCourse(t, db, "Free", 0)
	a := seedCourse(t, db, "A", 19.99)
	b := seedCourse(t, db, "B", 30)

	user, token := testutil.CreateUser(t, db, "Shopper", "shopper@example.com", models.RoleUser)
	for _, course := range []models.Course{a, b} {
		require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: course.ID}).Error)
	}

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			CartItems  []models.CartItem `json:"cart_items"`
			TotalPrice float64           `json:"total_price"`
		} `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)

	require.Len(t, body.Data.CartItems, 2)
	assert.InDelta(t, 49.99, body.Data.TotalPrice, 0.001)
	// joined course comes along
	assert.NotEmpty(t, body.Data.CartItems[0].Course.Title)
}

func TestCheckoutConvertsCartToEnrollments(t *testing.T) {
	app, db := newApp(t)
	a := seedCourse(t, db, "Free A", 0)
	b := seedCourse(t, db, "Free B", 0)

	user, token := testutil.CreateUser(t, db, "Shopper", "shopper@example.com", models.RoleUser)
	for _, course := range []models.Course{a, b} {
		require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: course.ID}).Error)
	}

	req := httptest.NewRequest("POST", "/cart/checkout", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	assert.Equal(t, int64(2), enrollments)

	var remaining int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining)
	assert.Zero(t, remaining)
}

func TestCheckoutPaidCartRequiresPaymentRef(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Stocks 101", 49.99)

	user, token := testutil.CreateUser(t, db, "Shopper", "shopper@example.com", models.RoleUser)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: course.ID}).Error)

	req := httptest.NewRequest("POST", "/cart/checkout", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// with a reference (gateway disabled in tests, so the check passes)
	payload, _ := json.Marshal(map[string]string{"payment_ref": "pay_123"})
	req = httptest.NewRequest("POST", "/cart/checkout", bytes.NewReader(payload))
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestCheckoutEmptyCart(t *testing.T) {
	app, db := newApp(t)
	_, token := testutil.CreateUser(t, db, "Shopper", "shopper@example.com", models.RoleUser)

	req := httptest.NewRequest("POST", "/cart/checkout", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
