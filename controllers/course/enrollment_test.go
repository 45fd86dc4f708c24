package courseController_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"finacademy/models"
	courseRoutes "finacademy/routers/courseRoutes"
	"finacademy/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type enrollResponse struct {
	Success         bool   `json:"success"`
	AlreadyEnrolled bool   `json:"already_enrolled"`
	Message         string `json:"message"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func seedCourse(t *testing.T, db *gorm.DB, title string, active bool) models.Course {
	t.Helper()
	course := models.Course{
		Title:       title,
		Description: "About " + title,
		Category:    models.CategoryGeneral,
		IsActive:    active,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestEnrollTwiceYieldsOneRow(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", true)
	user, token := testutil.CreateUser(t, db, "Student", "student@example.com", models.RoleUser)

	enroll := func() enrollResponse {
		req := httptest.NewRequest("POST", fmt.Sprintf("/course/%d/enroll", course.ID), nil)
		req.Header.Set("Authorization", token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		var body enrollResponse
		testutil.DecodeBody(t, resp, &body)
		return body
	}

	first := enroll()
	assert.True(t, first.Success)
	assert.False(t, first.AlreadyEnrolled)

	second := enroll()
	assert.True(t, second.Success)
	assert.True(t, second.AlreadyEnrolled)

	var count int64
	db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollInactiveCourse(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Retired Course", false)
	_, token := testutil.CreateUser(t, db, "Student", "student@example.com", models.RoleUser)

	req := httptest.NewRequest("POST", fmt.Sprintf("/course/%d/enroll", course.ID), nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body enrollResponse
	testutil.DecodeBody(t, resp, &body)
	assert.False(t, body.Success)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", true)

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/course/%d/enroll", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetEnrollmentsListsJoinedCourses(t *testing.T) {
	app, db := newApp(t)
	course := seedCourse(t, db, "Budget Basics", true)
	user, token := testutil.CreateUser(t, db, "Student", "student@example.com", models.RoleUser)
	require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)

	req := httptest.NewRequest("GET", "/user/enrollments", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Enrollments []models.Enrollment `json:"enrollments"`
		} `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)

	require.Len(t, body.Data.Enrollments, 1)
	assert.Equal(t, "Budget Basics", body.Data.Enrollments[0].Course.Title)
}
