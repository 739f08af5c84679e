package courseController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tchadskills/config"
	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	courseValidator "tchadskills/validators/course"
	enrollmentValidator "tchadskills/validators/enrollment"
	reviewValidator "tchadskills/validators/review"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

// setupTestApp wires the same handler chains the routers register.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()
	db := setupTestDB(t)

	app := fiber.New()

	app.Get("/api/courses", GetAllCourses)
	app.Post("/api/courses", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		courseValidator.CreateCourse(), CreateCourse)
	app.Get("/api/courses/:slug", courseValidator.CourseSlug(), GetCourseBySlug)
	app.Get("/api/courses/:slug/reviews", courseValidator.CourseSlug(), GetCourseReviews)
	app.Post("/api/courses/:slug/enroll", middleware.JWTMiddleware,
		courseValidator.CourseSlug(), EnrollInCourse)
	app.Post("/api/courses/:slug/review", middleware.JWTMiddleware,
		courseValidator.CourseSlug(), reviewValidator.SubmitReview(), SubmitReview)

	app.Get("/api/enrollments", middleware.JWTMiddleware, GetEnrollments)
	app.Post("/api/enrollments/:id/update_progress", middleware.JWTMiddleware,
		enrollmentValidator.EnrollmentID(), enrollmentValidator.UpdateProgress(), UpdateProgress)

	app.Get("/api/certificates", middleware.JWTMiddleware, GetUserCertificates)
	app.Get("/api/certificates/:id/verify", VerifyCertificate)

	return app, db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, instructorID uint, title, slug string, price float64) models.Course {
	t.Helper()
	course := models.Course{
		Title:        title,
		Slug:         slug,
		Description:  "Test course description",
		InstructorID: instructorID,
		Level:        models.LevelBeginner,
		Language:     "fr",
		Price:        price,
		Currency:     "XAF",
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func jsonUnmarshal(raw json.RawMessage, v interface{}) error {
	return json.Unmarshal(raw, v)
}

func progressURL(id uint) string {
	return fmt.Sprintf("/api/enrollments/%d/update_progress", id)
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}
