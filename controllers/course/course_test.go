package courseController

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"tchadskills/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type courseListData struct {
	Count    int64           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []models.Course `json:"results"`
}

func TestGetAllCoursesPublishedOnly(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)
	createTestCourse(t, db, instructor.ID, "Published Course", "published-course", 5000)

	draft := createTestCourse(t, db, instructor.ID, "Draft Course", "draft-course", 5000)
	require.NoError(t, db.Model(&draft).Update("is_published", false).Error)

	resp, body := doRequest(t, app, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data courseListData
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	assert.Equal(t, int64(1), data.Count)
	require.Len(t, data.Results, 1)
	assert.Equal(t, "published-course", data.Results[0].Slug)
	assert.Nil(t, data.Next)
	assert.Nil(t, data.Previous)
}

func TestGetAllCoursesFilters(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)

	beginner := createTestCourse(t, db, instructor.ID, "Go for Beginners", "go-for-beginners", 5000)
	advanced := createTestCourse(t, db, instructor.ID, "Advanced Go", "advanced-go", 10000)
	require.NoError(t, db.Model(&advanced).Update("level", models.LevelAdvanced).Error)

	resp, body := doRequest(t, app, http.MethodGet, "/api/courses?level=advanced", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data courseListData
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	assert.Equal(t, int64(1), data.Count)
	require.Len(t, data.Results, 1)
	assert.Equal(t, advanced.Slug, data.Results[0].Slug)

	resp, body = doRequest(t, app, http.MethodGet, "/api/courses?level=beginner", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	assert.Equal(t, int64(1), data.Count)
	require.Len(t, data.Results, 1)
	assert.Equal(t, beginner.Slug, data.Results[0].Slug)
}

func TestGetAllCoursesSearchByInstructorName(t *testing.T) {
	app, db := setupTestApp(t)

	moussa := createTestUser(t, db, "Moussa Deby", "moussa@tchadskills.com", models.RoleInstructor)
	fatime := createTestUser(t, db, "Fatime Haroun", "fatime@tchadskills.com", models.RoleInstructor)

	createTestCourse(t, db, moussa.ID, "Comptabilite", "comptabilite", 5000)
	createTestCourse(t, db, fatime.ID, "Marketing Digital", "marketing-digital", 8000)

	resp, body := doRequest(t, app, http.MethodGet, "/api/courses?search=moussa", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data courseListData
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	assert.Equal(t, int64(1), data.Count)
	require.Len(t, data.Results, 1)
	assert.Equal(t, "comptabilite", data.Results[0].Slug)

	// Title search is case-insensitive
	resp, body = doRequest(t, app, http.MethodGet, "/api/courses?search=MARKETING", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	assert.Equal(t, int64(1), data.Count)
}

func TestGetAllCoursesOrdering(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)
	createTestCourse(t, db, instructor.ID, "Cheap", "cheap", 1000)
	createTestCourse(t, db, instructor.ID, "Expensive", "expensive", 20000)
	createTestCourse(t, db, instructor.ID, "Middle", "middle", 5000)

	resp, body := doRequest(t, app, http.MethodGet, "/api/courses?ordering=price", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data courseListData
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	require.Len(t, data.Results, 3)
	assert.Equal(t, "cheap", data.Results[0].Slug)
	assert.Equal(t, "expensive", data.Results[2].Slug)

	resp, body = doRequest(t, app, http.MethodGet, "/api/courses?ordering=-price", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, jsonUnmarshal(body.Data, &data))
	require.Len(t, data.Results, 3)
	assert.Equal(t, "expensive", data.Results[0].Slug)

	// Unknown ordering fields fall back to the default instead of erroring
	resp, _ = doRequest(t, app, http.MethodGet, "/api/courses?ordering=password", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetCourseBySlug(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)
	course := createTestCourse(t, db, instructor.ID, "Intro to Go", "intro-to-go", 5000)

	section := models.CourseSection{CourseID: course.ID, Title: "Getting Started", DisplayOrder: 1}
	require.NoError(t, db.Create(&section).Error)
	require.NoError(t, db.Create(&models.Lesson{
		SectionID: section.ID, Title: "Hello World", ContentType: models.ContentTypeVideo,
		DisplayOrder: 1, IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.Lesson{
		SectionID: section.ID, Title: "Unreleased", ContentType: models.ContentTypeVideo,
		DisplayOrder: 2, IsPublished: false,
	}).Error)

	resp, body := doRequest(t, app, http.MethodGet, "/api/courses/intro-to-go", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Course
	require.NoError(t, jsonUnmarshal(body.Data, &fetched))
	assert.Equal(t, course.ID, fetched.ID)
	require.Len(t, fetched.Sections, 1)
	require.Len(t, fetched.Sections[0].Lessons, 1)
	assert.Equal(t, "Hello World", fetched.Sections[0].Lessons[0].Title)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/courses/no-such-course", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCourse(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)

	resp, body := doRequest(t, app, http.MethodPost, "/api/courses", tokenFor(t, instructor),
		map[string]interface{}{
			"title":        "Nouvelle Formation",
			"description":  "Une formation complete",
			"price":        7500,
			"is_published": true,
		})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Course
	require.NoError(t, jsonUnmarshal(body.Data, &created))
	assert.Equal(t, "nouvelle-formation", created.Slug)
	assert.Equal(t, instructor.ID, created.InstructorID)
	assert.Equal(t, models.LevelBeginner, created.Level)
	assert.Equal(t, "XAF", created.Currency)
	assert.NotNil(t, created.PublishedAt)

	// Same title gets a suffixed slug
	resp, body = doRequest(t, app, http.MethodPost, "/api/courses", tokenFor(t, instructor),
		map[string]interface{}{
			"title":       "Nouvelle Formation",
			"description": "Une formation complete",
			"price":       7500,
		})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, jsonUnmarshal(body.Data, &created))
	assert.Equal(t, "nouvelle-formation-2", created.Slug)
}

func TestCreateCourseSlugTakenDuringCreate(t *testing.T) {
	app, db := setupTestApp(t)

	instructor := createTestUser(t, db, "Prof", "prof@tchadskills.com", models.RoleInstructor)
	token := tokenFor(t, instructor)

	// Plant a rival row with the chosen slug right before the insert, the
	// way a concurrent create would between the uniqueness check and Create.
	rivalPlanted := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("plant_rival_slug", func(tx *gorm.DB) {
			course, ok := tx.Statement.Dest.(*models.Course)
			if !ok || rivalPlanted {
				return
			}
			rivalPlanted = true
			tx.Exec("INSERT INTO courses (created_at, updated_at, title, slug, instructor_id) VALUES (?, ?, ?, ?, ?)",
				time.Now(), time.Now(), "Rival", course.Slug, instructor.ID)
		}))

	resp, body := doRequest(t, app, http.MethodPost, "/api/courses", token,
		map[string]interface{}{
			"title":       "Formation Python",
			"description": "Les bases du langage",
			"price":       4000,
		})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, rivalPlanted)

	var created models.Course
	require.NoError(t, jsonUnmarshal(body.Data, &created))
	assert.True(t, strings.HasPrefix(created.Slug, "formation-python"))
}

func TestCreateCourseForbiddenForStudents(t *testing.T) {
	app, db := setupTestApp(t)

	student := createTestUser(t, db, "Alice", "alice@tchadskills.com", models.RoleStudent)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/courses", tokenFor(t, student),
		map[string]interface{}{
			"title":       "Not Allowed",
			"description": "Students cannot teach",
			"price":       100,
		})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
