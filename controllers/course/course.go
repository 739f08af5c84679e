package courseController

import (
	"errors"
	"strings"
	"time"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	courseValidator "tchadskills/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// orderings the catalog accepts, optionally prefixed with "-" for descending
var allowedOrderings = map[string]string{
	"created_at":     "courses.created_at",
	"price":          "courses.price",
	"average_rating": "courses.average_rating",
	"total_students": "courses.total_students",
}

// GetAllCourses lists published courses with filtering, search, ordering and
// page-number pagination.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Course{}).Where("courses.is_published = ?", true)

	// Filters
	if categoryID := c.QueryInt("category", 0); categoryID > 0 {
		db = db.Where("courses.category_id = ?", categoryID)
	}
	if level := c.Query("level"); level != "" {
		db = db.Where("courses.level = ?", level)
	}
	if language := c.Query("language"); language != "" {
		db = db.Where("courses.language = ?", language)
	}

	// Free-text search over title, description and instructor name
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Joins("JOIN users ON users.id = courses.instructor_id").
			Where("LOWER(courses.title) LIKE ? OR LOWER(courses.description) LIKE ? OR LOWER(users.name) LIKE ?",
				pattern, pattern, pattern)
	}

	// Ordering, newest first by default
	orderClause := "courses.created_at desc"
	if ordering := c.Query("ordering"); ordering != "" {
		desc := strings.HasPrefix(ordering, "-")
		field := strings.TrimPrefix(ordering, "-")
		if column, ok := allowedOrderings[field]; ok {
			orderClause = column
			if desc {
				orderClause += " desc"
			}
		}
	}

	var total int64
	db.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var courses []models.Course
	if err := db.Order(orderClause).
		Offset(offset).Limit(limit).
		Preload("Instructor").Preload("Category").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!",
		utils.Paginated(c, total, page, limit, courses))
}

// GetCourseBySlug returns a published course with its sections and lessons.
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	var course models.Course
	err := database.Database.Db.
		Where("slug = ? AND is_published = ?", slug, true).
		Preload("Instructor").
		Preload("Category").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("display_order asc")
		}).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a course owned by the calling instructor.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.Where("id = ? AND is_active = ?", *reqData.CategoryID, true).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
	}

	// A concurrent create can take the slug between the uniqueness check and
	// the insert; retry with the next suffix.
	var course models.Course
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		slug, err := utils.EnsureUniqueSlug(db, "courses", "slug", reqData.Title)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate slug!", nil)
		}

		course = models.Course{
			Title:              reqData.Title,
			Slug:               slug,
			Description:        reqData.Description,
			LongDescription:    reqData.LongDescription,
			InstructorID:       userID,
			CategoryID:         reqData.CategoryID,
			ThumbnailURL:       reqData.ThumbnailURL,
			PreviewVideoURL:    reqData.PreviewVideoURL,
			Level:              reqData.Level,
			Language:           reqData.Language,
			Price:              reqData.Price,
			DiscountPrice:      reqData.DiscountPrice,
			Currency:           reqData.Currency,
			DurationHours:      reqData.DurationHours,
			Prerequisites:      reqData.Prerequisites,
			LearningObjectives: reqData.LearningObjectives,
			IsPublished:        reqData.IsPublished,
		}

		if course.Level == "" {
			course.Level = models.LevelBeginner
		}
		if course.Language == "" {
			course.Language = "fr"
		}
		if course.Currency == "" {
			course.Currency = "XAF"
		}
		if course.IsPublished {
			now := time.Now()
			course.PublishedAt = &now
		}

		createErr = db.Create(&course).Error
		if createErr == nil || !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title was just created, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
