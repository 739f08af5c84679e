package courseController

import (
	"errors"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	reviewValidator "tchadskills/validators/review"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitReview creates a review for a course the caller is enrolled in, then
// recomputes the course aggregates inside the same transaction. Deriving the
// average and count from a SQL aggregate instead of read-modify-write keeps
// concurrent submissions from losing updates.
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	slug := c.Locals("courseSlug").(string)

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.SubmitReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("slug = ? AND is_published = ?", slug, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Reviews require a prior enrollment
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_active = ?", userID, course.ID, true).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Must be enrolled to review this course!", nil)
	}

	review := models.Review{
		UserID:     userID,
		CourseID:   course.ID,
		Rating:     reqData.Rating,
		ReviewText: reqData.ReviewText,
		IsApproved: true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recomputeCourseRating(tx, course.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// recomputeCourseRating rewrites the course aggregates from approved reviews.
func recomputeCourseRating(tx *gorm.DB, courseID uint) error {
	var stats struct {
		Avg float64
		Cnt int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as cnt").
		Where("course_id = ? AND is_approved = ?", courseID, true).
		Scan(&stats).Error; err != nil {
		return err
	}

	return tx.Model(&models.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"average_rating": stats.Avg,
			"total_reviews":  stats.Cnt,
		}).Error
}

// GetCourseReviews lists approved reviews for a course. Public.
func GetCourseReviews(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("slug = ? AND is_published = ?", slug, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	query := db.Model(&models.Review{}).
		Where("course_id = ? AND is_approved = ?", course.ID, true)

	var total int64
	query.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := query.Order("created_at desc").
		Offset(offset).Limit(limit).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, avatar_url")
		}).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!",
		utils.Paginated(c, total, page, limit, reviews))
}
