package courseController

import (
	"errors"
	"time"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	enrollmentValidator "tchadskills/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the caller in a published course. The composite
// unique index on (user_id, course_id) is what rejects double enrollment;
// the student counter moves atomically in the same transaction.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	slug := c.Locals("courseSlug").(string)

	var course models.Course
	if err := database.Database.Db.Where("slug = ? AND is_published = ?", slug, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Course{}).
			Where("id = ?", course.ID).
			UpdateColumn("total_students", gorm.Expr("total_students + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	enrollment.Course = course
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	var total int64
	db.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var enrollments []models.Enrollment
	if err := db.Order("created_at desc").
		Offset(offset).Limit(limit).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!",
		utils.Paginated(c, total, page, limit, enrollments))
}

// UpdateProgress updates the caller's progress on an enrollment. Reaching 100
// marks the enrollment completed and issues the certificate exactly once.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(uint)

	reqData, ok := c.Locals("validatedProgress").(*enrollmentValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	progress := *reqData.Progress

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND user_id = ? AND is_active = ?", enrollmentID, userID, true).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var issued *models.Certificate

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		updates := map[string]interface{}{
			"progress_percentage": progress,
			"last_accessed_at":    now,
		}
		if progress >= 100 && enrollment.CompletedAt == nil {
			updates["completed_at"] = now
		}

		if err := tx.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		enrollment.ProgressPercentage = progress
		enrollment.LastAccessedAt = &now
		if progress >= 100 && enrollment.CompletedAt == nil {
			enrollment.CompletedAt = &now
		}

		if progress >= 100 {
			cert, err := issueCertificate(tx, &enrollment)
			if err != nil {
				return err
			}
			issued = cert
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	if issued != nil {
		var course models.Course
		var user models.User
		if db.First(&course, enrollment.CourseID).Error == nil && db.First(&user, userID).Error == nil {
			utils.SendCertificateEmail(user.Email, user.Name, course.Title, issued.CertificateNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", fiber.Map{
		"progress":   progress,
		"enrollment": enrollment,
	})
}
