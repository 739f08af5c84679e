package courseController

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// issueCertificate creates the certificate for a completed enrollment. The
// unique index on enrollment_id makes it idempotent: under concurrent
// progress updates the second insert hits the constraint and nothing new is
// issued. Returns nil when the certificate already existed.
func issueCertificate(tx *gorm.DB, enrollment *models.Enrollment) (*models.Certificate, error) {
	if enrollment.CertificateIssued {
		return nil, nil
	}

	cert := models.Certificate{
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: utils.NewCertificateNumber(),
		IssuedAt:          time.Now(),
		IsValid:           true,
	}

	// Savepoint: the request losing a concurrent issuance race must not
	// abort the caller's transaction on postgres.
	if err := tx.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cert).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}

	cert.VerificationURL = fmt.Sprintf("/api/certificates/%d/verify", cert.ID)
	if err := tx.Model(&models.Certificate{}).
		Where("id = ?", cert.ID).
		UpdateColumn("verification_url", cert.VerificationURL).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&models.Enrollment{}).
		Where("id = ?", enrollment.ID).
		UpdateColumn("certificate_issued", true).Error; err != nil {
		return nil, err
	}
	enrollment.CertificateIssued = true

	return &cert, nil
}

// GetUserCertificates lists the caller's valid certificates.
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Certificate{}).
		Where("user_id = ? AND is_valid = ?", userID, true)

	var total int64
	db.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var certificates []models.Certificate
	if err := db.Order("issued_at desc").
		Offset(offset).Limit(limit).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, title, slug")
		}).
		Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!",
		utils.Paginated(c, total, page, limit, certificates))
}

// VerifyCertificate is the public verification endpoint. Pure read: accepts a
// certificate ID or certificate number and returns who earned what, when.
// Missing or invalidated certificates are indistinguishable (404).
func VerifyCertificate(c *fiber.Ctx) error {
	idParam := strings.TrimSpace(c.Params("id"))
	if idParam == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate ID is required!", nil)
	}

	db := database.Database.Db

	var cert models.Certificate
	var err error
	if id, convErr := strconv.Atoi(idParam); convErr == nil && id > 0 {
		err = db.Where("id = ?", id).First(&cert).Error
	} else {
		err = db.Where("certificate_number = ?", idParam).First(&cert).Error
	}
	if err != nil || !cert.IsValid {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var user models.User
	var course models.Course
	if err := db.First(&user, cert.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}
	if err := db.First(&course, cert.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified!", fiber.Map{
		"valid":              true,
		"certificate_number": cert.CertificateNumber,
		"user":               user.Name,
		"course":             course.Title,
		"issued_at":          cert.IssuedAt,
	})
}
