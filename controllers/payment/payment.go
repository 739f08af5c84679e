package paymentController

import (
	"log"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	paymentValidator "tchadskills/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment starts a mobile-money purchase: persists a pending payment,
// asks the provider to debit the phone, and returns. The enrollment is only
// created when the payment completes (callback or poller), never here.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.CreatePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_published = ?", reqData.CourseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Already enrolled users have nothing to pay for
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	payment := models.Payment{
		UserID:        userID,
		CourseID:      course.ID,
		Amount:        reqData.Amount,
		Currency:      reqData.Currency,
		PaymentMethod: reqData.PaymentMethod,
		TransactionID: utils.NewTransactionID(),
		Status:        models.PaymentStatusPending,
		PhoneNumber:   reqData.PhoneNumber,
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	client := utils.NewMobileMoneyClient()
	result, err := client.InitiateCollection(payment.PaymentMethod, payment.PhoneNumber,
		payment.Amount, payment.Currency, payment.TransactionID)
	if err != nil {
		log.Printf("Mobile money initiation failed for %s: %v", payment.TransactionID, err)
		if failErr := utils.FailPayment(db, &payment, nil); failErr != nil {
			log.Printf("Error marking payment failed: %v", failErr)
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment provider unavailable, please try again later!", nil)
	}

	if result.Reference != "" {
		if err := db.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			UpdateColumn("provider_reference", result.Reference).Error; err != nil {
			log.Printf("Error saving provider reference: %v", err)
		}
		payment.ProviderReference = result.Reference
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment initiated, awaiting provider confirmation.", fiber.Map{
		"transaction_id": payment.TransactionID,
		"status":         payment.Status,
		"amount":         payment.Amount,
		"currency":       payment.Currency,
	})
}

// PaymentCallback is the provider webhook. Idempotent: pending payments move
// to completed (creating the enrollment exactly once) or failed (terminal,
// no side effect); anything already terminal is acknowledged unchanged.
func PaymentCallback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCallback").(*paymentValidator.CallbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("transaction_id = ?", reqData.TransactionID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	raw := append([]byte(nil), c.Body()...)

	switch utils.MapProviderStatus(reqData.Status) {
	case models.PaymentStatusCompleted:
		if err := utils.CompletePayment(db, &payment, raw); err != nil {
			log.Printf("Error completing payment %s: %v", payment.TransactionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process callback!", nil)
		}
	case models.PaymentStatusFailed:
		if err := utils.FailPayment(db, &payment, raw); err != nil {
			log.Printf("Error failing payment %s: %v", payment.TransactionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process callback!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Callback processed.", fiber.Map{
		"transaction_id": payment.TransactionID,
		"status":         payment.Status,
	})
}

// GetPayments lists the caller's payments.
func GetPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Payment{}).Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var payments []models.Payment
	if err := db.Order("created_at desc").
		Offset(offset).Limit(limit).
		Preload("Course").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!",
		utils.Paginated(c, total, page, limit, payments))
}
