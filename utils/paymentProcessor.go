package utils

import (
	"errors"
	"time"

	"tchadskills/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletePayment transitions a payment from pending to completed and creates
// the enrollment exactly once. Safe to call repeatedly: the guarded UPDATE
// resolves concurrent callbacks/polls, and the enrollment unique index absorbs
// an already-enrolled user. Terminal payments are acknowledged without effect.
func CompletePayment(db *gorm.DB, payment *models.Payment, raw []byte) error {
	if payment.Status != models.PaymentStatusPending {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		updates := map[string]interface{}{
			"status":       models.PaymentStatusCompleted,
			"completed_at": now,
		}
		if len(raw) > 0 {
			updates["provider_response"] = datatypes.JSON(raw)
		}

		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, models.PaymentStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Another callback or the poller already resolved this payment.
			return nil
		}

		payment.Status = models.PaymentStatusCompleted
		payment.CompletedAt = &now

		// Savepoint: on postgres a unique violation aborts the enclosing
		// transaction, which would roll back the status UPDATE above and
		// leave the payment pending forever.
		err := tx.Transaction(func(tx *gorm.DB) error {
			enrollment := models.Enrollment{
				UserID:   payment.UserID,
				CourseID: payment.CourseID,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
			return tx.Model(&models.Course{}).
				Where("id = ?", payment.CourseID).
				UpdateColumn("total_students", gorm.Expr("total_students + ?", 1)).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// User was already enrolled; the payment still completes.
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	var user models.User
	var course models.Course
	if db.First(&user, payment.UserID).Error == nil && db.First(&course, payment.CourseID).Error == nil {
		SendPaymentReceiptEmail(user.Email, user.Name, course.Title, payment.TransactionID, payment.Amount, payment.Currency)
	}

	return nil
}

// FailPayment transitions a payment from pending to failed. Terminal, no side
// effects: a failed payment never creates an enrollment.
func FailPayment(db *gorm.DB, payment *models.Payment, raw []byte) error {
	if payment.Status != models.PaymentStatusPending {
		return nil
	}

	updates := map[string]interface{}{
		"status": models.PaymentStatusFailed,
	}
	if len(raw) > 0 {
		updates["provider_response"] = datatypes.JSON(raw)
	}

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		payment.Status = models.PaymentStatusFailed
	}
	return nil
}
