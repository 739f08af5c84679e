package utils

import (
	"log"
	"time"

	"tchadskills/config"
	"tchadskills/database"
	"tchadskills/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PAYMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartPaymentScheduler starts the cron job that resolves pending payments
// against the mobile-money provider. Callbacks are the primary completion
// path; the poller catches payments whose callback never arrived.
func StartPaymentScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.PaymentPollSpec, ProcessPendingPayments); err != nil {
		log.Fatalf("Failed to schedule payment poller: %v", err)
	}

	c.Start()
	logScheduler("Payment poller started (" + config.AppConfig.PaymentPollSpec + ")")
	return c
}

// ProcessPendingPayments polls the provider for every pending payment older
// than a minute and applies the pending -> completed | failed transition.
func ProcessPendingPayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-1 * time.Minute)

	var pending []models.Payment
	if err := db.Where("status = ? AND created_at <= ?", models.PaymentStatusPending, cutoff).
		Find(&pending).Error; err != nil {
		logScheduler("Error fetching pending payments: " + err.Error())
		return
	}

	if len(pending) == 0 {
		return
	}

	client := NewMobileMoneyClient()

	for i := range pending {
		payment := &pending[i]

		result, raw, err := client.CheckStatus(payment.PaymentMethod, payment.TransactionID)
		if err != nil {
			logScheduler("Status check failed for " + payment.TransactionID + ": " + err.Error())
			continue
		}

		switch MapProviderStatus(result.Status) {
		case models.PaymentStatusCompleted:
			if err := CompletePayment(db, payment, raw); err != nil {
				logScheduler("Error completing payment " + payment.TransactionID + ": " + err.Error())
			} else {
				logScheduler("Payment " + payment.TransactionID + " completed")
			}
		case models.PaymentStatusFailed:
			if err := FailPayment(db, payment, raw); err != nil {
				logScheduler("Error failing payment " + payment.TransactionID + ": " + err.Error())
			} else {
				logScheduler("Payment " + payment.TransactionID + " failed")
			}
		}
	}
}
