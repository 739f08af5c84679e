package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment statuses. Transitions are forward-only:
// pending -> completed | failed, completed -> refunded.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Supported mobile-money providers
const (
	MethodMoovMoney   = "moov_money"
	MethodAirtelMoney = "airtel_money"
	MethodTigoCash    = "tigo_cash"
)

type Payment struct {
	gorm.Model
	UserID            uint           `json:"user_id" gorm:"index;not null"`
	CourseID          uint           `json:"course_id" gorm:"index;not null"`
	Amount            float64        `json:"amount" gorm:"not null"`
	Currency          string         `json:"currency" gorm:"default:'XAF'"`
	PaymentMethod     string         `json:"payment_method" gorm:"not null"`
	TransactionID     string         `json:"transaction_id" gorm:"unique;not null"`
	Status            string         `json:"status" gorm:"default:'pending';index"`
	PhoneNumber       string         `json:"phone_number" gorm:"default:''"`
	ProviderReference string         `json:"provider_reference" gorm:"default:''"`
	ProviderResponse  datatypes.JSON `json:"-"` // raw callback/poll payload, kept for audit
	CompletedAt       *time.Time     `json:"completed_at"`

	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
