package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued exactly once per completed enrollment. The unique
// index on EnrollmentID guards issuance under concurrent progress updates.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique;not null"`
	IssuedAt          time.Time `json:"issued_at"`
	CertificateURL    string    `json:"certificate_url" gorm:"default:''"`
	VerificationURL   string    `json:"verification_url" gorm:"default:''"`
	IsValid           bool      `json:"is_valid" gorm:"default:true"`

	User       User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course     Course     `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollment Enrollment `json:"-" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
}
