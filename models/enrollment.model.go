package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course. The composite unique index is the
// single authority against double enrollment.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID           uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	ProgressPercentage float64    `json:"progress_percentage" gorm:"default:0"` // 0-100
	CompletedAt        *time.Time `json:"completed_at"`
	LastAccessedAt     *time.Time `json:"last_accessed_at"`
	CertificateIssued  bool       `json:"certificate_issued" gorm:"default:false"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`

	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
