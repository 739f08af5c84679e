package models

import "gorm.io/gorm"

// Review requires a prior enrollment; one per (user, course).
type Review struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	CourseID   uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText string `json:"review_text" gorm:"type:text;default:''"`
	IsApproved bool   `json:"is_approved" gorm:"default:true"`

	User   User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
