package models

import (
	"gorm.io/gorm"
)

// User roles. Every role check must handle all three explicitly.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name            string `json:"name" gorm:"default:''"`
	Email           string `json:"email" gorm:"unique;not null"`
	Phone           string `json:"phone" gorm:"default:''"`
	Password        string `json:"-" gorm:"not null"`
	Role            string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	Bio             string `json:"bio" gorm:"type:text;default:''"`
	AvatarURL       string `json:"avatar_url" gorm:"default:''"`
	IsEmailVerified bool   `json:"is_email_verified" gorm:"default:false"`
	IsPhoneVerified bool   `json:"is_phone_verified" gorm:"default:false"`
	IsActive        bool   `json:"is_active" gorm:"default:true"` // users are deactivated, never deleted
}
