package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Slug         string `json:"slug" gorm:"unique;not null"`
	Description  string `json:"description" gorm:"type:text;default:''"`
	Icon         string `json:"icon" gorm:"default:''"`
	ParentID     *uint  `json:"parent_id" gorm:"index"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	Parent *Category `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}
