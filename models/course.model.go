package models

import (
	"time"

	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Lesson content types
const (
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
	ContentTypeQuiz    = "quiz"
	ContentTypeFile    = "file"
	ContentTypeLive    = "live"
)

// Course represents a published or draft learning course.
// AverageRating and TotalReviews are recomputed from approved reviews on every
// submission; TotalStudents is incremented atomically on enroll.
type Course struct {
	gorm.Model
	Title              string     `json:"title" gorm:"not null"`
	Slug               string     `json:"slug" gorm:"unique;not null"`
	Description        string     `json:"description" gorm:"type:text"`
	LongDescription    string     `json:"long_description" gorm:"type:text;default:''"`
	InstructorID       uint       `json:"instructor_id" gorm:"index;not null"`
	CategoryID         *uint      `json:"category_id" gorm:"index"`
	ThumbnailURL       string     `json:"thumbnail_url" gorm:"default:''"`
	PreviewVideoURL    string     `json:"preview_video_url" gorm:"default:''"`
	Level              string     `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Language           string     `json:"language" gorm:"default:'fr'"`
	Price              float64    `json:"price" gorm:"default:0"`
	DiscountPrice      *float64   `json:"discount_price"`
	Currency           string     `json:"currency" gorm:"default:'XAF'"`
	DurationHours      float64    `json:"duration_hours" gorm:"default:0"`
	Prerequisites      string     `json:"prerequisites" gorm:"type:text;default:''"`
	LearningObjectives string     `json:"learning_objectives" gorm:"type:text;default:''"`
	IsPublished        bool       `json:"is_published" gorm:"default:false"`
	PublishedAt        *time.Time `json:"published_at"`
	AverageRating      float64    `json:"average_rating" gorm:"default:0"`
	TotalStudents      int64      `json:"total_students" gorm:"default:0"`
	TotalReviews       int64      `json:"total_reviews" gorm:"default:0"`

	Instructor User            `json:"instructor" gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
	Category   *Category       `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Sections   []CourseSection `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}

type CourseSection struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text;default:''"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:SectionID"`
	Course  *Course  `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Lesson struct {
	gorm.Model
	SectionID      uint   `json:"section_id" gorm:"index;not null"`
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description" gorm:"type:text;default:''"`
	ContentType    string `json:"content_type" gorm:"default:'video'"` // video, article, quiz, file, live
	VideoURL       string `json:"video_url" gorm:"default:''"`
	VideoDuration  int    `json:"video_duration" gorm:"default:0"` // seconds
	ArticleContent string `json:"article_content" gorm:"type:text;default:''"`
	FileURL        string `json:"file_url" gorm:"default:''"`
	DisplayOrder   int    `json:"display_order" gorm:"default:0"`
	IsPreview      bool   `json:"is_preview" gorm:"default:false"`
	IsPublished    bool   `json:"is_published" gorm:"default:true"`

	Section *CourseSection `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}
