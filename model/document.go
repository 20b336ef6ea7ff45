package model

import (
	"time"

	"gorm.io/gorm"
)

// Document visibility levels
const (
	DocumentVisibilityPublic   = "public"   // anyone with an account
	DocumentVisibilityStudents = "students" // students and staff
	DocumentVisibilityStaff    = "staff"    // lecturers and admins only
)

// Document represents a shared file (handbooks, forms, course material)
// stored in object storage with its metadata kept here.
type Document struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	FileKey      string         `gorm:"not null;type:varchar(255)" json:"-"`
	FileName     string         `gorm:"not null" json:"file_name"`
	ContentType  string         `gorm:"type:varchar(100)" json:"content_type"`
	SizeBytes    int64          `json:"size_bytes"`
	Visibility   string         `gorm:"type:varchar(20);default:'students'" json:"visibility"`
	UploadedByID uint           `gorm:"not null;index" json:"uploaded_by_id"`

	// Relationships
	UploadedBy User `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE" json:"uploaded_by,omitempty"`
}
