package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin     = "admin"
	RoleLecturer  = "lecturer"
	RoleStudent   = "student"
	RoleApplicant = "applicant"
)

// User represents a portal account (applicant, student, lecturer or admin)
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string         `gorm:"not null" json:"name"`
	Role         string         `gorm:"type:varchar(20);default:'applicant'" json:"role"` // admin, lecturer, student, applicant
	TokenVersion int            `gorm:"default:0" json:"-"`                               // Increment to invalidate all user tokens

	// Relationships
	Student        *Student            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Lecturer       *Lecturer           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"lecturer,omitempty"`
	Documents      []Document          `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
