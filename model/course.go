package model

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a course offering owned by a programme.
//
// Semester and ProgramType are nullable on purpose: a NULL value is a
// wildcard meaning the course applies regardless of the active semester or
// the student's programme type. This is distinct from an empty string.
// ProgramType is free text with inconsistent historical casing ("MASTERS",
// "Masters", "MSc", ...); reads go through the programtype variant shim.
type Course struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	ProgramID    uint           `gorm:"not null;index" json:"program_id"`
	Title        string         `gorm:"not null" json:"title"`
	Code         string         `gorm:"not null;type:varchar(30)" json:"code"`
	Semester     *string        `gorm:"type:varchar(20)" json:"semester"`     // "First", "Second" or NULL (any)
	ProgramType  *string        `gorm:"type:varchar(50)" json:"program_type"` // free text or NULL (any)
	CreditHours  int            `gorm:"default:3" json:"credit_hours"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	DisplayOrder int            `gorm:"default:0" json:"display_order"`

	// Relationships
	Program       Program                     `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
	Registrations []StudentCourseRegistration `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// RegistrationStatusRegistered is the status written on self-service
// course registration rows.
const RegistrationStatusRegistered = "REGISTERED"

// StudentCourseRegistration joins a student to a course within a session.
// The set of rows for a (student, session) pair is replaced wholesale on
// every submission, never patched row by row.
type StudentCourseRegistration struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID uint           `gorm:"not null;uniqueIndex:idx_student_session_course" json:"student_id"`
	Session   string         `gorm:"not null;type:varchar(20);uniqueIndex:idx_student_session_course" json:"session"`
	CourseID  uint           `gorm:"not null;uniqueIndex:idx_student_session_course" json:"course_id"`
	Semester  string         `gorm:"type:varchar(20)" json:"semester"`
	Status    string         `gorm:"type:varchar(20);not null;default:'REGISTERED'" json:"status"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Course  Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

// TableName specifies the table name for StudentCourseRegistration
func (StudentCourseRegistration) TableName() string {
	return "student_course_registrations"
}
