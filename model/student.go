package model

import (
	"time"

	"gorm.io/gorm"
)

// Student holds the academic profile attached to a user account
type Student struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	MatricNo    string         `gorm:"uniqueIndex;not null;type:varchar(30)" json:"matric_no"`
	FirstName   string         `gorm:"not null" json:"first_name"`
	LastName    string         `gorm:"not null" json:"last_name"`
	Phone       string         `gorm:"type:varchar(20)" json:"phone"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`

	// Relationships
	User          User                        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Programmes    []StudentProgramme          `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"programmes,omitempty"`
	Applications  []Application               `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	Registrations []StudentCourseRegistration `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// FullName returns the student's display name
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Lecturer holds the teaching profile attached to a user account
type Lecturer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	StaffNo    string         `gorm:"uniqueIndex;not null;type:varchar(30)" json:"staff_no"`
	Title      string         `gorm:"type:varchar(20)" json:"title"` // Dr., Prof., Mr., Mrs.
	Department string         `gorm:"type:varchar(100)" json:"department"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
