package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application statuses
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusScored   = "SCORED"
	ApplicationStatusAdmitted = "ADMITTED"
	ApplicationStatusRejected = "REJECTED"
)

// Application represents an admission application. ProgramType stores the
// raw programme-type string as the applicant entered it; the registration
// flow prefers this value over the programme's level when resolving the
// student's type.
type Application struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID   uint           `gorm:"not null;index" json:"student_id"`
	ProgramID   uint           `gorm:"not null;index" json:"program_id"`
	Session     string         `gorm:"type:varchar(20)" json:"session"`
	ProgramType string         `gorm:"type:varchar(50)" json:"program_type"` // raw applicant input, e.g. "MSc"
	Status      string         `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Score       *float64       `json:"score,omitempty"` // admission-exercise score, set by an admin
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
}
