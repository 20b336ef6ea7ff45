package model

import (
	"time"

	"gorm.io/gorm"
)

// Program represents an academic programme offered by the school
// (e.g., "MSc Computer Science", "PGD Management")
type Program struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	Name              string         `gorm:"not null" json:"name"`
	Code              string         `gorm:"uniqueIndex;not null;type:varchar(30)" json:"code"`
	Level             string         `gorm:"type:varchar(50)" json:"level"` // free text, e.g. "Masters", "PhD", "PGD"
	Department        string         `gorm:"type:varchar(100)" json:"department"`
	DurationSemesters int            `gorm:"default:2" json:"duration_semesters"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`

	// Relationships
	Courses    []Course           `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	Programmes []StudentProgramme `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"-"`
}

// StudentProgramme statuses. The first three mark a programme as the one
// currently governing a student's eligibility.
const (
	ProgrammeStatusAdmitted   = "ADMITTED"
	ProgrammeStatusRegistered = "REGISTERED"
	ProgrammeStatusInProgress = "IN_PROGRESS"
	ProgrammeStatusCompleted  = "COMPLETED"
	ProgrammeStatusWithdrawn  = "WITHDRAWN"
)

// ActiveProgrammeStatuses lists the statuses treated as "active" when
// resolving a student's current programme.
var ActiveProgrammeStatuses = []string{
	ProgrammeStatusAdmitted,
	ProgrammeStatusRegistered,
	ProgrammeStatusInProgress,
}

// StudentProgramme links a student to a programme they were admitted into.
// A student may carry several historical rows; the first row with an active
// status is treated as the current one.
type StudentProgramme struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	ProgramID uint           `gorm:"not null;index" json:"program_id"`
	Session   string         `gorm:"type:varchar(20)" json:"session"` // admission session, e.g. "2025/2026"
	Status    string         `gorm:"type:varchar(20);not null;default:'ADMITTED'" json:"status"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
}
