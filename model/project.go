package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Project represents an archived student project visible behind an access
// code (past theses/dissertations shared with prospective students).
type Project struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	ProgramID uint           `gorm:"index" json:"program_id"`
	Title     string         `gorm:"not null" json:"title"`
	Author    string         `gorm:"not null" json:"author"`
	Year      int            `gorm:"index" json:"year"`
	Abstract  string         `gorm:"type:text" json:"abstract"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	FileKey   string         `gorm:"type:varchar(255)" json:"-"` // object-storage key, resolved to a URL on read

	// Relationships
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnDelete:SET NULL" json:"program,omitempty"`
}

// AccessCode gates the project listing. Each successful verification
// increments UseCount; a code stops working once UseCount reaches MaxUses
// or ExpiresAt passes.
type AccessCode struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Code      string         `gorm:"uniqueIndex;not null;type:varchar(40)" json:"code"`
	Label     string         `gorm:"type:varchar(100)" json:"label"` // who the code was issued to
	MaxUses   int            `gorm:"default:0" json:"max_uses"`      // 0 means unlimited
	UseCount  int            `gorm:"default:0" json:"use_count"`
	ExpiresAt *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
}
