package model

import (
	"time"

	"gorm.io/gorm"
)

// Setting keys read by the registration flow.
const (
	SettingActiveSession  = "active_academic_session"
	SettingActiveSemester = "active_semester"
)

// SystemSetting represents administrator-edited portal configuration.
// Values are read fresh on every request; defaults live in the settings
// service, not here.
type SystemSetting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Key         string         `gorm:"uniqueIndex;not null" json:"key"`
	Value       string         `gorm:"type:text;not null" json:"value"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(50)" json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for SystemSetting
func (SystemSetting) TableName() string {
	return "system_settings"
}
