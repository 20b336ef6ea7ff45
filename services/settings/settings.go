// Package settings reads administrator-edited portal configuration from the
// system_settings table. Values are fetched fresh on every call; defaults
// for the keys the portal depends on are declared once here.
package settings

import (
	"context"
	"errors"

	"github.com/campusgate/uniportal/model"
	"gorm.io/gorm"
)

// Provider resolves a configuration value for a key. Implementations fall
// back to a declared default when the key is absent.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
}

// Defaults applied when a key has no row in system_settings.
var Defaults = map[string]string{
	model.SettingActiveSession:  "2025/2026",
	model.SettingActiveSemester: "First",
}

// Service is the GORM-backed Provider.
type Service struct {
	db *gorm.DB
}

// NewService creates a settings service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the stored value for key, or its declared default when the
// row is missing. Unknown keys with no default resolve to "".
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	var setting model.SystemSetting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Defaults[key], nil
		}
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a setting value.
func (s *Service) Set(ctx context.Context, key, value string) error {
	var setting model.SystemSetting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.db.WithContext(ctx).Create(&model.SystemSetting{Key: key, Value: value}).Error
		}
		return err
	}
	setting.Value = value
	return s.db.WithContext(ctx).Save(&setting).Error
}

// Static is a map-backed Provider for tests and seeding.
type Static map[string]string

// Get returns the mapped value, falling back to Defaults like the DB
// implementation does.
func (s Static) Get(_ context.Context, key string) (string, error) {
	if v, ok := s[key]; ok {
		return v, nil
	}
	return Defaults[key], nil
}
