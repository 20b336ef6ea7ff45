package database

import (
	"errors"
	"log"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/settings"
	"github.com/campusgate/uniportal/utils/auth"
	"gorm.io/gorm"
)

// Seed inserts the rows a fresh install needs: default settings, an admin
// account and a couple of programmes. Existing rows are left alone so the
// seeder is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedPrograms(db)
}

func seedSettings(db *gorm.DB) error {
	for key, value := range settings.Defaults {
		var existing model.SystemSetting
		err := db.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&model.SystemSetting{
			Key:      key,
			Value:    value,
			Category: "academic",
		}).Error; err != nil {
			return err
		}
		log.Printf("seed: created setting %s=%s", key, value)
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Default credentials are for first login only; the portal forces a
	// password change on the admin profile page.
	hash, err := auth.HashPassword("changeme-now")
	if err != nil {
		return err
	}
	admin := model.User{
		Email:        "admin@portal.edu",
		PasswordHash: hash,
		Name:         "Portal Administrator",
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seed: created default admin account")
	return nil
}

func seedPrograms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Program{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	programs := []model.Program{
		{Name: "MSc Computer Science", Code: "MSC-CS", Level: "Masters", Department: "Computer Science", DurationSemesters: 4},
		{Name: "PGD Management", Code: "PGD-MGT", Level: "PGD", Department: "Management Sciences", DurationSemesters: 2},
		{Name: "PhD Computer Science", Code: "PHD-CS", Level: "PhD", Department: "Computer Science", DurationSemesters: 6},
	}
	if err := db.Create(&programs).Error; err != nil {
		return err
	}
	log.Printf("seed: created %d programmes", len(programs))
	return nil
}
