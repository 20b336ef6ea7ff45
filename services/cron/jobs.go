package cron

import (
	"context"
	"log"
	"time"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/auth"
)

// CleanupExpiredTokens removes blacklist rows whose tokens have expired
// anyway; they can no longer validate, so the rows are dead weight.
func (m *CronManager) CleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	blacklist := auth.NewBlacklistService(m.db)
	removed, err := blacklist.CleanupExpiredTokens(ctx)
	if err != nil {
		log.Printf("[CRON] cleanup_expired_tokens failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[CRON] cleanup_expired_tokens removed %d rows", removed)
	}
}

// DeactivateExpiredAccessCodes flips is_active off for codes past their
// expiry so the admin listing reflects reality.
func (m *CronManager) DeactivateExpiredAccessCodes() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res := m.db.WithContext(ctx).
		Model(&model.AccessCode{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[CRON] deactivate_expired_access_codes failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CRON] deactivate_expired_access_codes deactivated %d codes", res.RowsAffected)
	}
}
