// Package accesscode verifies and consumes the access codes gating the
// project archive.
package accesscode

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusgate/uniportal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCodeNotFound  = errors.New("access code not recognized")
	ErrCodeInactive  = errors.New("access code has been deactivated")
	ErrCodeExpired   = errors.New("access code has expired")
	ErrCodeExhausted = errors.New("access code has no uses left")
)

// Service verifies access codes and tracks their usage.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService creates an access-code service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Validate checks a code without consuming a use. Codes are stored
// uppercase; input is folded before lookup.
func (s *Service) Validate(ctx context.Context, code string) (*model.AccessCode, error) {
	var ac model.AccessCode
	err := s.db.WithContext(ctx).
		Where("code = ?", normalize(code)).
		First(&ac).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}
	if err := usable(&ac, s.now()); err != nil {
		return nil, err
	}
	return &ac, nil
}

// Redeem verifies the code and increments its use count in one transaction,
// locking the row so two concurrent redemptions cannot both take the last
// use.
func (s *Service) Redeem(ctx context.Context, code string) (*model.AccessCode, error) {
	var ac model.AccessCode
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", normalize(code)).
			First(&ac).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCodeNotFound
			}
			return err
		}
		if err := usable(&ac, s.now()); err != nil {
			return err
		}
		ac.UseCount++
		return tx.Model(&ac).Update("use_count", ac.UseCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &ac, nil
}

func usable(ac *model.AccessCode, now time.Time) error {
	if !ac.IsActive {
		return ErrCodeInactive
	}
	if ac.ExpiresAt != nil && now.After(*ac.ExpiresAt) {
		return ErrCodeExpired
	}
	if ac.MaxUses > 0 && ac.UseCount >= ac.MaxUses {
		return ErrCodeExhausted
	}
	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
