package accesscode

import (
	"errors"
	"testing"
	"time"

	"github.com/campusgate/uniportal/model"
)

func TestUsable(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		code model.AccessCode
		want error
	}{
		{
			name: "active unlimited code",
			code: model.AccessCode{IsActive: true},
			want: nil,
		},
		{
			name: "inactive",
			code: model.AccessCode{IsActive: false},
			want: ErrCodeInactive,
		},
		{
			name: "expired",
			code: model.AccessCode{IsActive: true, ExpiresAt: &past},
			want: ErrCodeExpired,
		},
		{
			name: "not yet expired",
			code: model.AccessCode{IsActive: true, ExpiresAt: &future},
			want: nil,
		},
		{
			name: "uses remaining",
			code: model.AccessCode{IsActive: true, MaxUses: 5, UseCount: 4},
			want: nil,
		},
		{
			name: "exhausted",
			code: model.AccessCode{IsActive: true, MaxUses: 5, UseCount: 5},
			want: ErrCodeExhausted,
		},
		{
			name: "zero max uses means unlimited",
			code: model.AccessCode{IsActive: true, MaxUses: 0, UseCount: 1000},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usable(&tt.code, now)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("  ab-12cd  "); got != "AB-12CD" {
		t.Errorf("normalize = %q", got)
	}
}
