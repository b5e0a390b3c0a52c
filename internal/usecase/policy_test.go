package usecase

import (
	"testing"
	"time"

	"golf-lesson-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCancelPolicy_Tiers(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lesson   time.Time
		wantTier entity.CancelTier
		wantFee  int
		wantDays int
	}{
		{
			name:     "ten days ahead is free",
			lesson:   time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierFree,
			wantFee:  0,
			wantDays: 10,
		},
		{
			name:     "exactly seven days is free",
			lesson:   time.Date(2026, 4, 17, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierFree,
			wantFee:  0,
			wantDays: 7,
		},
		{
			name:     "six days is half",
			lesson:   time.Date(2026, 4, 16, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierHalf,
			wantFee:  50,
			wantDays: 6,
		},
		{
			name:     "three days is half",
			lesson:   time.Date(2026, 4, 13, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierHalf,
			wantFee:  50,
			wantDays: 3,
		},
		{
			name:     "two days is full",
			lesson:   time.Date(2026, 4, 12, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierFull,
			wantFee:  100,
			wantDays: 2,
		},
		{
			name:     "same day is full",
			lesson:   time.Date(2026, 4, 10, 23, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierFull,
			wantFee:  100,
			wantDays: 0,
		},
		{
			name:     "past lesson is full",
			lesson:   time.Date(2026, 4, 9, 10, 0, 0, 0, time.UTC),
			wantTier: entity.CancelTierFull,
			wantFee:  100,
			wantDays: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := EvaluateCancelPolicy(tt.lesson, now)

			assert.Equal(t, tt.wantTier, policy.Tier)
			assert.Equal(t, tt.wantFee, policy.FeePercent)
			assert.Equal(t, tt.wantDays, policy.DaysUntil)
		})
	}
}

func TestEvaluateCancelPolicy_CountsCalendarDaysNotHours(t *testing.T) {
	// Less than 7*24 hours away, but seven calendar days apart.
	now := time.Date(2026, 4, 10, 23, 50, 0, 0, time.UTC)
	lesson := time.Date(2026, 4, 17, 0, 10, 0, 0, time.UTC)

	policy := EvaluateCancelPolicy(lesson, now)

	assert.Equal(t, entity.CancelTierFree, policy.Tier)
	assert.Equal(t, 7, policy.DaysUntil)
}

func TestCancelPolicy_FeeAmount(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	free := EvaluateCancelPolicy(time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC), now)
	half := EvaluateCancelPolicy(time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC), now)
	full := EvaluateCancelPolicy(time.Date(2026, 4, 11, 10, 0, 0, 0, time.UTC), now)

	assert.Equal(t, 0, free.FeeAmount(13000))
	assert.Equal(t, 6500, half.FeeAmount(13000))
	assert.Equal(t, 13000, full.FeeAmount(13000))
}

func TestCancelPolicy_RequiresApproval(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	free := EvaluateCancelPolicy(time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC), now)
	half := EvaluateCancelPolicy(time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC), now)
	full := EvaluateCancelPolicy(time.Date(2026, 4, 11, 10, 0, 0, 0, time.UTC), now)

	assert.False(t, free.RequiresApproval())
	assert.True(t, half.RequiresApproval())
	assert.True(t, full.RequiresApproval())
}

func TestCancelPolicy_Description(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	free := EvaluateCancelPolicy(time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC), now)
	half := EvaluateCancelPolicy(time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC), now)

	assert.Contains(t, free.Description(), "かかりません")
	assert.Contains(t, half.Description(), "50%")
}
