package services

import (
	"testing"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePlanAt(t *testing.T) {
	now := time.Date(2026, time.January, 7, 10, 30, 0, 0, time.Local) // a Wednesday

	t.Run("fresh plan opens a thirty day window", func(t *testing.T) {
		plan, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		assert.NotNil(t, plan)
		assert.NotEmpty(t, plan.ID)
		assert.Equal(t, models.TierUnselected, plan.SubscriptionTier)

		start := utils.ParseTimestamp(plan.SubscriptionStart)
		end := utils.ParseTimestamp(plan.SubscriptionEnd)
		assert.Equal(t, utils.StartOfLocalDay(now), start)
		assert.Equal(t, start.AddDate(0, 0, 29), end)

		assert.Len(t, plan.ProfileHistory, 1)
		assert.Equal(t, now.Format(time.RFC3339), plan.ProfileSnapshot.CapturedAt)
		assert.Len(t, plan.Nutrition.Rotation, 7)
		assert.Len(t, plan.Nutrition.WeeklyPlan, 7)
		assert.NotEmpty(t, plan.Habits.DailyHabits)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		second, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("regeneration keeps window and tier, appends history", func(t *testing.T) {
		original, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		original.SubscriptionTier = models.TierFull

		later := now.AddDate(0, 0, 10)
		edited := baseProfile()
		edited.WeightKg = 65
		regenerated, err := GeneratePlanAt(edited, original, later)
		assert.NoError(t, err)

		assert.Equal(t, original.SubscriptionStart, regenerated.SubscriptionStart)
		assert.Equal(t, original.SubscriptionEnd, regenerated.SubscriptionEnd)
		assert.Equal(t, models.TierFull, regenerated.SubscriptionTier)

		assert.Len(t, regenerated.ProfileHistory, 2)
		assert.InDelta(t, 68, regenerated.ProfileHistory[0].Profile.WeightKg, 0.001)
		assert.InDelta(t, 65, regenerated.ProfileHistory[1].Profile.WeightKg, 0.001)
		assert.InDelta(t, 65, regenerated.ProfileSnapshot.Profile.WeightKg, 0.001)
	})

	t.Run("rotation derives from the training schedule", func(t *testing.T) {
		plan, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		// three day split: Mon and Wed high, Fri mid, rest low
		assert.Equal(t, models.DayHigh, plan.Nutrition.Rotation[0])
		assert.Equal(t, models.DayHigh, plan.Nutrition.Rotation[2])
		assert.Equal(t, models.DayMid, plan.Nutrition.Rotation[4])
		assert.Equal(t, models.DayLow, plan.Nutrition.Rotation[6])
	})

	t.Run("invalid daysPerWeek propagates the error", func(t *testing.T) {
		profile := baseProfile()
		profile.DaysPerWeek = 9
		plan, err := GeneratePlanAt(profile, nil, now)
		assert.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestNormalizePlan(t *testing.T) {
	now := time.Date(2026, time.January, 7, 10, 30, 0, 0, time.Local)

	t.Run("current plan passes through untouched", func(t *testing.T) {
		plan, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		profile := baseProfile()
		normalized := NormalizePlan(plan, &profile)
		assert.Equal(t, plan, normalized)
	})

	t.Run("legacy plan gains window, tier and history", func(t *testing.T) {
		profile := baseProfile()
		legacy := &models.GeneratedPlan{
			ID:        "plan-legacy",
			CreatedAt: now.Format(time.RFC3339),
		}
		normalized := NormalizePlan(legacy, &profile)

		assert.Equal(t, legacy.CreatedAt, normalized.SubscriptionStart)
		end := utils.ParseTimestamp(normalized.SubscriptionEnd)
		assert.Equal(t, utils.ParseTimestamp(legacy.CreatedAt).AddDate(0, 0, 29), end)
		assert.Equal(t, models.TierUnselected, normalized.SubscriptionTier)
		assert.Len(t, normalized.ProfileHistory, 1)
		assert.Equal(t, legacy.CreatedAt, normalized.ProfileSnapshot.CapturedAt)
	})

	t.Run("snapshot is not duplicated into history", func(t *testing.T) {
		plan, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		once := NormalizePlan(plan, nil)
		twice := NormalizePlan(once, nil)
		assert.Len(t, twice.ProfileHistory, len(plan.ProfileHistory))
	})

	t.Run("nil plan stays nil", func(t *testing.T) {
		assert.Nil(t, NormalizePlan(nil, nil))
	})
}
