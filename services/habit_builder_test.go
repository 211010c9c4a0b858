package services

import (
	"testing"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"

	"github.com/stretchr/testify/assert"
)

func habitIDs(plan models.HabitPlan) []string {
	ids := make([]string, 0, len(plan.DailyHabits))
	for _, habit := range plan.DailyHabits {
		ids = append(ids, habit.ID)
	}
	return ids
}

func TestBuildHabitPlan(t *testing.T) {
	t.Run("calm profile gets only core habits", func(t *testing.T) {
		profile := baseProfile()
		profile.StressLevel = 2
		profile.SleepHours = 8

		plan := BuildHabitPlan(profile)
		assert.Len(t, plan.DailyHabits, 5)
		assert.NotContains(t, habitIDs(plan), "gratitude")
		assert.NotContains(t, habitIDs(plan), "mobility-reset")
		assert.NotEmpty(t, plan.WeeklyChallenge)
	})

	t.Run("high stress adds the gratitude habit", func(t *testing.T) {
		profile := baseProfile()
		profile.StressLevel = 4
		profile.SleepHours = 8

		plan := BuildHabitPlan(profile)
		assert.Contains(t, habitIDs(plan), "gratitude")
		assert.NotContains(t, habitIDs(plan), "mobility-reset")
	})

	t.Run("short sleep adds the mobility reset", func(t *testing.T) {
		profile := baseProfile()
		profile.StressLevel = 1
		profile.SleepHours = 6

		plan := BuildHabitPlan(profile)
		assert.Contains(t, habitIDs(plan), "mobility-reset")
		assert.NotContains(t, habitIDs(plan), "gratitude")
	})

	t.Run("both triggers stack", func(t *testing.T) {
		profile := baseProfile()
		profile.StressLevel = 5
		profile.SleepHours = 5.5

		plan := BuildHabitPlan(profile)
		assert.Len(t, plan.DailyHabits, 7)
	})
}
