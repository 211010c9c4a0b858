package services

import (
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/data"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

// BuildHabitPlan returns the core habit list plus conditional extras:
// gratitude for high stress, a mobility reset for short sleepers. Pure
// and total over its input domain.
func BuildHabitPlan(profile models.UserProfile) models.HabitPlan {
	daily := make([]models.Habit, 0, len(data.CoreHabits)+2)
	daily = append(daily, data.CoreHabits...)

	findOptional := func(id string) *models.Habit {
		for _, habit := range data.OptionalHabits {
			if habit.ID == id {
				return &habit
			}
		}
		return nil
	}

	if profile.StressLevel >= 4 {
		if habit := findOptional("gratitude"); habit != nil {
			daily = append(daily, *habit)
		}
	}
	if profile.SleepHours < 7 {
		if habit := findOptional("mobility-reset"); habit != nil {
			daily = append(daily, *habit)
		}
	}

	return models.HabitPlan{
		DailyHabits:     daily,
		WeeklyChallenge: data.WeeklyChallenge,
	}
}
