package services

import (
	"testing"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"

	"github.com/stretchr/testify/assert"
)

// Wednesday subscription start exercises the rotation anchoring: the
// rotation index must follow the subscription start's weekday, not the
// calendar week row.
func calendarFixture(t *testing.T) (*models.GeneratedPlan, time.Time) {
	t.Helper()
	start := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
	plan, err := GeneratePlanAt(baseProfile(), nil, start)
	assert.NoError(t, err)
	return plan, start
}

func TestCreateMonthlyCalendar(t *testing.T) {
	t.Run("weeks are full Monday-start rows covering the window", func(t *testing.T) {
		plan, start := calendarFixture(t)
		calendar := CreateMonthlyCalendar(plan, nil, start)

		assert.Len(t, calendar.Weeks, 5)
		for _, week := range calendar.Weeks {
			assert.Len(t, week, 7)
			assert.Equal(t, "Pon", week[0].DayLabel)
			assert.Equal(t, "Ned", week[6].DayLabel)
		}
		assert.Equal(t, "2026-01-05", calendar.Weeks[0][0].Date)
		assert.Equal(t, "2026-02-08", calendar.Weeks[4][6].Date)
	})

	t.Run("rotation is anchored to subscription start, not week rows", func(t *testing.T) {
		plan, start := calendarFixture(t)
		calendar := CreateMonthlyCalendar(plan, nil, start)

		// Subscription starts Wednesday: rotation index 2 is a training
		// day of the three day split (Mon/Wed/Fri schedule).
		wednesday := calendar.DaysByDate["2026-01-07"]
		assert.NotNil(t, wednesday)
		assert.True(t, wednesday.InSubscription)
		assert.True(t, wednesday.IsToday)
		assert.NotNil(t, wednesday.Workout)
		assert.Equal(t, plan.Training.Sessions[1].ID, wednesday.Workout.ID)
		assert.Equal(t, models.DayHigh, wednesday.DayType)

		// Thursday is rotation index 3, a rest day.
		thursday := calendar.DaysByDate["2026-01-08"]
		assert.NotNil(t, thursday)
		assert.Nil(t, thursday.Workout)
		assert.Equal(t, models.DayLow, thursday.DayType)

		// The following Monday is five days in: (2+5)%7 = 0, the first
		// session of the split.
		monday := calendar.DaysByDate["2026-01-12"]
		assert.NotNil(t, monday)
		assert.NotNil(t, monday.Workout)
		assert.Equal(t, plan.Training.Sessions[0].ID, monday.Workout.ID)
	})

	t.Run("days before the window carry no plan content", func(t *testing.T) {
		plan, start := calendarFixture(t)
		calendar := CreateMonthlyCalendar(plan, nil, start)

		padding := calendar.DaysByDate["2026-01-05"]
		assert.NotNil(t, padding)
		assert.False(t, padding.InSubscription)
		assert.Nil(t, padding.Workout)
		assert.Empty(t, padding.DayType)
		assert.Empty(t, padding.Meals)
		// Habit summaries are always emitted so the UI can render rows.
		assert.NotNil(t, padding.Habits)
	})

	t.Run("future days never read logs", func(t *testing.T) {
		plan, _ := calendarFixture(t)
		sessionID := plan.Training.Sessions[0].ID
		logs := map[string]models.DailyLog{
			"2026-01-12": {
				Date:              "2026-01-12",
				WorkoutsCompleted: []string{sessionID},
			},
		}
		// now is January 10th, so the 12th is in the future.
		now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.Local)
		calendar := CreateMonthlyCalendar(plan, logs, now)

		futureDay := calendar.DaysByDate["2026-01-12"]
		assert.NotNil(t, futureDay)
		assert.True(t, futureDay.IsFuture)
		assert.NotNil(t, futureDay.Workout)
		assert.False(t, futureDay.Workout.Completed)
	})

	t.Run("past logs mark workouts and meals completed", func(t *testing.T) {
		plan, _ := calendarFixture(t)
		wednesdaySession := plan.Training.Sessions[1].ID
		logs := map[string]models.DailyLog{
			"2026-01-07": {
				Date:              "2026-01-07",
				WorkoutsCompleted: []string{wednesdaySession},
				HabitsCompleted:   []string{"hydration"},
			},
		}
		now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.Local)
		calendar := CreateMonthlyCalendar(plan, logs, now)

		day := calendar.DaysByDate["2026-01-07"]
		assert.NotNil(t, day)
		assert.NotNil(t, day.Workout)
		assert.True(t, day.Workout.Completed)

		hydrationDone := false
		for _, habit := range day.Habits {
			if habit.ID == "hydration" {
				hydrationDone = habit.Completed
			}
		}
		assert.True(t, hydrationDone)
	})

	t.Run("missing window falls back to createdAt", func(t *testing.T) {
		plan, start := calendarFixture(t)
		plan.SubscriptionStart = ""
		plan.SubscriptionEnd = ""
		calendar := CreateMonthlyCalendar(plan, nil, start)

		assert.Equal(t, utils.StartOfLocalDay(start).Format(time.RFC3339), calendar.Start)
		assert.Equal(t, utils.StartOfLocalDay(start).AddDate(0, 0, 29).Format(time.RFC3339), calendar.End)
	})

	t.Run("day lookup points into the week rows", func(t *testing.T) {
		plan, start := calendarFixture(t)
		calendar := CreateMonthlyCalendar(plan, nil, start)
		for _, week := range calendar.Weeks {
			for i := range week {
				assert.Same(t, &week[i], calendar.DaysByDate[week[i].Date])
			}
		}
	})
}
