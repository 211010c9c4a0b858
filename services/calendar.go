package services

import (
	"math"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"
)

var shortDayLabels = [7]string{"Pon", "Uto", "Sre", "Čet", "Pet", "Sub", "Ned"}

func buildWorkoutSummary(sessionID string, sessions map[string]models.WorkoutSession, completedIDs []string) *models.CalendarWorkoutSummary {
	if sessionID == "" {
		return nil
	}
	session, ok := sessions[sessionID]
	if !ok {
		return nil
	}
	completed := false
	for _, id := range completedIDs {
		if id == session.ID {
			completed = true
			break
		}
	}
	return &models.CalendarWorkoutSummary{
		ID:        session.ID,
		Title:     session.Title,
		Focus:     session.Focus,
		Completed: completed,
	}
}

// CreateMonthlyCalendar projects a plan and its sparse completion logs
// onto full Monday-start calendar weeks covering the subscription
// window. The day-type rotation is anchored to the subscription
// start's weekday and recomputed per day — it is never read back from
// stored per-day indices, so a partially edited plan still renders
// consistently. Future days never read logs.
func CreateMonthlyCalendar(plan *models.GeneratedPlan, logs map[string]models.DailyLog, now time.Time) models.CalendarData {
	subscriptionStart := utils.ParseTimestamp(plan.SubscriptionStart)
	if subscriptionStart.IsZero() {
		subscriptionStart = utils.ParseTimestamp(plan.CreatedAt)
	}
	subscriptionStart = utils.StartOfLocalDay(subscriptionStart)

	subscriptionEnd := utils.ParseTimestamp(plan.SubscriptionEnd)
	if subscriptionEnd.IsZero() {
		subscriptionEnd = subscriptionStart.AddDate(0, 0, subscriptionWindowDays-1)
	}
	subscriptionEnd = utils.StartOfLocalDay(subscriptionEnd)

	calendarStart := subscriptionStart.AddDate(0, 0, -utils.WeekdayIndex(subscriptionStart))
	calendarEnd := subscriptionEnd.AddDate(0, 0, 6-utils.WeekdayIndex(subscriptionEnd))

	scheduleLookup := make(map[int]string, len(plan.Training.Schedule))
	for _, entry := range plan.Training.Schedule {
		scheduleLookup[entry.Day] = entry.SessionID
	}
	sessionLookup := make(map[string]models.WorkoutSession, len(plan.Training.Sessions))
	for _, session := range plan.Training.Sessions {
		sessionLookup[session.ID] = session
	}
	weeklyNutrition := make(map[int]models.DailyNutritionPlan, len(plan.Nutrition.WeeklyPlan))
	for _, day := range plan.Nutrition.WeeklyPlan {
		weeklyNutrition[day.DayIndex] = day
	}

	habits := plan.Habits.DailyHabits
	todayStart := utils.StartOfLocalDay(now)
	todayISO := utils.FormatLocalISODate(todayStart)
	startWeekday := utils.WeekdayIndex(subscriptionStart)

	weeks := make([][]models.CalendarDaySummary, 0, 6)
	daysByDate := make(map[string]*models.CalendarDaySummary)
	currentWeek := make([]models.CalendarDaySummary, 0, 7)

	for cursor := calendarStart; !cursor.After(calendarEnd); cursor = cursor.AddDate(0, 0, 1) {
		isoDate := utils.FormatLocalISODate(cursor)
		inSubscription := !cursor.Before(subscriptionStart) && !cursor.After(subscriptionEnd)
		isFuture := cursor.After(todayStart)

		var completedWorkouts, completedMeals, completedHabits []string
		if !isFuture {
			log, ok := logs[isoDate]
			if !ok {
				// Older revisions keyed logs by a UTC-truncated date.
				log, ok = logs[utils.LegacyUTCISODate(cursor)]
			}
			if ok {
				completedWorkouts = log.WorkoutsCompleted
				completedMeals = log.MealsCompleted
				completedHabits = log.HabitsCompleted
			}
		}
		mealsDone := make(map[string]bool, len(completedMeals))
		for _, id := range completedMeals {
			mealsDone[id] = true
		}
		habitsDone := make(map[string]bool, len(completedHabits))
		for _, id := range completedHabits {
			habitsDone[id] = true
		}

		// The rotation cycles from subscription start, independent of
		// which calendar week row the day falls in.
		daysSinceStart := int(math.Round(cursor.Sub(subscriptionStart).Hours() / 24))
		if daysSinceStart < 0 {
			daysSinceStart = 0
		}
		rotationIndex := ((startWeekday+daysSinceStart)%7 + 7) % 7

		var dayType models.DayIntensity
		var mealsForDay []models.MealRecipe
		if inSubscription {
			nutritionForDay, ok := weeklyNutrition[rotationIndex]
			if !ok && rotationIndex < len(plan.Nutrition.Rotation) {
				nutritionForDay, ok = plan.Nutrition.PlanByDayType[plan.Nutrition.Rotation[rotationIndex]]
			}
			if ok {
				dayType = nutritionForDay.DayType
				mealsForDay = nutritionForDay.Meals
			}
		}

		var workout *models.CalendarWorkoutSummary
		if inSubscription {
			workout = buildWorkoutSummary(scheduleLookup[rotationIndex], sessionLookup, completedWorkouts)
		}

		meals := make([]models.CalendarItemSummary, 0, len(mealsForDay))
		for _, meal := range mealsForDay {
			meals = append(meals, models.CalendarItemSummary{
				ID:        meal.ID,
				Title:     meal.Title,
				Completed: mealsDone[meal.ID],
			})
		}
		habitSummaries := make([]models.CalendarItemSummary, 0, len(habits))
		for _, habit := range habits {
			habitSummaries = append(habitSummaries, models.CalendarItemSummary{
				ID:        habit.ID,
				Title:     habit.Title,
				Completed: habitsDone[habit.ID],
			})
		}

		daySummary := models.CalendarDaySummary{
			Date:           isoDate,
			DayNumber:      cursor.Day(),
			DayLabel:       shortDayLabels[utils.WeekdayIndex(cursor)],
			InSubscription: inSubscription,
			IsToday:        isoDate == todayISO,
			IsFuture:       isFuture,
			DayType:        dayType,
			Workout:        workout,
			Meals:          meals,
			Habits:         habitSummaries,
		}

		// currentWeek is preallocated to 7 so these pointers stay valid.
		currentWeek = append(currentWeek, daySummary)
		daysByDate[isoDate] = &currentWeek[len(currentWeek)-1]

		if len(currentWeek) == 7 {
			weeks = append(weeks, currentWeek)
			currentWeek = make([]models.CalendarDaySummary, 0, 7)
		}
	}
	if len(currentWeek) > 0 {
		weeks = append(weeks, currentWeek)
	}

	return models.CalendarData{
		Start:      subscriptionStart.Format(time.RFC3339),
		End:        subscriptionEnd.Format(time.RFC3339),
		Weeks:      weeks,
		DaysByDate: daysByDate,
	}
}
