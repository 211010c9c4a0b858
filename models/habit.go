package models

// HabitCategory groups habits for display.
type HabitCategory string

const (
	HabitHydration   HabitCategory = "hydration"
	HabitSleep       HabitCategory = "sleep"
	HabitMobility    HabitCategory = "mobility"
	HabitMindfulness HabitCategory = "mindfulness"
	HabitNutrition   HabitCategory = "nutrition"
)

// Habit is a static catalog entry.
type Habit struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    HabitCategory `json:"category"`
}

// HabitPlan is the daily habit list plus the weekly challenge.
type HabitPlan struct {
	DailyHabits     []Habit `json:"dailyHabits"`
	WeeklyChallenge string  `json:"weeklyChallenge"`
}
