package models

// CalendarWorkoutSummary is a day's workout with its completion state.
type CalendarWorkoutSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Focus     Focus  `json:"focus"`
	Completed bool   `json:"completed"`
}

// CalendarItemSummary is a meal or habit with its completion state.
type CalendarItemSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CalendarDaySummary is the derived view of one calendar day. Meals
// and habits are always present (possibly with all-false completion)
// so renderers never special-case absent arrays.
type CalendarDaySummary struct {
	Date           string                  `json:"date"` // YYYY-MM-DD
	DayNumber      int                     `json:"dayNumber"`
	DayLabel       string                  `json:"dayLabel"`
	InSubscription bool                    `json:"inSubscription"`
	IsToday        bool                    `json:"isToday"`
	IsFuture       bool                    `json:"isFuture"`
	DayType        DayIntensity            `json:"dayType,omitempty"`
	Workout        *CalendarWorkoutSummary `json:"workout"`
	Meals          []CalendarItemSummary   `json:"meals"`
	Habits         []CalendarItemSummary   `json:"habits"`
}

// CalendarData is the full subscription-window calendar, rebuilt on
// every request and never persisted. Weeks are Monday-start rows; a
// trailing partial week may be shorter than 7 days.
type CalendarData struct {
	Start      string                         `json:"start"` // RFC3339
	End        string                         `json:"end"`   // RFC3339
	Weeks      [][]CalendarDaySummary         `json:"weeks"`
	DaysByDate map[string]*CalendarDaySummary `json:"daysByDate"`
}
