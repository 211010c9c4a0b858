package services

import (
	"fmt"
	"strings"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/data"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

// splitConfig is a weekly split: its display name, the focus of each
// session and the weekday (0 Monday .. 6 Sunday) each session lands on.
type splitConfig struct {
	name    string
	focuses []models.Focus
	days    []int
}

// splits maps supported daysPerWeek values to their split. Any other
// value is a contract violation upstream validation should have caught.
var splits = map[int]splitConfig{
	2: {
		name:    "Full Body A/B",
		focuses: []models.Focus{models.FocusFull, models.FocusFull},
		days:    []int{1, 4},
	},
	3: {
		name:    "Upper / Lower / Full",
		focuses: []models.Focus{models.FocusUpper, models.FocusLower, models.FocusFull},
		days:    []int{0, 2, 4},
	},
	4: {
		name:    "Upper / Lower x2",
		focuses: []models.Focus{models.FocusUpper, models.FocusLower, models.FocusUpper, models.FocusLower},
		days:    []int{0, 1, 3, 4},
	},
	5: {
		name:    "Push / Pull / Legs / Upper / Lower",
		focuses: []models.Focus{models.FocusPush, models.FocusPull, models.FocusLower, models.FocusUpper, models.FocusLower},
		days:    []int{0, 1, 2, 3, 4},
	},
}

const (
	exercisesPerSession = 6
	sessionDuration     = 45
)

// exerciseMatchesProfile applies the profile gates: preferred location,
// goal tags, health-tag relevance and the intensity gate.
func exerciseMatchesProfile(exercise models.WorkoutExercise, profile models.UserProfile) bool {
	if exercise.PreferredLocation != "" && exercise.PreferredLocation != profile.Equipment.Location {
		return false
	}
	if len(exercise.GoalTags) > 0 {
		found := false
		for _, goal := range exercise.GoalTags {
			if goal == profile.Goal {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(exercise.HealthTags) > 0 {
		relevant := false
		for _, tag := range exercise.HealthTags {
			for _, condition := range profile.HealthConditions {
				if tag == condition {
					relevant = true
					break
				}
			}
		}
		if !relevant {
			return false
		}
	}
	if exercise.Intensity == models.IntensityAdvanced && profile.ActivityLevel != models.ActivityHigh {
		return false
	}
	if exercise.Intensity == models.IntensityIntermediate && profile.ActivityLevel == models.ActivitySedentary {
		return false
	}
	return true
}

// focusMatches is the focus-compatibility relation: upper also accepts
// push/pull, full also accepts upper/lower, push/pull also accept upper.
func focusMatches(focus models.Focus, exercise models.WorkoutExercise) bool {
	switch focus {
	case models.FocusFull:
		return exercise.Focus == models.FocusFull || exercise.Focus == models.FocusLower || exercise.Focus == models.FocusUpper
	case models.FocusUpper:
		return exercise.Focus == models.FocusUpper || exercise.Focus == models.FocusPush || exercise.Focus == models.FocusPull
	case models.FocusPush:
		return exercise.Focus == models.FocusPush || exercise.Focus == models.FocusUpper
	case models.FocusPull:
		return exercise.Focus == models.FocusPull || exercise.Focus == models.FocusUpper
	default:
		return exercise.Focus == focus
	}
}

// pickExercises fills a session's slots for one focus: up to count-1
// from the primary (focus-matching) pool, topped up from the
// core/mobility complementary pool, deduplicated by id, catalog order.
// An over-filtered primary pool falls back to the unfiltered base pool
// rather than producing an empty session.
func pickExercises(focus models.Focus, profile models.UserProfile, count int) []models.WorkoutExercise {
	basePool := data.GymExercises
	if profile.Equipment.Location == models.LocationHome {
		basePool = data.HomeExercises
	}

	tailored := make([]models.WorkoutExercise, 0, len(basePool))
	for _, exercise := range basePool {
		if exerciseMatchesProfile(exercise, profile) {
			tailored = append(tailored, exercise)
		}
	}

	filterByFocus := func(pool []models.WorkoutExercise) []models.WorkoutExercise {
		matched := make([]models.WorkoutExercise, 0, len(pool))
		for _, exercise := range pool {
			if focusMatches(focus, exercise) {
				matched = append(matched, exercise)
			}
		}
		return matched
	}
	filterComplementary := func(pool []models.WorkoutExercise) []models.WorkoutExercise {
		matched := make([]models.WorkoutExercise, 0, len(pool))
		for _, exercise := range pool {
			if exercise.Focus == models.FocusCore || exercise.Focus == models.FocusMobility {
				matched = append(matched, exercise)
			}
		}
		return matched
	}

	primary := filterByFocus(tailored)
	if len(primary) == 0 {
		primary = filterByFocus(basePool)
	}
	complementary := filterComplementary(tailored)
	if len(complementary) == 0 {
		complementary = filterComplementary(basePool)
	}

	selected := make([]models.WorkoutExercise, 0, count)
	used := make(map[string]bool)
	pickFromList := func(list []models.WorkoutExercise, target int) {
		for _, exercise := range list {
			if len(selected) >= target {
				break
			}
			if !used[exercise.ID] {
				selected = append(selected, exercise)
				used[exercise.ID] = true
			}
		}
	}

	pickFromList(primary, count-1)
	if len(selected) < count {
		pickFromList(complementary, count)
	}
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

func buildSessions(profile models.UserProfile, config splitConfig) []models.WorkoutSession {
	sessions := make([]models.WorkoutSession, 0, len(config.focuses))
	for index, focus := range config.focuses {
		difficulty := models.DifficultyIntermediate
		if profile.ActivityLevel == models.ActivitySedentary {
			difficulty = models.DifficultyBeginner
		}
		notes := "Prati tehniku, disanje i kontroliši tempo 2-1-1."
		if focus == models.FocusFull {
			notes = "Postepeno povećavaj težinu kada odradiš gornji broj ponavljanja dve nedelje zaredom."
		}
		sessions = append(sessions, models.WorkoutSession{
			ID:              fmt.Sprintf("%s-%d", focus, index+1),
			Title:           fmt.Sprintf("%s %d", titleCase(string(focus)), index+1),
			Focus:           focus,
			Difficulty:      difficulty,
			DurationMinutes: sessionDuration,
			Notes:           notes,
			Exercises:       pickExercises(focus, profile, exercisesPerSession),
		})
	}
	return sessions
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildTrainingPlan selects the weekly split for the profile and fills
// each session. Returns an error for a daysPerWeek outside {2,3,4,5}.
func BuildTrainingPlan(profile models.UserProfile) (models.TrainingPlan, error) {
	config, ok := splits[profile.DaysPerWeek]
	if !ok {
		return models.TrainingPlan{}, fmt.Errorf("unsupported daysPerWeek value %d (expected 2-5)", profile.DaysPerWeek)
	}

	sessions := buildSessions(profile, config)

	schedule := make([]models.ScheduleEntry, 7)
	for index := range schedule {
		schedule[index] = models.ScheduleEntry{Day: index}
	}
	for idx, session := range sessions {
		dayIndex := idx
		if idx < len(config.days) {
			dayIndex = config.days[idx]
		}
		schedule[dayIndex] = models.ScheduleEntry{Day: dayIndex, SessionID: session.ID}
	}

	return models.TrainingPlan{
		Split:    config.name,
		Sessions: sessions,
		Schedule: schedule,
	}, nil
}

// CreateRotation derives the 7-slot day-intensity rotation from a
// schedule: the first two training days are high, the rest mid, and
// every rest day is low.
func CreateRotation(schedule []models.ScheduleEntry) []models.DayIntensity {
	rotation := make([]models.DayIntensity, 7)
	for index := range rotation {
		rotation[index] = models.DayLow
	}
	sessionCount := 0
	for _, entry := range schedule {
		if entry.SessionID == "" {
			continue
		}
		if sessionCount < 2 {
			rotation[entry.Day] = models.DayHigh
		} else {
			rotation[entry.Day] = models.DayMid
		}
		sessionCount++
	}
	return rotation
}
