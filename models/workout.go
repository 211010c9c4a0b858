package models

// Focus is the muscle-group/modality tag on an exercise or session.
type Focus string

const (
	FocusUpper    Focus = "upper"
	FocusLower    Focus = "lower"
	FocusFull     Focus = "full"
	FocusCore     Focus = "core"
	FocusCardio   Focus = "cardio"
	FocusPush     Focus = "push"
	FocusPull     Focus = "pull"
	FocusMobility Focus = "mobility"
)

// ExerciseIntensity gates an exercise by user activity level.
type ExerciseIntensity string

const (
	IntensityBeginner     ExerciseIntensity = "beginner"
	IntensityIntermediate ExerciseIntensity = "intermediate"
	IntensityAdvanced     ExerciseIntensity = "advanced"
)

// WorkoutExercise is a static catalog entry.
type WorkoutExercise struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Equipment         string            `json:"equipment"`
	Focus             Focus             `json:"focus"`
	Instructions      string            `json:"instructions"`
	Sets              int               `json:"sets"`
	RepRange          string            `json:"repRange"`
	GoalTags          []Goal            `json:"goalTags,omitempty"`
	HealthTags        []HealthCondition `json:"healthTags,omitempty"`
	Intensity         ExerciseIntensity `json:"intensity,omitempty"`
	PreferredLocation TrainingLocation  `json:"preferredLocation,omitempty"`
}

// SessionDifficulty is the binary difficulty of a generated session.
type SessionDifficulty string

const (
	DifficultyBeginner     SessionDifficulty = "beginner"
	DifficultyIntermediate SessionDifficulty = "intermediate"
)

// WorkoutSession is a single generated workout.
type WorkoutSession struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Focus           Focus             `json:"focus"`
	Difficulty      SessionDifficulty `json:"difficulty"`
	DurationMinutes int               `json:"durationMinutes"`
	Notes           string            `json:"notes"`
	Exercises       []WorkoutExercise `json:"exercises"`
}

// ScheduleEntry maps a weekday (0 Monday .. 6 Sunday) to an optional session.
type ScheduleEntry struct {
	Day       int    `json:"day"`
	SessionID string `json:"sessionId,omitempty"`
}

// TrainingPlan is the weekly split with its sessions and 7-slot schedule.
// Every non-empty SessionID in Schedule references an entry in Sessions.
type TrainingPlan struct {
	Split    string           `json:"split"`
	Sessions []WorkoutSession `json:"sessions"`
	Schedule []ScheduleEntry  `json:"schedule"`
}
