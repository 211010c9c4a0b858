package models

import (
	"time"
)

// Goal defines the user's primary body-composition goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ActivityLevel describes the user's baseline daily activity.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
)

// DietPreference is the user's declared eating style.
type DietPreference string

const (
	DietOmnivore    DietPreference = "omnivore"
	DietPescatarian DietPreference = "pescatarian"
	DietVegetarian  DietPreference = "vegetarian"
	DietMixed       DietPreference = "mixed"
	DietKeto        DietPreference = "keto"
	DietCarnivore   DietPreference = "carnivore"
)

// HealthCondition is a diagnosed condition the plan must account for.
type HealthCondition string

const (
	ConditionIR        HealthCondition = "IR"
	ConditionHashimoto HealthCondition = "Hashimoto"
	ConditionPCOS      HealthCondition = "PCOS"
)

// TrainingLocation is where the user trains.
type TrainingLocation string

const (
	LocationHome TrainingLocation = "home"
	LocationGym  TrainingLocation = "gym"
)

// Equipment describes available training equipment.
type Equipment struct {
	Location TrainingLocation `json:"location"`
	Items    []string         `json:"items"`
}

// CycleInfo carries optional menstrual-cycle fields from onboarding.
// Both fields are nil when the user skipped the questions.
type CycleInfo struct {
	LastPeriodDate *string `json:"lastPeriodDate,omitempty"` // local ISO date
	CycleLengthDays *int   `json:"cycleLengthDays,omitempty"`
}

// UserProfile is the immutable onboarding snapshot the engine consumes.
// Numeric ranges are validated upstream by the onboarding form.
type UserProfile struct {
	Age              int               `json:"age"`
	HeightCm         float64           `json:"heightCm"`
	WeightKg         float64           `json:"weightKg"`
	Goal             Goal              `json:"goal"`
	ActivityLevel    ActivityLevel     `json:"activityLevel"`
	Equipment        Equipment         `json:"equipment"`
	DaysPerWeek      int               `json:"daysPerWeek"` // 2..5
	DietPreference   DietPreference    `json:"dietPreference"`
	Allergies        []string          `json:"allergies"`
	DislikedFoods    []string          `json:"dislikedFoods"`
	SleepHours       float64           `json:"sleepHours"`
	StressLevel      int               `json:"stressLevel"` // 1..5
	HealthConditions []HealthCondition `json:"healthConditions"`
	Cycle            *CycleInfo        `json:"cycle,omitempty"`
}

// ProfileSnapshot is a dated copy of a profile kept in plan history.
type ProfileSnapshot struct {
	CapturedAt string      `json:"capturedAt"` // RFC3339
	Profile    UserProfile `json:"profile"`
}

// ProfileRecord is the persisted profile row, one per user.
type ProfileRecord struct {
	ID        uint      `gorm:"primarykey"`
	UserID    string    `gorm:"uniqueIndex;not null"`
	Payload   string    `gorm:"type:text;not null"` // UserProfile JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the ProfileRecord model.
func (ProfileRecord) TableName() string {
	return "profiles"
}
