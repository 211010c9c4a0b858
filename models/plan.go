package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionTier is the user's chosen plan coverage.
type SubscriptionTier string

const (
	TierUnselected SubscriptionTier = "unselected"
	TierNutrition  SubscriptionTier = "nutrition"
	TierTraining   SubscriptionTier = "training"
	TierHabits     SubscriptionTier = "habits"
	TierFull       SubscriptionTier = "full"
)

// ValidSubscriptionTier reports whether the value is a known tier.
func ValidSubscriptionTier(tier SubscriptionTier) bool {
	switch tier {
	case TierUnselected, TierNutrition, TierTraining, TierHabits, TierFull:
		return true
	}
	return false
}

// GeneratedPlan is the persisted root aggregate produced by the
// generator. It is replaced wholesale on regeneration; the profile
// history is append-only across regenerations.
type GeneratedPlan struct {
	ID                string            `json:"id"`
	CreatedAt         string            `json:"createdAt"`         // RFC3339
	SubscriptionStart string            `json:"subscriptionStart"` // RFC3339, start of local day
	SubscriptionEnd   string            `json:"subscriptionEnd"`   // RFC3339, start of local day
	SubscriptionTier  SubscriptionTier  `json:"subscriptionTier"`
	ProfileSnapshot   ProfileSnapshot   `json:"profileSnapshot"`
	ProfileHistory    []ProfileSnapshot `json:"profileHistory"`
	Training          TrainingPlan      `json:"training"`
	Nutrition         NutritionPlan     `json:"nutrition"`
	Habits            HabitPlan         `json:"habits"`
}

// PlanStatus is the lifecycle state of a stored plan row.
type PlanStatus string

const (
	PlanStatusActive  PlanStatus = "active"
	PlanStatusExpired PlanStatus = "expired"
)

// PlanRecord is the persisted plan row, one per user. The generated
// plan aggregate is stored verbatim as a JSON payload; the engine has
// no knowledge of how it is stored.
type PlanRecord struct {
	ID        uint           `gorm:"primarykey"`
	UserID    string         `gorm:"uniqueIndex;not null"`
	PlanID    string         `gorm:"not null"`
	Status    PlanStatus     `gorm:"type:varchar(20);default:'active';not null"`
	Payload   string         `gorm:"type:text;not null"` // GeneratedPlan JSON
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for the PlanRecord model.
func (PlanRecord) TableName() string {
	return "plans"
}
