package services

import (
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"
)

// subscriptionWindowDays is the default inclusive plan window length.
const subscriptionWindowDays = 30

// GeneratePlanAt builds the full plan aggregate for a profile. The
// previous plan, when present, contributes its profile history,
// subscription tier and subscription window; the plan body is always
// rebuilt from scratch. now is injected so generation is
// deterministic: identical inputs and an identical now produce
// identical output except for the id.
func GeneratePlanAt(profile models.UserProfile, previousPlan *models.GeneratedPlan, now time.Time) (*models.GeneratedPlan, error) {
	training, err := BuildTrainingPlan(profile)
	if err != nil {
		return nil, err
	}
	rotation := CreateRotation(training.Schedule)
	nutrition := BuildNutrition(profile, TargetCalories(profile), rotation)
	habits := BuildHabitPlan(profile)

	subscriptionStart := utils.StartOfLocalDay(now)
	subscriptionEnd := subscriptionStart.AddDate(0, 0, subscriptionWindowDays-1)
	subscriptionTier := models.TierUnselected

	snapshot := models.ProfileSnapshot{
		CapturedAt: now.Format(time.RFC3339),
		Profile:    profile,
	}
	history := []models.ProfileSnapshot{}
	if previousPlan != nil {
		// Regeneration carries the original window and the chosen tier;
		// generating a new plan body must not reset either.
		if start := utils.ParseTimestamp(previousPlan.SubscriptionStart); !start.IsZero() {
			subscriptionStart = start
		}
		if end := utils.ParseTimestamp(previousPlan.SubscriptionEnd); !end.IsZero() {
			subscriptionEnd = end
		}
		if previousPlan.SubscriptionTier != "" {
			subscriptionTier = previousPlan.SubscriptionTier
		}
		if len(previousPlan.ProfileHistory) > 0 {
			history = append(history, previousPlan.ProfileHistory...)
		} else if previousPlan.ProfileSnapshot.CapturedAt != "" {
			history = append(history, previousPlan.ProfileSnapshot)
		}
	}
	history = append(history, snapshot)

	return &models.GeneratedPlan{
		ID:                utils.NewPlanID(now),
		CreatedAt:         now.Format(time.RFC3339),
		SubscriptionStart: subscriptionStart.Format(time.RFC3339),
		SubscriptionEnd:   subscriptionEnd.Format(time.RFC3339),
		SubscriptionTier:  subscriptionTier,
		ProfileSnapshot:   snapshot,
		ProfileHistory:    history,
		Training:          training,
		Nutrition:         nutrition,
		Habits:            habits,
	}, nil
}

// NormalizePlan backfills fields on plans persisted by older
// revisions: missing subscription window, tier, snapshot and history.
// The snapshot is merged into history only when its capturedAt is not
// already present. Safe to call on current plans (no-op).
func NormalizePlan(plan *models.GeneratedPlan, profile *models.UserProfile) *models.GeneratedPlan {
	if plan == nil {
		return nil
	}
	normalized := *plan

	if normalized.SubscriptionStart == "" {
		normalized.SubscriptionStart = normalized.CreatedAt
	}
	if normalized.SubscriptionEnd == "" {
		if start := utils.ParseTimestamp(normalized.SubscriptionStart); !start.IsZero() {
			normalized.SubscriptionEnd = start.AddDate(0, 0, subscriptionWindowDays-1).Format(time.RFC3339)
		}
	}
	if normalized.SubscriptionTier == "" {
		normalized.SubscriptionTier = models.TierUnselected
	}

	fallbackProfile := profile
	if fallbackProfile == nil && normalized.ProfileSnapshot.CapturedAt != "" {
		fallbackProfile = &normalized.ProfileSnapshot.Profile
	}
	if fallbackProfile == nil && len(normalized.ProfileHistory) > 0 {
		fallbackProfile = &normalized.ProfileHistory[len(normalized.ProfileHistory)-1].Profile
	}

	if normalized.ProfileSnapshot.CapturedAt == "" && fallbackProfile != nil {
		normalized.ProfileSnapshot = models.ProfileSnapshot{
			CapturedAt: normalized.CreatedAt,
			Profile:    *fallbackProfile,
		}
	}

	if len(normalized.ProfileHistory) == 0 && fallbackProfile != nil {
		normalized.ProfileHistory = []models.ProfileSnapshot{
			{CapturedAt: normalized.CreatedAt, Profile: *fallbackProfile},
		}
	}
	merged := false
	for _, item := range normalized.ProfileHistory {
		if item.CapturedAt == normalized.ProfileSnapshot.CapturedAt {
			merged = true
			break
		}
	}
	if !merged && normalized.ProfileSnapshot.CapturedAt != "" {
		normalized.ProfileHistory = append(normalized.ProfileHistory, normalized.ProfileSnapshot)
	}

	return &normalized
}
