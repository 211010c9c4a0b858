package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/repository"
)

// ErrNoPlan is returned by operations that need an existing plan.
var ErrNoPlan = errors.New("no plan exists for this user")

// PlanService orchestrates plan generation and the calendar
// projection around the stored profile, plan and logs.
type PlanService interface {
	CreatePlan(userID string, profile models.UserProfile) (*models.GeneratedPlan, error)
	GetPlan(userID string) (*models.GeneratedPlan, error)
	UpdateProfile(userID string, profile models.UserProfile) (*models.GeneratedPlan, error)
	SetSubscriptionTier(userID string, tier models.SubscriptionTier) (*models.GeneratedPlan, error)
	ResetPlan(userID string) error
	MonthlyCalendar(userID string) (*models.CalendarData, error)
}

type planService struct {
	planRepo    repository.PlanRepository
	profileRepo repository.ProfileRepository
	logRepo     repository.LogRepository
	now         func() time.Time
}

// NewPlanService creates a new instance of PlanService.
func NewPlanService(planRepo repository.PlanRepository, profileRepo repository.ProfileRepository, logRepo repository.LogRepository) PlanService {
	return &planService{
		planRepo:    planRepo,
		profileRepo: profileRepo,
		logRepo:     logRepo,
		now:         time.Now,
	}
}

func validateProfile(profile models.UserProfile) error {
	if profile.Age <= 0 || profile.HeightCm <= 0 || profile.WeightKg <= 0 {
		return errors.New("age, height and weight must be positive")
	}
	if profile.DaysPerWeek < 2 || profile.DaysPerWeek > 5 {
		return fmt.Errorf("daysPerWeek must be between 2 and 5, got %d", profile.DaysPerWeek)
	}
	return nil
}

// CreatePlan generates and stores a fresh plan for the onboarding
// profile. Any previously stored plan is carried into the generator so
// the profile history and subscription window survive regeneration.
func (s *planService) CreatePlan(userID string, profile models.UserProfile) (*models.GeneratedPlan, error) {
	if err := validateProfile(profile); err != nil {
		log.Printf("WARN: [PlanService] Rejecting invalid profile for userID %s: %v", userID, err)
		return nil, err
	}

	previous, err := s.planRepo.GetPlanByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous plan for userID %s: %w", userID, err)
	}

	plan, err := GeneratePlanAt(profile, previous, s.now())
	if err != nil {
		log.Printf("ERROR: [PlanService] Plan generation failed for userID %s: %v", userID, err)
		return nil, fmt.Errorf("plan generation failed for userID %s: %w", userID, err)
	}

	if err := s.profileRepo.UpsertProfile(userID, &profile); err != nil {
		return nil, err
	}
	if err := s.planRepo.UpsertPlan(userID, plan); err != nil {
		return nil, err
	}
	log.Printf("INFO: [PlanService] Generated plan %s for userID %s (%d training days).", plan.ID, userID, profile.DaysPerWeek)
	return plan, nil
}

// GetPlan returns the user's stored plan, normalized so that plans
// written by older app versions gain the window, tier and history
// fields. Returns (nil, nil) when no plan exists.
func (s *planService) GetPlan(userID string) (*models.GeneratedPlan, error) {
	plan, err := s.planRepo.GetPlanByUserID(userID)
	if err != nil || plan == nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, err
	}
	return NormalizePlan(plan, profile), nil
}

// UpdateProfile saves an edited profile and regenerates the plan from
// it. The subscription window and tier stay as they were; the old
// profile snapshot is retained in the plan's history.
func (s *planService) UpdateProfile(userID string, profile models.UserProfile) (*models.GeneratedPlan, error) {
	return s.CreatePlan(userID, profile)
}

// SetSubscriptionTier updates the tier on the stored plan.
func (s *planService) SetSubscriptionTier(userID string, tier models.SubscriptionTier) (*models.GeneratedPlan, error) {
	if !models.ValidSubscriptionTier(tier) {
		return nil, fmt.Errorf("unknown subscription tier %q", tier)
	}
	plan, err := s.GetPlan(userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoPlan
	}
	plan.SubscriptionTier = tier
	if err := s.planRepo.UpsertPlan(userID, plan); err != nil {
		return nil, err
	}
	log.Printf("INFO: [PlanService] Set subscription tier %s for userID %s.", tier, userID)
	return plan, nil
}

// ResetPlan removes the user's plan, profile and all daily logs. This
// is the "start over" operation and is not recoverable.
func (s *planService) ResetPlan(userID string) error {
	if err := s.planRepo.DeletePlan(userID, true); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteProfile(userID); err != nil {
		return err
	}
	if err := s.logRepo.DeleteLogsForUser(userID); err != nil {
		return err
	}
	log.Printf("INFO: [PlanService] Reset all data for userID %s.", userID)
	return nil
}

// MonthlyCalendar projects the user's plan and logs onto Monday-start
// calendar weeks covering the subscription window.
func (s *planService) MonthlyCalendar(userID string) (*models.CalendarData, error) {
	plan, err := s.GetPlan(userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoPlan
	}
	logs, err := s.logRepo.GetLogsByUserID(userID)
	if err != nil {
		return nil, err
	}
	calendar := CreateMonthlyCalendar(plan, logs, s.now())
	return &calendar, nil
}
