package services

import (
	"errors"
	"testing"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlanRepository is a mock type for the PlanRepository interface
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) UpsertPlan(userID string, plan *models.GeneratedPlan) error {
	args := m.Called(userID, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetPlanByUserID(userID string) (*models.GeneratedPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedPlan), args.Error(1)
}

func (m *MockPlanRepository) DeletePlan(userID string, hardDelete bool) error {
	args := m.Called(userID, hardDelete)
	return args.Error(0)
}

func (m *MockPlanRepository) ListActiveRecords() ([]*models.PlanRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PlanRecord), args.Error(1)
}

func (m *MockPlanRepository) MarkExpired(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockProfileRepository is a mock type for the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) UpsertProfile(userID string, profile *models.UserProfile) error {
	args := m.Called(userID, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByUserID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) DeleteProfile(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockLogRepository is a mock type for the LogRepository interface
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) UpsertLog(userID string, dailyLog *models.DailyLog) error {
	args := m.Called(userID, dailyLog)
	return args.Error(0)
}

func (m *MockLogRepository) GetLog(userID, date string) (*models.DailyLog, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

func (m *MockLogRepository) GetLogsByUserID(userID string) (map[string]models.DailyLog, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.DailyLog), args.Error(1)
}

func (m *MockLogRepository) DeleteLogsForUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func newPlanServiceForTest(planRepo *MockPlanRepository, profileRepo *MockProfileRepository, logRepo *MockLogRepository, now time.Time) PlanService {
	service := NewPlanService(planRepo, profileRepo, logRepo).(*planService)
	service.now = func() time.Time { return now }
	return service
}

func TestPlanService_CreatePlan(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
	userID := "user-1"

	t.Run("generates and stores plan and profile", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, new(MockLogRepository), now)

		mockPlanRepo.On("GetPlanByUserID", userID).Return(nil, nil).Once()
		mockProfileRepo.On("UpsertProfile", userID, mock.AnythingOfType("*models.UserProfile")).Return(nil).Once()
		mockPlanRepo.On("UpsertPlan", userID, mock.MatchedBy(func(p *models.GeneratedPlan) bool {
			return p.ID != "" && len(p.Nutrition.WeeklyPlan) == 7 && p.SubscriptionTier == models.TierUnselected
		})).Return(nil).Once()

		plan, err := service.CreatePlan(userID, baseProfile())
		assert.NoError(t, err)
		assert.NotNil(t, plan)
		mockPlanRepo.AssertExpectations(t)
		mockProfileRepo.AssertExpectations(t)
	})

	t.Run("regeneration passes the stored plan to the generator", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, new(MockLogRepository), now.AddDate(0, 0, 5))

		previous, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		previous.SubscriptionTier = models.TierNutrition

		mockPlanRepo.On("GetPlanByUserID", userID).Return(previous, nil).Once()
		mockProfileRepo.On("UpsertProfile", userID, mock.Anything).Return(nil).Once()
		mockPlanRepo.On("UpsertPlan", userID, mock.Anything).Return(nil).Once()

		plan, err := service.CreatePlan(userID, baseProfile())
		assert.NoError(t, err)
		assert.Equal(t, previous.SubscriptionStart, plan.SubscriptionStart)
		assert.Equal(t, models.TierNutrition, plan.SubscriptionTier)
		assert.Len(t, plan.ProfileHistory, 2)
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("invalid profile is rejected before touching storage", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := newPlanServiceForTest(mockPlanRepo, new(MockProfileRepository), new(MockLogRepository), now)

		profile := baseProfile()
		profile.DaysPerWeek = 9
		plan, err := service.CreatePlan(userID, profile)
		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "daysPerWeek")
		mockPlanRepo.AssertNotCalled(t, "UpsertPlan", mock.Anything, mock.Anything)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, new(MockLogRepository), now)

		mockPlanRepo.On("GetPlanByUserID", userID).Return(nil, nil).Once()
		mockProfileRepo.On("UpsertProfile", userID, mock.Anything).Return(nil).Once()
		mockPlanRepo.On("UpsertPlan", userID, mock.Anything).Return(errors.New("DB error")).Once()

		plan, err := service.CreatePlan(userID, baseProfile())
		assert.Error(t, err)
		assert.Nil(t, plan)
		mockPlanRepo.AssertExpectations(t)
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
	userID := "user-get"

	t.Run("no stored plan returns nil without error", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := newPlanServiceForTest(mockPlanRepo, new(MockProfileRepository), new(MockLogRepository), now)

		mockPlanRepo.On("GetPlanByUserID", userID).Return(nil, nil).Once()
		plan, err := service.GetPlan(userID)
		assert.NoError(t, err)
		assert.Nil(t, plan)
	})

	t.Run("legacy plan is normalized on read", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, new(MockLogRepository), now)

		legacy := &models.GeneratedPlan{ID: "plan-legacy", CreatedAt: now.Format(time.RFC3339)}
		profile := baseProfile()
		mockPlanRepo.On("GetPlanByUserID", userID).Return(legacy, nil).Once()
		mockProfileRepo.On("GetProfileByUserID", userID).Return(&profile, nil).Once()

		plan, err := service.GetPlan(userID)
		assert.NoError(t, err)
		assert.NotEmpty(t, plan.SubscriptionStart)
		assert.NotEmpty(t, plan.SubscriptionEnd)
		assert.Equal(t, models.TierUnselected, plan.SubscriptionTier)
		assert.Len(t, plan.ProfileHistory, 1)
	})
}

func TestPlanService_SetSubscriptionTier(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
	userID := "user-tier"

	t.Run("updates the tier on the stored plan", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, new(MockLogRepository), now)

		stored, err := GeneratePlanAt(baseProfile(), nil, now)
		assert.NoError(t, err)
		mockPlanRepo.On("GetPlanByUserID", userID).Return(stored, nil).Once()
		mockProfileRepo.On("GetProfileByUserID", userID).Return(nil, nil).Once()
		mockPlanRepo.On("UpsertPlan", userID, mock.MatchedBy(func(p *models.GeneratedPlan) bool {
			return p.SubscriptionTier == models.TierFull
		})).Return(nil).Once()

		plan, err := service.SetSubscriptionTier(userID, models.TierFull)
		assert.NoError(t, err)
		assert.Equal(t, models.TierFull, plan.SubscriptionTier)
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("unknown tier is rejected", func(t *testing.T) {
		service := newPlanServiceForTest(new(MockPlanRepository), new(MockProfileRepository), new(MockLogRepository), now)
		plan, err := service.SetSubscriptionTier(userID, "platinum")
		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "unknown subscription tier")
	})

	t.Run("missing plan returns ErrNoPlan", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := newPlanServiceForTest(mockPlanRepo, new(MockProfileRepository), new(MockLogRepository), now)

		mockPlanRepo.On("GetPlanByUserID", userID).Return(nil, nil).Once()
		plan, err := service.SetSubscriptionTier(userID, models.TierHabits)
		assert.ErrorIs(t, err, ErrNoPlan)
		assert.Nil(t, plan)
	})
}

func TestPlanService_ResetPlan(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
	userID := "user-reset"

	t.Run("deletes plan, profile and logs", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		mockLogRepo := new(MockLogRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, mockLogRepo, now)

		mockPlanRepo.On("DeletePlan", userID, true).Return(nil).Once()
		mockProfileRepo.On("DeleteProfile", userID).Return(nil).Once()
		mockLogRepo.On("DeleteLogsForUser", userID).Return(nil).Once()

		assert.NoError(t, service.ResetPlan(userID))
		mockPlanRepo.AssertExpectations(t)
		mockProfileRepo.AssertExpectations(t)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("stops on the first failing delete", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		mockLogRepo := new(MockLogRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, mockLogRepo, now)

		mockPlanRepo.On("DeletePlan", userID, true).Return(errors.New("DB error")).Once()

		assert.Error(t, service.ResetPlan(userID))
		mockProfileRepo.AssertNotCalled(t, "DeleteProfile", mock.Anything)
		mockLogRepo.AssertNotCalled(t, "DeleteLogsForUser", mock.Anything)
	})
}

func TestPlanService_MonthlyCalendar(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.Local)
	userID := "user-calendar"

	t.Run("projects stored plan and logs", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockProfileRepo := new(MockProfileRepository)
		mockLogRepo := new(MockLogRepository)
		service := newPlanServiceForTest(mockPlanRepo, mockProfileRepo, mockLogRepo, now)

		stored, err := GeneratePlanAt(baseProfile(), nil, time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local))
		assert.NoError(t, err)
		mockPlanRepo.On("GetPlanByUserID", userID).Return(stored, nil).Once()
		mockProfileRepo.On("GetProfileByUserID", userID).Return(nil, nil).Once()
		mockLogRepo.On("GetLogsByUserID", userID).Return(map[string]models.DailyLog{}, nil).Once()

		calendar, err := service.MonthlyCalendar(userID)
		assert.NoError(t, err)
		assert.NotNil(t, calendar)
		assert.Len(t, calendar.Weeks, 5)
	})

	t.Run("missing plan returns ErrNoPlan", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := newPlanServiceForTest(mockPlanRepo, new(MockProfileRepository), new(MockLogRepository), now)

		mockPlanRepo.On("GetPlanByUserID", userID).Return(nil, nil).Once()
		calendar, err := service.MonthlyCalendar(userID)
		assert.ErrorIs(t, err, ErrNoPlan)
		assert.Nil(t, calendar)
	})
}
