package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/repository"
)

// LogService mutates daily completion logs. Every operation works on
// a local-calendar date key (YYYY-MM-DD) and creates the day's log on
// first touch.
type LogService interface {
	ToggleWorkout(userID, date, sessionID string) (*models.DailyLog, error)
	ToggleMeal(userID, date, mealID string) (*models.DailyLog, error)
	ToggleHabit(userID, date, habitID string) (*models.DailyLog, error)
	SetDailyEnergy(userID, date string, energy int) (*models.DailyLog, error)
	GetLogs(userID string) (map[string]models.DailyLog, error)
}

type logService struct {
	logRepo repository.LogRepository
}

// NewLogService creates a new instance of LogService.
func NewLogService(logRepo repository.LogRepository) LogService {
	return &logService{logRepo: logRepo}
}

// toggleID removes id from ids when present, otherwise appends it.
func toggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func (s *logService) loadOrCreate(userID, date string) (*models.DailyLog, error) {
	if date == "" {
		return nil, errors.New("date cannot be empty")
	}
	dailyLog, err := s.logRepo.GetLog(userID, date)
	if err != nil {
		return nil, err
	}
	if dailyLog == nil {
		created := models.EmptyDailyLog(date)
		return &created, nil
	}
	// Older app versions could persist nil slices; normalize so the
	// API always serves arrays.
	if dailyLog.WorkoutsCompleted == nil {
		dailyLog.WorkoutsCompleted = []string{}
	}
	if dailyLog.MealsCompleted == nil {
		dailyLog.MealsCompleted = []string{}
	}
	if dailyLog.HabitsCompleted == nil {
		dailyLog.HabitsCompleted = []string{}
	}
	return dailyLog, nil
}

func (s *logService) save(userID string, dailyLog *models.DailyLog) (*models.DailyLog, error) {
	if err := s.logRepo.UpsertLog(userID, dailyLog); err != nil {
		return nil, err
	}
	return dailyLog, nil
}

// ToggleWorkout marks a workout session done, or un-done if it was
// already marked, for the given date.
func (s *logService) ToggleWorkout(userID, date, sessionID string) (*models.DailyLog, error) {
	if sessionID == "" {
		return nil, errors.New("sessionID cannot be empty")
	}
	dailyLog, err := s.loadOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	dailyLog.WorkoutsCompleted = toggleID(dailyLog.WorkoutsCompleted, sessionID)
	log.Printf("INFO: [LogService] Toggled workout %s on %s for userID %s.", sessionID, date, userID)
	return s.save(userID, dailyLog)
}

// ToggleMeal marks a meal eaten, or un-done, for the given date.
func (s *logService) ToggleMeal(userID, date, mealID string) (*models.DailyLog, error) {
	if mealID == "" {
		return nil, errors.New("mealID cannot be empty")
	}
	dailyLog, err := s.loadOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	dailyLog.MealsCompleted = toggleID(dailyLog.MealsCompleted, mealID)
	return s.save(userID, dailyLog)
}

// ToggleHabit marks a habit done, or un-done, for the given date.
func (s *logService) ToggleHabit(userID, date, habitID string) (*models.DailyLog, error) {
	if habitID == "" {
		return nil, errors.New("habitID cannot be empty")
	}
	dailyLog, err := s.loadOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	dailyLog.HabitsCompleted = toggleID(dailyLog.HabitsCompleted, habitID)
	return s.save(userID, dailyLog)
}

// SetDailyEnergy records the 1..5 energy check-in for the given date.
func (s *logService) SetDailyEnergy(userID, date string, energy int) (*models.DailyLog, error) {
	if energy < 1 || energy > 5 {
		return nil, fmt.Errorf("energy must be between 1 and 5, got %d", energy)
	}
	dailyLog, err := s.loadOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	dailyLog.Energy = &energy
	return s.save(userID, dailyLog)
}

// GetLogs returns all of the user's daily logs keyed by date.
func (s *logService) GetLogs(userID string) (map[string]models.DailyLog, error) {
	return s.logRepo.GetLogsByUserID(userID)
}
