package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LogRepository defines the interface for daily completion logs.
// Rows are unique per (userID, date) where date is a local-day key
// in YYYY-MM-DD form.
type LogRepository interface {
	UpsertLog(userID string, dailyLog *models.DailyLog) error
	GetLog(userID, date string) (*models.DailyLog, error)
	GetLogsByUserID(userID string) (map[string]models.DailyLog, error)
	DeleteLogsForUser(userID string) error
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new instance of LogRepository.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

// UpsertLog stores the full log entry for one day, replacing any
// previous entry for the same (user, date) pair.
func (r *logRepository) UpsertLog(userID string, dailyLog *models.DailyLog) error {
	if userID == "" {
		log.Printf("ERROR: [LogRepository] UpsertLog: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	if dailyLog == nil || dailyLog.Date == "" {
		log.Printf("ERROR: [LogRepository] UpsertLog: log entry must carry a date")
		return errors.New("log entry must carry a date")
	}

	payload, err := json.Marshal(dailyLog)
	if err != nil {
		log.Printf("ERROR: [LogRepository] Failed to marshal log for userID %s date %s: %v", userID, dailyLog.Date, err)
		return fmt.Errorf("failed to marshal log for userID %s date %s: %w", userID, dailyLog.Date, err)
	}

	record := models.DailyLogRecord{
		UserID:  userID,
		Date:    dailyLog.Date,
		Payload: string(payload),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payload": string(payload),
		}),
	}).Create(&record).Error
	if err != nil {
		log.Printf("ERROR: [LogRepository] Failed to upsert log for userID %s date %s: %v", userID, dailyLog.Date, err)
		return fmt.Errorf("failed to upsert log for userID %s date %s: %w", userID, dailyLog.Date, err)
	}
	return nil
}

// GetLog retrieves one day's log. Returns (nil, nil) when no entry
// exists for the given date.
func (r *logRepository) GetLog(userID, date string) (*models.DailyLog, error) {
	if userID == "" || date == "" {
		log.Printf("ERROR: [LogRepository] GetLog: userID and date cannot be empty")
		return nil, errors.New("userID and date cannot be empty")
	}

	var record models.DailyLogRecord
	err := r.db.First(&record, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [LogRepository] Failed to retrieve log for userID %s date %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to retrieve log for userID %s date %s: %w", userID, date, err)
	}

	var dailyLog models.DailyLog
	if err := json.Unmarshal([]byte(record.Payload), &dailyLog); err != nil {
		log.Printf("ERROR: [LogRepository] Failed to unmarshal log payload for userID %s date %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to unmarshal log payload for userID %s date %s: %w", userID, date, err)
	}
	return &dailyLog, nil
}

// GetLogsByUserID retrieves all logs for a user keyed by date string.
// An empty map is returned when the user has never logged anything.
func (r *logRepository) GetLogsByUserID(userID string) (map[string]models.DailyLog, error) {
	if userID == "" {
		log.Printf("ERROR: [LogRepository] GetLogsByUserID: userID cannot be empty")
		return nil, errors.New("userID cannot be empty")
	}

	var records []models.DailyLogRecord
	err := r.db.Where("user_id = ?", userID).Find(&records).Error
	if err != nil {
		log.Printf("ERROR: [LogRepository] Failed to retrieve logs for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve logs for userID %s: %w", userID, err)
	}

	logs := make(map[string]models.DailyLog, len(records))
	for _, record := range records {
		var dailyLog models.DailyLog
		if err := json.Unmarshal([]byte(record.Payload), &dailyLog); err != nil {
			log.Printf("WARN: [LogRepository] Skipping corrupt log payload for userID %s date %s: %v", userID, record.Date, err)
			continue
		}
		logs[record.Date] = dailyLog
	}
	return logs, nil
}

// DeleteLogsForUser permanently removes every log row for a user.
func (r *logRepository) DeleteLogsForUser(userID string) error {
	if userID == "" {
		log.Printf("ERROR: [LogRepository] DeleteLogsForUser: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.DailyLogRecord{}).Error
	if err != nil {
		log.Printf("ERROR: [LogRepository] Failed to delete logs for userID %s: %v", userID, err)
		return fmt.Errorf("failed to delete logs for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [LogRepository] Deleted all logs for userID %s.", userID)
	return nil
}
