package models

import (
	"time"
)

// DailyLog is the per-user-per-date completion record. The date is a
// local-calendar ISO day (YYYY-MM-DD), not a UTC-midnight truncation.
// A missing log for a date means no activity was recorded.
type DailyLog struct {
	Date              string   `json:"date"`
	Energy            *int     `json:"energy,omitempty"` // 1..5
	WorkoutsCompleted []string `json:"workoutsCompleted"`
	MealsCompleted    []string `json:"mealsCompleted"`
	HabitsCompleted   []string `json:"habitsCompleted"`
}

// EmptyDailyLog returns an all-empty log for the date. Used when a
// toggle touches a date for the first time.
func EmptyDailyLog(date string) DailyLog {
	return DailyLog{
		Date:              date,
		WorkoutsCompleted: []string{},
		MealsCompleted:    []string{},
		HabitsCompleted:   []string{},
	}
}

// DailyLogRecord is the persisted log row, unique per (user, date).
type DailyLogRecord struct {
	ID        uint      `gorm:"primarykey"`
	UserID    string    `gorm:"uniqueIndex:idx_user_date;not null"`
	Date      string    `gorm:"uniqueIndex:idx_user_date;not null"` // YYYY-MM-DD
	Payload   string    `gorm:"type:text;not null"`                 // DailyLog JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the DailyLogRecord model.
func (DailyLogRecord) TableName() string {
	return "daily_logs"
}
