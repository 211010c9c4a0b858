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

// ProfileRepository defines the interface for stored user profiles.
type ProfileRepository interface {
	UpsertProfile(userID string, profile *models.UserProfile) error
	GetProfileByUserID(userID string) (*models.UserProfile, error)
	DeleteProfile(userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// UpsertProfile stores the user's profile, replacing any previous one.
func (r *profileRepository) UpsertProfile(userID string, profile *models.UserProfile) error {
	if userID == "" {
		log.Printf("ERROR: [ProfileRepository] UpsertProfile: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	if profile == nil {
		log.Printf("ERROR: [ProfileRepository] UpsertProfile: profile cannot be nil")
		return errors.New("profile cannot be nil")
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to marshal profile for userID %s: %v", userID, err)
		return fmt.Errorf("failed to marshal profile for userID %s: %w", userID, err)
	}

	record := models.ProfileRecord{
		UserID:  userID,
		Payload: string(payload),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payload": string(payload),
		}),
	}).Create(&record).Error
	if err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to upsert profile for userID %s: %v", userID, err)
		return fmt.Errorf("failed to upsert profile for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [ProfileRepository] Successfully stored profile for userID %s.", userID)
	return nil
}

// GetProfileByUserID retrieves a user's profile. Returns (nil, nil)
// when no profile has been saved yet.
func (r *profileRepository) GetProfileByUserID(userID string) (*models.UserProfile, error) {
	if userID == "" {
		log.Printf("ERROR: [ProfileRepository] GetProfileByUserID: userID cannot be empty")
		return nil, errors.New("userID cannot be empty")
	}

	var record models.ProfileRecord
	err := r.db.First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [ProfileRepository] Failed to retrieve profile for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve profile for userID %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(record.Payload), &profile); err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to unmarshal profile payload for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to unmarshal profile payload for userID %s: %w", userID, err)
	}
	return &profile, nil
}

// DeleteProfile permanently removes a user's profile row.
func (r *profileRepository) DeleteProfile(userID string) error {
	if userID == "" {
		log.Printf("ERROR: [ProfileRepository] DeleteProfile: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.ProfileRecord{}).Error
	if err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to delete profile for userID %s: %v", userID, err)
		return fmt.Errorf("failed to delete profile for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [ProfileRepository] Deleted profile for userID %s.", userID)
	return nil
}
