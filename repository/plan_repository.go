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

// PlanRepository defines the interface for interacting with stored
// generated plans. Each user owns at most one plan row; the aggregate
// is persisted as an opaque JSON payload.
type PlanRepository interface {
	UpsertPlan(userID string, plan *models.GeneratedPlan) error
	GetPlanByUserID(userID string) (*models.GeneratedPlan, error)
	DeletePlan(userID string, hardDelete bool) error
	ListActiveRecords() ([]*models.PlanRecord, error)
	MarkExpired(userID string) error
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new instance of PlanRepository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// UpsertPlan stores the generated plan for a user, replacing any
// previous row. Regeneration is a wholesale replacement by design.
func (r *planRepository) UpsertPlan(userID string, plan *models.GeneratedPlan) error {
	if userID == "" {
		log.Printf("ERROR: [PlanRepository] UpsertPlan: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	if plan == nil {
		log.Printf("ERROR: [PlanRepository] UpsertPlan: plan cannot be nil")
		return errors.New("plan cannot be nil")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to marshal plan for userID %s: %v", userID, err)
		return fmt.Errorf("failed to marshal plan for userID %s: %w", userID, err)
	}

	record := models.PlanRecord{
		UserID:  userID,
		PlanID:  plan.ID,
		Status:  models.PlanStatusActive,
		Payload: string(payload),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"plan_id": plan.ID,
			"status":  models.PlanStatusActive,
			"payload": string(payload),
		}),
	}).Create(&record).Error
	if err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to upsert plan for userID %s: %v", userID, err)
		return fmt.Errorf("failed to upsert plan for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [PlanRepository] Successfully stored plan %s for userID %s.", plan.ID, userID)
	return nil
}

// GetPlanByUserID retrieves and unmarshals a user's plan. Returns
// (nil, nil) when the user has no stored plan.
func (r *planRepository) GetPlanByUserID(userID string) (*models.GeneratedPlan, error) {
	if userID == "" {
		log.Printf("ERROR: [PlanRepository] GetPlanByUserID: userID cannot be empty")
		return nil, errors.New("userID cannot be empty")
	}

	var record models.PlanRecord
	err := r.db.First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [PlanRepository] No plan found for userID %s.", userID)
			return nil, nil
		}
		log.Printf("ERROR: [PlanRepository] Failed to retrieve plan for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve plan for userID %s: %w", userID, err)
	}

	var plan models.GeneratedPlan
	if err := json.Unmarshal([]byte(record.Payload), &plan); err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to unmarshal plan payload for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to unmarshal plan payload for userID %s: %w", userID, err)
	}
	return &plan, nil
}

// DeletePlan removes a user's plan row.
func (r *planRepository) DeletePlan(userID string, hardDelete bool) error {
	if userID == "" {
		log.Printf("ERROR: [PlanRepository] DeletePlan: userID cannot be empty")
		return errors.New("userID cannot be empty")
	}
	dbQuery := r.db
	action := "soft-deleted"
	if hardDelete {
		dbQuery = r.db.Unscoped()
		action = "hard-deleted (permanently)"
	}
	err := dbQuery.Where("user_id = ?", userID).Delete(&models.PlanRecord{}).Error
	if err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to delete plan for userID %s: %v", userID, err)
		return fmt.Errorf("failed to delete plan for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [PlanRepository] Successfully %s plan for userID %s.", action, userID)
	return nil
}

// ListActiveRecords returns every stored plan row still marked active.
// Used by the maintenance sweep; payloads are not unmarshalled here.
func (r *planRepository) ListActiveRecords() ([]*models.PlanRecord, error) {
	var records []*models.PlanRecord
	err := r.db.Where("status = ?", models.PlanStatusActive).Order("user_id asc").Find(&records).Error
	if err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to list active plan records: %v", err)
		return nil, fmt.Errorf("failed to list active plan records: %w", err)
	}
	return records, nil
}

// MarkExpired flags a user's plan row as past its subscription window.
func (r *planRepository) MarkExpired(userID string) error {
	err := r.db.Model(&models.PlanRecord{}).
		Where("user_id = ?", userID).
		Update("status", models.PlanStatusExpired).Error
	if err != nil {
		log.Printf("ERROR: [PlanRepository] Failed to mark plan expired for userID %s: %v", userID, err)
		return fmt.Errorf("failed to mark plan expired for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [PlanRepository] Marked plan expired for userID %s.", userID)
	return nil
}
