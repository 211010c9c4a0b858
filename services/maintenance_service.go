package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/repository"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"
)

// MaintenanceService hosts the periodic sweep that flags plans whose
// subscription window has ended. Flagged rows are kept; the data stays
// readable but the app surfaces a renewal prompt.
type MaintenanceService interface {
	SweepExpiredPlans() (int, error)
}

type maintenanceService struct {
	planRepo repository.PlanRepository
	now      func() time.Time
}

// NewMaintenanceService creates a new instance of MaintenanceService.
func NewMaintenanceService(planRepo repository.PlanRepository) MaintenanceService {
	return &maintenanceService{planRepo: planRepo, now: time.Now}
}

// SweepExpiredPlans marks every active plan whose subscription end
// date lies strictly before the start of the current local day.
// Returns the number of plans flagged.
func (s *maintenanceService) SweepExpiredPlans() (int, error) {
	records, err := s.planRepo.ListActiveRecords()
	if err != nil {
		return 0, err
	}

	today := utils.StartOfLocalDay(s.now())
	expired := 0
	for _, record := range records {
		var plan models.GeneratedPlan
		if err := json.Unmarshal([]byte(record.Payload), &plan); err != nil {
			log.Printf("WARN: [MaintenanceService] Skipping unreadable plan payload for userID %s: %v", record.UserID, err)
			continue
		}
		end := utils.ParseTimestamp(plan.SubscriptionEnd)
		if end.IsZero() {
			// Plans from before subscription windows existed never expire
			// on their own; regeneration will backfill the window.
			continue
		}
		if end.Before(today) {
			if err := s.planRepo.MarkExpired(record.UserID); err != nil {
				log.Printf("ERROR: [MaintenanceService] Failed to flag expired plan for userID %s: %v", record.UserID, err)
				continue
			}
			expired++
		}
	}
	if expired > 0 {
		log.Printf("INFO: [MaintenanceService] Sweep flagged %d expired plan(s).", expired)
	}
	return expired, nil
}
