package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/services"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	planService        services.PlanService
	logService         services.LogService
	maintenanceService services.MaintenanceService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	planService services.PlanService,
	logService services.LogService,
	maintenanceService services.MaintenanceService,
) *APIHandler {
	return &APIHandler{
		planService:        planService,
		logService:         logService,
		maintenanceService: maintenanceService,
	}
}

// InitHandler returns application initialization information. A
// missing or guest userID gets a fresh guest identity; the response
// also reports whether the user already has a generated plan.
// GET /api/init?userID=...
func (h *APIHandler) InitHandler(c *gin.Context) {
	userID := c.Query("userID")
	var userType string
	var actualUserID string

	if userID == "" || strings.HasPrefix(userID, "guest_") {
		userType = "guest"
		if userID == "" {
			actualUserID = utils.NewGuestID()
			log.Printf("INFO: [API] No userID provided, generated new guest ID: %s", actualUserID)
		} else {
			actualUserID = userID
		}
	} else {
		userType = "registered"
		actualUserID = userID
	}

	plan, err := h.planService.GetPlan(actualUserID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load user state.", err)
		return
	}

	hasPlan := plan != nil
	tier := models.TierUnselected
	if hasPlan {
		tier = plan.SubscriptionTier
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "OK",
		"data": gin.H{
			"userType":         userType,
			"userID":           actualUserID,
			"hasPlan":          hasPlan,
			"subscriptionTier": tier,
		},
	})
}

type profileRequest struct {
	UserID  string             `json:"user_id" binding:"required"`
	Profile models.UserProfile `json:"profile" binding:"required"`
}

// GeneratePlanHandler generates and stores a plan from an onboarding
// profile, replacing any existing plan for the user.
// POST /api/plan/generate
func (h *APIHandler) GeneratePlanHandler(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	plan, err := h.planService.CreatePlan(req.UserID, req.Profile)
	if err != nil {
		if strings.Contains(err.Error(), "daysPerWeek") || strings.Contains(err.Error(), "must be positive") {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid profile values.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to generate plan.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Plan generated successfully",
		"data":    plan,
	})
}

// UpdateProfileHandler saves an edited profile and regenerates the
// plan from it, keeping the subscription window, tier and history.
// POST /api/profile/save
func (h *APIHandler) UpdateProfileHandler(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	plan, err := h.planService.UpdateProfile(req.UserID, req.Profile)
	if err != nil {
		if strings.Contains(err.Error(), "daysPerWeek") || strings.Contains(err.Error(), "must be positive") {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid profile values.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to update profile.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Profile saved and plan regenerated",
		"data":    plan,
	})
}

// GetPlanHandler returns the user's stored plan.
// GET /api/plan/user/:userID
func (h *APIHandler) GetPlanHandler(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "UserID parameter is required.", nil)
		return
	}

	plan, err := h.planService.GetPlan(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch plan.", err)
		return
	}
	if plan == nil {
		utils.SendJSONError(c, http.StatusNotFound, "No plan found for this user.", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Plan retrieved successfully",
		"data":    plan,
	})
}

// SetTierHandler updates the subscription tier on the stored plan.
// POST /api/plan/tier
func (h *APIHandler) SetTierHandler(c *gin.Context) {
	var req struct {
		UserID string                  `json:"user_id" binding:"required"`
		Tier   models.SubscriptionTier `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	plan, err := h.planService.SetSubscriptionTier(req.UserID, req.Tier)
	if err != nil {
		if errors.Is(err, services.ErrNoPlan) {
			utils.SendJSONError(c, http.StatusNotFound, "No plan found for this user.", err)
		} else if strings.Contains(err.Error(), "unknown subscription tier") {
			utils.SendJSONError(c, http.StatusBadRequest, "Unknown subscription tier.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to set subscription tier.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Subscription tier updated",
		"data":    plan,
	})
}

// ResetPlanHandler deletes the user's plan, profile and logs.
// POST /api/plan/reset
func (h *APIHandler) ResetPlanHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	if err := h.planService.ResetPlan(req.UserID); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to reset user data.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "User data reset",
		"data":    nil,
	})
}

// GetCalendarHandler projects the user's plan and logs onto calendar
// weeks covering the subscription window.
// GET /api/calendar/:userID
func (h *APIHandler) GetCalendarHandler(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "UserID parameter is required.", nil)
		return
	}

	calendar, err := h.planService.MonthlyCalendar(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoPlan) {
			utils.SendJSONError(c, http.StatusNotFound, "No plan found for this user.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to build calendar.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Calendar retrieved successfully",
		"data":    calendar,
	})
}

type toggleRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD, local calendar day
	ItemID string `json:"item_id" binding:"required"`
}

func (h *APIHandler) handleToggle(c *gin.Context, toggle func(userID, date, itemID string) (*models.DailyLog, error)) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	dailyLog, err := toggle(req.UserID, req.Date, req.ItemID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to update log.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Log updated",
		"data":    dailyLog,
	})
}

// ToggleWorkoutHandler flips a workout session's done state for a date.
// POST /api/log/workout
func (h *APIHandler) ToggleWorkoutHandler(c *gin.Context) {
	h.handleToggle(c, h.logService.ToggleWorkout)
}

// ToggleMealHandler flips a meal's eaten state for a date.
// POST /api/log/meal
func (h *APIHandler) ToggleMealHandler(c *gin.Context) {
	h.handleToggle(c, h.logService.ToggleMeal)
}

// ToggleHabitHandler flips a habit's done state for a date.
// POST /api/log/habit
func (h *APIHandler) ToggleHabitHandler(c *gin.Context) {
	h.handleToggle(c, h.logService.ToggleHabit)
}

// SetEnergyHandler records the daily 1..5 energy check-in.
// POST /api/log/energy
func (h *APIHandler) SetEnergyHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Date   string `json:"date" binding:"required"`
		Energy int    `json:"energy" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	dailyLog, err := h.logService.SetDailyEnergy(req.UserID, req.Date, req.Energy)
	if err != nil {
		if strings.Contains(err.Error(), "energy must be") {
			utils.SendJSONError(c, http.StatusBadRequest, "Energy must be between 1 and 5.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to record energy.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Energy recorded",
		"data":    dailyLog,
	})
}

// GetLogsHandler returns every daily log for the user keyed by date.
// GET /api/log/user/:userID
func (h *APIHandler) GetLogsHandler(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "UserID parameter is required.", nil)
		return
	}

	logs, err := h.logService.GetLogs(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch logs.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Logs retrieved successfully",
		"data":    logs,
	})
}

// SweepHandler runs the expired-subscription sweep on demand. The
// same sweep also runs on the configured schedule.
// POST /api/maintenance/sweep
func (h *APIHandler) SweepHandler(c *gin.Context) {
	count, err := h.maintenanceService.SweepExpiredPlans()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Sweep failed.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Sweep completed",
		"data":    gin.H{"expired": count},
	})
}
