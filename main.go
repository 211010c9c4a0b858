package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/api"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/config"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/database"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/middleware"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/repository"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/services"

	"gorm.io/gorm"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Auto-migrate database schema
	runMigrations(db)

	// Initialize Repositories
	planRepo := repository.NewPlanRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	logRepo := repository.NewLogRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	planService := services.NewPlanService(planRepo, profileRepo, logRepo)
	logService := services.NewLogService(logRepo)
	maintenanceService := services.NewMaintenanceService(planRepo)
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(planService, logService, maintenanceService)
	log.Println("INFO: [Main] API Handler initialized.")

	// Schedule the expired-subscription sweep
	startMaintenanceCron(maintenanceService)

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.PlanRecord{},
		&models.ProfileRecord{},
		&models.DailyLogRecord{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func startMaintenanceCron(maintenanceService services.MaintenanceService) {
	schedule := config.AppConfig.Maintenance.SweepSchedule
	if schedule == "" {
		log.Println("WARN: [Main] No maintenance sweep schedule configured, sweep disabled.")
		return
	}
	c := cron.New()
	err := c.AddFunc(schedule, func() {
		if _, err := maintenanceService.SweepExpiredPlans(); err != nil {
			log.Printf("ERROR: [Main] Scheduled maintenance sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("FATAL: [Main] Invalid maintenance sweep schedule %q: %v", schedule, err)
	}
	c.Start()
	log.Printf("INFO: [Main] Maintenance sweep scheduled (%s).", schedule)
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/init", handler.InitHandler)

		planGroup := apiGroup.Group("/plan")
		{
			planGroup.POST("/generate", handler.GeneratePlanHandler)
			planGroup.GET("/user/:userID", handler.GetPlanHandler)
			planGroup.POST("/tier", handler.SetTierHandler)
			planGroup.POST("/reset", handler.ResetPlanHandler)
		}

		apiGroup.POST("/profile/save", handler.UpdateProfileHandler)
		apiGroup.GET("/calendar/:userID", handler.GetCalendarHandler)

		logGroup := apiGroup.Group("/log")
		{
			logGroup.POST("/workout", handler.ToggleWorkoutHandler)
			logGroup.POST("/meal", handler.ToggleMealHandler)
			logGroup.POST("/habit", handler.ToggleHabitHandler)
			logGroup.POST("/energy", handler.SetEnergyHandler)
			logGroup.GET("/user/:userID", handler.GetLogsHandler)
		}

		apiGroup.POST("/maintenance/sweep", handler.SweepHandler)
	}
}
