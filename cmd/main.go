package main

import (
	"log"
	"os"
	"timetrack-service/internal/config"
	"timetrack-service/internal/handlers"
	"timetrack-service/internal/metrics"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/services"

	_ "timetrack-service/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// @title TimeTrack Service API
// @version 1.0
// @description Multi-user time tracking: projects, per-project timers, and weekly/monthly reports.
// @BasePath /api/timetrack
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	entryRepo := repository.NewTimeEntryRepository(db)

	authService := services.NewAuthService(userRepo, sessionRepo)
	projectService := services.NewProjectService(projectRepo)
	timerService := services.NewTimerService(projectRepo, entryRepo)
	reportService := services.NewReportService(entryRepo, cfg.SampleMonthlyReport)

	m := metrics.NewMetrics()

	app := fiber.New()
	app.Use(m.Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, timerService)
	timerHandler := handlers.NewTimerHandler(timerService, m)
	reportHandler := handlers.NewReportHandler(reportService, projectService)

	api := app.Group("/api/timetrack")

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Public auth routes
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Everything below requires a session token
	protected := api.Group("", handlers.AuthRequired(authService))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/settings", authHandler.UpdateSettings)

	protected.Get("/projects", projectHandler.ListProjects)
	protected.Post("/projects", projectHandler.CreateProject)
	protected.Get("/projects/:id", projectHandler.GetProject)
	protected.Put("/projects/:id", projectHandler.UpdateProject)
	protected.Delete("/projects/:id", projectHandler.DeleteProject)

	protected.Post("/projects/:id/timer/start", timerHandler.StartTimer)
	protected.Post("/projects/:id/timer/stop", timerHandler.StopTimer)
	protected.Get("/projects/:id/timer", timerHandler.TimerStatus)

	protected.Get("/projects/:id/months", reportHandler.MonthlyByProject)
	protected.Get("/reports/weekly", reportHandler.WeeklyCalendar)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	if loaded, err := config.LoadSecretsFile(os.Getenv("SECRETS_FILE")); err != nil {
		log.Printf("Could not load secrets file, using environment variables only: %v", err)
	} else if len(loaded) > 0 {
		log.Printf("Loaded %d values from secrets file", len(loaded))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Project{},
		&models.TimeEntry{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	// At most one running entry per project; concurrent starts race on this
	// index instead of on application-level checks.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uix_time_entries_active
		ON time_entries (project_id) WHERE end_time IS NULL`).Error
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}
