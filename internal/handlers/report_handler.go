package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"timetrack-service/internal/localization"
	"timetrack-service/internal/models"
	"timetrack-service/internal/services"
)

type ReportHandler struct {
	reportService  *services.ReportService
	projectService *services.ProjectService
}

func NewReportHandler(reportService *services.ReportService, projectService *services.ProjectService) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		projectService: projectService,
	}
}

// WeeklyCalendar returns the weekly calendar data
// @Summary Weekly calendar report
// @Description Per-day tracked hours across the user's projects for one week, starting at the Monday of the user's current week shifted by week_offset
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param week_offset query int false "Weeks to shift from the current week" default(0)
// @Success 200 {object} map[string]interface{} "Week range and per-day totals"
// @Failure 400 {object} map[string]interface{} "Bad request - Unknown user timezone"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/weekly [get]
func (h *ReportHandler) WeeklyCalendar(c *fiber.Ctx) error {
	user := CurrentUser(c)
	weekOffset := c.QueryInt("week_offset", 0)

	userNow, err := localization.UserNow(user)
	if err != nil {
		log.Printf("Unknown timezone for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Unknown user timezone",
			"details": err.Error(),
		})
	}

	// Monday of the user's current week, shifted by week_offset weeks.
	weekday := int(userNow.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	year, month, day := userNow.AddDate(0, 0, -(weekday - 1)).Date()
	weekStart := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, weekOffset*7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	log.Printf("Weekly calendar for user %s: week starting %s", user.ID, weekStart.Format(time.DateOnly))

	projects, err := h.projectService.ListProjectsByOwner(user.ID)
	if err != nil {
		log.Printf("Error listing projects for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to list projects",
			"details": err.Error(),
		})
	}

	weekDays, err := h.reportService.EntryTimeByDay(projects, weekStart, weekEnd)
	if err != nil {
		log.Printf("Error computing weekly calendar for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to compute weekly report",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"start_date":  weekStart.Format(time.DateOnly),
		"end_date":    weekEnd.Format(time.DateOnly),
		"week_offset": weekOffset,
		"week_days":   weekDays,
	})
}

// MonthlyByProject returns the monthly breakdown for a project
// @Summary Monthly project report
// @Description Per-month tracked hours for one project over a year
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Param year query int false "Target year, defaults to the current year"
// @Success 200 {object} map[string]interface{} "Twelve month records plus total"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/months [get]
func (h *ReportHandler) MonthlyByProject(c *fiber.Ctx) error {
	idStr := c.Params("id")
	projectID, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid project UUID format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid UUID",
			"details": err.Error(),
		})
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		log.Printf("Error fetching project: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Project not found",
			"id":      projectID.String(),
		})
	}

	year := c.QueryInt("year", 0)
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	monthlyData, err := h.reportService.EntryTimeByMonth([]models.Project{*project}, year)
	if err != nil {
		log.Printf("Error computing monthly report: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to compute monthly report",
			"details": err.Error(),
		})
	}

	totalHours := 0
	for _, record := range monthlyData {
		totalHours += record.Hours
	}

	return c.JSON(fiber.Map{
		"project":      project,
		"current_year": year,
		"monthly_data": monthlyData,
		"total_hours":  totalHours,
	})
}
