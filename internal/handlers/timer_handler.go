package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"timetrack-service/internal/metrics"
	"timetrack-service/internal/services"
)

type TimerHandler struct {
	timerService *services.TimerService
	metrics      *metrics.Metrics
}

func NewTimerHandler(timerService *services.TimerService, metrics *metrics.Metrics) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
		metrics:      metrics,
	}
}

// StartTimer starts a project's timer
// @Summary Start the project timer
// @Description Open a new time entry on the project; a no-op when one is already running
// @Tags timer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} models.TimeEntry "Already running entry"
// @Success 201 {object} models.TimeEntry "Entry created"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/timer/start [post]
func (h *TimerHandler) StartTimer(c *fiber.Ctx) error {
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

	entry, started, err := h.timerService.StartTimer(projectID, time.Now())
	if err != nil {
		log.Printf("Error starting timer: ProjectID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to start timer",
			"details": err.Error(),
		})
	}

	if !started {
		return c.JSON(entry)
	}
	h.metrics.IncrementTimersStarted()
	log.Printf("Timer started: ProjectID=%s, EntryID=%s", projectID, entry.ID)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// StopTimer stops a project's timer
// @Summary Stop the project timer
// @Description Close the project's running time entry
// @Tags timer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} models.TimeEntry "Closed entry"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 409 {object} map[string]interface{} "No timer is running"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/timer/stop [post]
func (h *TimerHandler) StopTimer(c *fiber.Ctx) error {
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

	entry, err := h.timerService.StopTimer(projectID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveTimer) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   true,
				"message": "No timer is running for this project",
				"id":      projectID.String(),
			})
		}
		log.Printf("Error stopping timer: ProjectID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to stop timer",
			"details": err.Error(),
		})
	}

	h.metrics.IncrementTimersStopped()
	log.Printf("Timer stopped: ProjectID=%s, EntryID=%s", projectID, entry.ID)
	return c.JSON(entry)
}

// TimerStatus returns a project's timer state
// @Summary Get the project timer state
// @Description Report whether the timer is running and when it last started
// @Tags timer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Timer state"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/timer [get]
func (h *TimerHandler) TimerStatus(c *fiber.Ctx) error {
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

	active, err := h.timerService.IsActive(projectID)
	if err != nil {
		log.Printf("Error reading timer state: ProjectID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to read timer state",
			"details": err.Error(),
		})
	}

	lastStarted, err := h.timerService.LastStartedAt(projectID)
	if err != nil && !errors.Is(err, services.ErrNoTimeEntries) {
		log.Printf("Error reading last start: ProjectID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to read timer state",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":              projectID.String(),
		"is_active":       active,
		"last_started_at": lastStarted,
	})
}
