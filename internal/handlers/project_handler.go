package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"timetrack-service/internal/models"
	"timetrack-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	timerService   *services.TimerService
}

func NewProjectHandler(projectService *services.ProjectService, timerService *services.TimerService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		timerService:   timerService,
	}
}

// projectResponse decorates a project with its timer state for list and
// detail views.
type projectResponse struct {
	models.Project
	IsActive      bool   `json:"is_active"`
	LastStartedAt string `json:"last_started_at,omitempty"`
}

func (h *ProjectHandler) decorate(project models.Project) (projectResponse, error) {
	active, err := h.timerService.IsActive(project.ID)
	if err != nil {
		return projectResponse{}, err
	}

	lastStarted, err := h.timerService.LastStartedAt(project.ID)
	if err != nil && !errors.Is(err, services.ErrNoTimeEntries) {
		return projectResponse{}, err
	}

	return projectResponse{
		Project:       project,
		IsActive:      active,
		LastStartedAt: lastStarted,
	}, nil
}

// CreateProject creates a new project
// @Summary Create a new project
// @Description Create a project owned by the current user
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Project successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid project data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		log.Printf("Error parsing project data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	if project.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Project name is required",
		})
	}

	project.OwnerID = CurrentUser(c).ID
	if err := h.projectService.CreateProject(&project); err != nil {
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to create project",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProject returns a project by ID
// @Summary Get a project by ID
// @Description Get details of a specific project including its timer state
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} models.Project "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
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

	resp, err := h.decorate(*project)
	if err != nil {
		log.Printf("Error decorating project: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to load project state",
			"details": err.Error(),
		})
	}
	return c.JSON(resp)
}

// UpdateProject updates a project
// @Summary Update a project
// @Description Update the project name
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid UUID or data"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
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

	existingProject, err := h.projectService.GetProject(projectID)
	if err != nil {
		log.Printf("Project not found for update: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Project not found",
			"id":      projectID.String(),
		})
	}

	var updatedProject models.Project
	if err := c.BodyParser(&updatedProject); err != nil {
		log.Printf("Error parsing project update data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	// Update only allowed fields
	existingProject.Name = updatedProject.Name

	if err := h.projectService.UpdateProject(existingProject); err != nil {
		log.Printf("Error updating project: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update project",
			"details": err.Error(),
		})
	}

	return c.JSON(existingProject)
}

// DeleteProject deletes a project
// @Summary Delete a project
// @Description Delete a project and all its time entries
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
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

	if err := h.projectService.DeleteProject(projectID); err != nil {
		log.Printf("Error deleting project: ID=%s, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to delete project",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project deleted successfully",
		"id":      projectID.String(),
	})
}

// ListProjects returns the current user's projects
// @Summary List projects
// @Description Get all projects owned by the current user, with timer state
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	user := CurrentUser(c)
	projects, err := h.projectService.ListProjectsByOwner(user.ID)
	if err != nil {
		log.Printf("Error listing projects for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to list projects",
			"details": err.Error(),
		})
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		resp, err := h.decorate(project)
		if err != nil {
			log.Printf("Error decorating project: ID=%s, Error=%v", project.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   true,
				"message": "Failed to load project state",
				"details": err.Error(),
			})
		}
		responses = append(responses, resp)
	}
	return c.JSON(responses)
}
