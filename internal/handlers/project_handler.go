package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/middleware"
	"github.com/projectify/backend/internal/services"
	"github.com/projectify/backend/internal/validation"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	project, err := h.projectService.Create(userID, &req)
	if err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: fieldErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProjectResponse{
		Success: true,
		Message: "Project created successfully",
		Project: project,
	})
}

// List handles GET /api/projects. Visibility is role-gated: admins see all
// statuses and may filter, other callers only ever get approved projects.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List(middleware.Role(c), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to list projects",
		})
	}

	return c.JSON(dto.ProjectListResponse{Success: true, Projects: projects})
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid project ID",
		})
	}

	project, err := h.projectService.Get(middleware.Role(c), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		}
		if errors.Is(err, services.ErrProjectAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Access denied",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ProjectResponse{Success: true, Project: project})
}

// Approve handles PUT /api/projects/:id/approve (admin).
func (h *ProjectHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid project ID",
		})
	}

	project, err := h.projectService.Approve(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ProjectResponse{
		Success: true,
		Message: "Project approved successfully",
		Project: project,
	})
}

// Reject handles PUT /api/projects/:id/reject (admin).
func (h *ProjectHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid project ID",
		})
	}

	project, err := h.projectService.Reject(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ProjectResponse{
		Success: true,
		Message: "Project rejected successfully",
		Project: project,
	})
}

// Delete handles DELETE /api/projects/:id (admin). Applications referencing
// the project are removed with it.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid project ID",
		})
	}

	if err := h.projectService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Project deleted successfully"})
}
