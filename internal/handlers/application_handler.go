package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/middleware"
	"github.com/projectify/backend/internal/models"
	"github.com/projectify/backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	if req.ProjectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Project ID is required",
		})
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid project ID format",
		})
	}

	application, err := h.applicationService.Create(userID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		case errors.Is(err, services.ErrProjectNotApproved):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyApplied):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Unauthorized",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Message: "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ApplicationResponse{
		Success:     true,
		Message:     "Application submitted successfully",
		Application: application,
	})
}

// ListMine handles GET /api/applications/my.
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	applications, err := h.applicationService.ListMine(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to list applications",
		})
	}

	return c.JSON(dto.ApplicationListResponse{Success: true, Applications: applications})
}

// List handles GET /api/applications (admin), optionally filtered by
// ?project_id=.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	projectID := uuid.Nil
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid project ID format",
			})
		}
		projectID = id
	}

	applications, err := h.applicationService.ListAll(projectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to list applications",
		})
	}

	return c.JSON(dto.ApplicationListResponse{Success: true, Applications: applications})
}

// Approve handles PUT /api/applications/:id/approve (admin).
func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, h.applicationService.Approve, "Application approved successfully")
}

// Reject handles PUT /api/applications/:id/reject (admin).
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.applicationService.Reject, "Application rejected successfully")
}

func (h *ApplicationHandler) transition(c *fiber.Ctx, fn func(uuid.UUID) (*models.Application, error), message string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid application ID",
		})
	}

	application, err := fn(id)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ApplicationResponse{
		Success:     true,
		Message:     message,
		Application: application,
	})
}
