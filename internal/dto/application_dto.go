package dto

import "github.com/projectify/backend/internal/models"

type CreateApplicationRequest struct {
	ProjectID string `json:"project_id"`
}

type ApplicationResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Application *models.Application `json:"application"`
}

type ApplicationListResponse struct {
	Success      bool                 `json:"success"`
	Applications []models.Application `json:"applications"`
}
