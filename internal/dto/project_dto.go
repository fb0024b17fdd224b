package dto

import "github.com/projectify/backend/internal/models"

// CreateProjectRequest carries dates as strings; the service parses and
// validates them against the project constraint table.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
}

type ProjectResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Project *models.Project `json:"project"`
}

type ProjectListResponse struct {
	Success  bool             `json:"success"`
	Projects []models.Project `json:"projects"`
}
