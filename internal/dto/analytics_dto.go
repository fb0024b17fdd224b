package dto

import "github.com/projectify/backend/internal/models"

type DashboardStats struct {
	TotalProjects        int64 `json:"total_projects"`
	ApprovedProjects     int64 `json:"approved_projects"`
	PendingProjects      int64 `json:"pending_projects"`
	RejectedProjects     int64 `json:"rejected_projects"`
	TotalApplications    int64 `json:"total_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	ApprovedApplications int64 `json:"approved_applications"`
	RejectedApplications int64 `json:"rejected_applications"`
	TotalUsers           int64 `json:"total_users"`
	AdminUsers           int64 `json:"admin_users"`
	RegularUsers         int64 `json:"regular_users"`

	// MonthlyStats covers the trailing six months; months without
	// applications are absent rather than zero-filled.
	MonthlyStats []MonthlyCount `json:"monthly_stats"`
}

type MonthlyCount struct {
	Month        string `json:"month"` // YYYY-MM
	Applications int64  `json:"applications"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RecentActivity struct {
	RecentProjects     []models.Project     `json:"recent_projects"`
	RecentApplications []models.Application `json:"recent_applications"`
}

type DashboardResponse struct {
	Success bool            `json:"success"`
	Data    *DashboardStats `json:"data"`
}

type StatusCountResponse struct {
	Success bool          `json:"success"`
	Data    []StatusCount `json:"data"`
}

type RecentActivityResponse struct {
	Success bool            `json:"success"`
	Data    *RecentActivity `json:"data"`
}
