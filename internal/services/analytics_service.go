package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/models"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Dashboard aggregates the admin dashboard counters plus the trailing
// six-month application histogram. Months without applications are absent
// from the histogram rather than zero-filled.
func (s *AnalyticsService) Dashboard() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	counters := []struct {
		dest  *int64
		model any
		query string
		args  []any
	}{
		{&stats.TotalProjects, &models.Project{}, "", nil},
		{&stats.ApprovedProjects, &models.Project{}, "status = ?", []any{models.StatusApproved}},
		{&stats.PendingProjects, &models.Project{}, "status = ?", []any{models.StatusPending}},
		{&stats.RejectedProjects, &models.Project{}, "status = ?", []any{models.StatusRejected}},
		{&stats.TotalApplications, &models.Application{}, "", nil},
		{&stats.PendingApplications, &models.Application{}, "status = ?", []any{models.StatusPending}},
		{&stats.ApprovedApplications, &models.Application{}, "status = ?", []any{models.StatusApproved}},
		{&stats.RejectedApplications, &models.Application{}, "status = ?", []any{models.StatusRejected}},
		{&stats.TotalUsers, &models.User{}, "", nil},
		{&stats.AdminUsers, &models.User{}, "role = ?", []any{models.RoleAdmin}},
		{&stats.RegularUsers, &models.User{}, "role = ?", []any{models.RoleUser}},
	}

	for _, c := range counters {
		query := s.db.Model(c.model)
		if c.query != "" {
			query = query.Where(c.query, c.args...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	var monthly []dto.MonthlyCount
	err := s.db.Model(&models.Application{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, count(*) AS applications").
		Where("created_at >= ?", sixMonthsAgo).
		Group("month").
		Order("month ASC").
		Scan(&monthly).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly applications: %w", err)
	}
	stats.MonthlyStats = monthly

	return stats, nil
}

func (s *AnalyticsService) ProjectsByStatus() ([]dto.StatusCount, error) {
	return s.countByStatus(&models.Project{})
}

func (s *AnalyticsService) ApplicationsByStatus() ([]dto.StatusCount, error) {
	return s.countByStatus(&models.Application{})
}

func (s *AnalyticsService) countByStatus(model any) ([]dto.StatusCount, error) {
	var counts []dto.StatusCount
	err := s.db.Model(model).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	return counts, nil
}

// RecentActivity returns the ten most recent projects and applications with
// their references resolved for dashboard display.
func (s *AnalyticsService) RecentActivity() (*dto.RecentActivity, error) {
	activity := &dto.RecentActivity{}

	err := s.db.Preload("CreatedBy").
		Order("created_at DESC").
		Limit(10).
		Find(&activity.RecentProjects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent projects: %w", err)
	}

	err = s.db.Preload("Project").Preload("User").
		Order("created_at DESC").
		Limit(10).
		Find(&activity.RecentApplications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent applications: %w", err)
	}

	return activity, nil
}
