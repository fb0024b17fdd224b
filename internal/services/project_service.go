package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projectify/backend/internal/authz"
	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/models"
	"github.com/projectify/backend/internal/notify"
	"github.com/projectify/backend/internal/validation"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectAccessDenied = errors.New("access denied")
)

var projectRules = []validation.Rule{
	{Field: "name", Label: "Project name", Kind: validation.String, Required: true, MaxLen: 100},
	{Field: "description", Label: "Project description", Kind: validation.String, Required: true, MaxLen: 1000},
	{Field: "start_date", Label: "Start date", Kind: validation.Date, Required: true},
	{Field: "end_date", Label: "End date", Kind: validation.Date, Required: true, After: "start_date"},
	{Field: "budget", Label: "Budget", Kind: validation.Number, Required: true, Min: validation.MinValue(0)},
}

type ProjectService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewProjectService(db *gorm.DB, notifier Notifier) *ProjectService {
	return &ProjectService{db: db, notifier: notifier}
}

// Create validates the payload against the project constraint table and
// persists a pending project owned by the creator.
func (s *ProjectService) Create(creatorID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error) {
	values := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"budget":      req.Budget,
	}
	if req.StartDate != "" {
		values["start_date"] = validation.ParseDate(req.StartDate)
	}
	if req.EndDate != "" {
		values["end_date"] = validation.ParseDate(req.EndDate)
	}
	if err := validation.Apply(values, projectRules); err != nil {
		return nil, err
	}

	startDate, _ := values["start_date"].(time.Time)
	endDate, _ := values["end_date"].(time.Time)

	project := models.Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Status:      models.StatusPending,
		CreatedByID: creatorID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.db.Preload("CreatedBy").First(&project, "id = ?", project.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load created project: %w", err)
	}

	return &project, nil
}

// List returns projects visible to the caller, newest first. Admins may
// filter by status; everyone else only ever sees approved projects.
func (s *ProjectService) List(role, statusFilter string) ([]models.Project, error) {
	query := s.db.Preload("CreatedBy").Order("created_at DESC")
	if f := authz.ProjectListFilter(role, statusFilter); f != "" {
		query = query.Where("status = ?", f)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(role string, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("CreatedBy").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if !authz.CanViewProject(role, &project) {
		return nil, ErrProjectAccessDenied
	}

	return &project, nil
}

// Approve moves a project to approved and emails every current applicant.
// Approving an already-approved project is a no-op: nothing is written and
// no emails are re-fired.
func (s *ProjectService) Approve(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if project.Status == models.StatusApproved {
		return &project, nil
	}

	if err := s.db.Model(&project).Update("status", models.StatusApproved).Error; err != nil {
		return nil, fmt.Errorf("failed to approve project: %w", err)
	}
	project.Status = models.StatusApproved

	// The transition is committed; applicant lookup problems are logged,
	// never propagated to the caller.
	var applications []models.Application
	if err := s.db.Where("project_id = ?", id).Find(&applications).Error; err != nil {
		slog.Error("failed to enumerate applicants for approval emails",
			"project_id", id, "error", err)
		return &project, nil
	}

	for _, a := range applications {
		s.notifier.Enqueue(notify.Event{
			Type:               notify.EventProjectApproved,
			Recipient:          a.UserEmail,
			UserName:           a.UserName,
			ProjectName:        project.Name,
			ProjectDescription: project.Description,
			StartDate:          project.StartDate,
			EndDate:            project.EndDate,
		})
	}

	return &project, nil
}

// Reject moves a project to rejected. Rejecting an already-rejected project
// is a no-op. No applicant email goes out on project rejection.
func (s *ProjectService) Reject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if project.Status == models.StatusRejected {
		return &project, nil
	}

	if err := s.db.Model(&project).Update("status", models.StatusRejected).Error; err != nil {
		return nil, fmt.Errorf("failed to reject project: %w", err)
	}
	project.Status = models.StatusRejected

	return &project, nil
}

// Delete removes a project and all of its applications in one transaction,
// applications first so no dangling references survive a partial failure.
func (s *ProjectService) Delete(id uuid.UUID) error {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
