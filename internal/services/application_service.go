package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projectify/backend/internal/authz"
	"github.com/projectify/backend/internal/models"
	"github.com/projectify/backend/internal/notify"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrProjectNotApproved  = errors.New("cannot apply to non-approved projects")
	ErrAlreadyApplied      = errors.New("you have already applied to this project")
)

type ApplicationService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewApplicationService(db *gorm.DB, notifier Notifier) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier}
}

// Create applies the caller to a project. Guard order: the project must
// exist, must be approved, and the caller must not have applied before. The
// duplicate pre-check gives a descriptive message; the unique index on
// (project_id, user_id) settles concurrent submits, and the loser's
// constraint violation maps to the same ErrAlreadyApplied.
func (s *ApplicationService) Create(userID, projectID uuid.UUID) (*models.Application, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if !authz.CanApply(&project) {
		return nil, ErrProjectNotApproved
	}

	var existing models.Application
	err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}

	application := newApplication(&user, &project)
	if err := s.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &application, nil
}

// newApplication snapshots the user and project fields current at apply
// time; later edits to either do not flow back into the application.
func newApplication(user *models.User, project *models.Project) models.Application {
	return models.Application{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		ProjectName: project.Name,
		Status:      models.StatusPending,
		AppliedAt:   time.Now(),
	}
}

// ListMine returns the caller's applications with the project summary
// resolved, newest first.
func (s *ApplicationService) ListMine(userID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// ListAll returns every application, optionally filtered by project, with
// project and user resolved. uuid.Nil means no filter.
func (s *ApplicationService) ListAll(projectID uuid.UUID) ([]models.Application, error) {
	query := s.db.Preload("Project").Preload("User").Order("created_at DESC")
	if projectID != uuid.Nil {
		query = query.Where("project_id = ?", projectID)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// Approve moves an application to approved and emails the applicant.
// Approving an already-approved application is a no-op.
func (s *ApplicationService) Approve(id uuid.UUID) (*models.Application, error) {
	return s.transition(id, models.StatusApproved, notify.EventApplicationApproved)
}

// Reject moves an application to rejected and emails the applicant.
// Rejecting an already-rejected application is a no-op.
func (s *ApplicationService) Reject(id uuid.UUID) (*models.Application, error) {
	return s.transition(id, models.StatusRejected, notify.EventApplicationRejected)
}

func (s *ApplicationService) transition(id uuid.UUID, status string, event notify.EventType) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if application.Status == status {
		return &application, nil
	}

	if err := s.db.Model(&application).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	application.Status = status

	s.notifier.Enqueue(notify.Event{
		Type:        event,
		Recipient:   application.UserEmail,
		UserName:    application.UserName,
		ProjectName: application.ProjectName,
	})

	return &application, nil
}
