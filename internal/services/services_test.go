package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projectify/backend/internal/models"
	"github.com/projectify/backend/internal/notify"
)

// newTestDB opens GORM over a sqlmock connection. Default transactions are
// skipped so single-statement writes map to one Exec expectation.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Enqueue(ev notify.Event) {
	f.events = append(f.events, ev)
}

var projectColumns = []string{
	"id", "name", "description", "start_date", "end_date",
	"budget", "status", "created_by_id", "created_at", "updated_at",
}

func projectRow(p models.Project) *sqlmock.Rows {
	return sqlmock.NewRows(projectColumns).AddRow(
		p.ID.String(), p.Name, p.Description, p.StartDate, p.EndDate,
		p.Budget, p.Status, p.CreatedByID.String(), p.CreatedAt, p.UpdatedAt,
	)
}

func emptyProjectRows() *sqlmock.Rows {
	return sqlmock.NewRows(projectColumns)
}

var applicationColumns = []string{
	"id", "project_id", "user_id", "user_name", "user_email",
	"project_name", "status", "applied_at", "created_at", "updated_at",
}

func applicationRows(apps ...models.Application) *sqlmock.Rows {
	rows := sqlmock.NewRows(applicationColumns)
	for _, a := range apps {
		rows.AddRow(
			a.ID.String(), a.ProjectID.String(), a.UserID.String(),
			a.UserName, a.UserEmail, a.ProjectName, a.Status,
			a.AppliedAt, a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}

var userColumns = []string{"id", "name", "email", "password", "role", "created_at", "updated_at"}

func userRow(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		u.ID.String(), u.Name, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt,
	)
}

func testProject(status string) models.Project {
	return models.Project{
		ID:          uuid.New(),
		Name:        "Site Redesign",
		Description: "Rebuild the marketing site",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Budget:      5000,
		Status:      status,
		CreatedByID: uuid.New(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func testUser(role string) models.User {
	return models.User{
		ID:        uuid.New(),
		Name:      "Dana",
		Email:     "dana@example.com",
		Password:  "hashed",
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func testApplication(projectID uuid.UUID, status string) models.Application {
	return models.Application{
		ID:          uuid.New(),
		ProjectID:   projectID,
		UserID:      uuid.New(),
		UserName:    "Dana",
		UserEmail:   "dana@example.com",
		ProjectName: "Site Redesign",
		Status:      status,
		AppliedAt:   time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
