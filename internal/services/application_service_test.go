package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectify/backend/internal/models"
	"github.com/projectify/backend/internal/notify"
)

func TestNewApplicationSnapshotsUserAndProject(t *testing.T) {
	user := testUser(models.RoleUser)
	project := testProject(models.StatusApproved)

	application := newApplication(&user, &project)

	assert.NotEqual(t, uuid.Nil, application.ID)
	assert.Equal(t, project.ID, application.ProjectID)
	assert.Equal(t, user.ID, application.UserID)
	assert.Equal(t, user.Name, application.UserName)
	assert.Equal(t, user.Email, application.UserEmail)
	assert.Equal(t, project.Name, application.ProjectName)
	assert.Equal(t, models.StatusPending, application.Status)
	assert.False(t, application.AppliedAt.IsZero())

	// The snapshot is a copy. Renaming the project afterwards must not
	// change what the application recorded.
	project.Name = "Renamed"
	assert.Equal(t, "Site Redesign", application.ProjectName)
}

func TestApplicationCreateUserNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewApplicationService(db, &fakeNotifier{})

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := svc.Create(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApplicationCreateProjectNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewApplicationService(db, &fakeNotifier{})

	user := testUser(models.RoleUser)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(user))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(emptyProjectRows())

	_, err := svc.Create(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestApplicationCreateRequiresApprovedProject(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusRejected} {
		t.Run(status, func(t *testing.T) {
			db, mock := newTestDB(t)
			svc := NewApplicationService(db, &fakeNotifier{})

			user := testUser(models.RoleUser)
			project := testProject(status)
			mock.ExpectQuery(`SELECT (.+) FROM "users"`).
				WillReturnRows(userRow(user))
			mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
				WillReturnRows(projectRow(project))

			_, err := svc.Create(user.ID, project.ID)
			assert.ErrorIs(t, err, ErrProjectNotApproved)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestApplicationCreateDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewApplicationService(db, &fakeNotifier{})

	user := testUser(models.RoleUser)
	project := testProject(models.StatusApproved)
	existing := testApplication(project.ID, models.StatusPending)
	existing.UserID = user.ID

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(user))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRow(project))
	mock.ExpectQuery(`SELECT (.+) FROM "applications" WHERE project_id = \$1 AND user_id = \$2`).
		WillReturnRows(applicationRows(existing))

	_, err := svc.Create(user.ID, project.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationListMineFiltersByUser(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewApplicationService(db, &fakeNotifier{})

	project := testProject(models.StatusApproved)
	mine := testApplication(project.ID, models.StatusPending)

	mock.ExpectQuery(`SELECT (.+) FROM "applications" WHERE user_id = \$1`).
		WithArgs(mine.UserID.String()).
		WillReturnRows(applicationRows(mine))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRow(project))

	applications, err := svc.ListMine(mine.UserID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, mine.ID, applications[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationApproveEmailsApplicant(t *testing.T) {
	db, mock := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewApplicationService(db, notifier)

	pending := testApplication(uuid.New(), models.StatusPending)
	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnRows(applicationRows(pending))
	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	application, err := svc.Approve(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, application.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventApplicationApproved, notifier.events[0].Type)
	assert.Equal(t, pending.UserEmail, notifier.events[0].Recipient)
	assert.Equal(t, pending.ProjectName, notifier.events[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRejectEmailsApplicant(t *testing.T) {
	db, mock := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewApplicationService(db, notifier)

	pending := testApplication(uuid.New(), models.StatusPending)
	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnRows(applicationRows(pending))
	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	application, err := svc.Reject(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, application.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventApplicationRejected, notifier.events[0].Type)
}

func TestApplicationApproveAlreadyApprovedIsNoOp(t *testing.T) {
	db, mock := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewApplicationService(db, notifier)

	approved := testApplication(uuid.New(), models.StatusApproved)
	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnRows(applicationRows(approved))

	application, err := svc.Approve(approved.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, application.Status)
	assert.Empty(t, notifier.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationTransitionNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewApplicationService(db, &fakeNotifier{})

	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnRows(applicationRows())

	_, err := svc.Approve(uuid.New())
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
