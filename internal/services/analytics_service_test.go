package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectify/backend/internal/models"
)

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestDashboardCounters(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAnalyticsService(db)

	// Counters run in a fixed order: projects, applications, users.
	projectCounts := []int64{10, 6, 3, 1}
	for _, n := range projectCounts {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).WillReturnRows(countRows(n))
	}
	applicationCounts := []int64{25, 12, 9, 4}
	for _, n := range applicationCounts {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "applications"`).WillReturnRows(countRows(n))
	}
	userCounts := []int64{8, 2, 6}
	for _, n := range userCounts {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(countRows(n))
	}

	mock.ExpectQuery(`SELECT to_char\(created_at, 'YYYY-MM'\) AS month, count\(\*\) AS applications FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "applications"}).
			AddRow("2026-06", int64(4)).
			AddRow("2026-08", int64(7)))

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalProjects)
	assert.Equal(t, int64(6), stats.ApprovedProjects)
	assert.Equal(t, int64(3), stats.PendingProjects)
	assert.Equal(t, int64(1), stats.RejectedProjects)
	assert.Equal(t, int64(25), stats.TotalApplications)
	assert.Equal(t, int64(12), stats.PendingApplications)
	assert.Equal(t, int64(9), stats.ApprovedApplications)
	assert.Equal(t, int64(4), stats.RejectedApplications)
	assert.Equal(t, int64(8), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.AdminUsers)
	assert.Equal(t, int64(6), stats.RegularUsers)

	// Months without applications stay absent, order is chronological.
	require.Len(t, stats.MonthlyStats, 2)
	assert.Equal(t, "2026-06", stats.MonthlyStats[0].Month)
	assert.Equal(t, int64(4), stats.MonthlyStats[0].Applications)
	assert.Equal(t, "2026-08", stats.MonthlyStats[1].Month)
	assert.Equal(t, int64(7), stats.MonthlyStats[1].Applications)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectsByStatus(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAnalyticsService(db)

	mock.ExpectQuery(`SELECT status, count\(\*\) AS count FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(models.StatusApproved, int64(6)).
			AddRow(models.StatusPending, int64(3)))

	counts, err := svc.ProjectsByStatus()
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.StatusApproved, counts[0].Status)
	assert.Equal(t, int64(6), counts[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationsByStatus(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAnalyticsService(db)

	mock.ExpectQuery(`SELECT status, count\(\*\) AS count FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(models.StatusPending, int64(12)))

	counts, err := svc.ApplicationsByStatus()
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, int64(12), counts[0].Count)
}

func TestRecentActivity(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAnalyticsService(db)

	project := testProject(models.StatusApproved)
	application := testApplication(project.ID, models.StatusPending)

	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRow(project))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(testUser(models.RoleAdmin)))
	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnRows(applicationRows(application))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRow(project))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(testUser(models.RoleUser)))

	activity, err := svc.RecentActivity()
	require.NoError(t, err)
	require.Len(t, activity.RecentProjects, 1)
	require.Len(t, activity.RecentApplications, 1)
	assert.Equal(t, project.ID, activity.RecentProjects[0].ID)
	assert.Equal(t, application.ID, activity.RecentApplications[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
