package notify

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/projectify/backend/internal/models"
)

// StartCleanup runs a daily goroutine that deletes notification logs older
// than 30 days.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -30)
				result := db.Where("created_at < ?", cutoff).Delete(&models.NotificationLog{})
				if result.Error != nil {
					slog.Error("notification log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("notification log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
