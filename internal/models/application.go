package models

import (
	"time"

	"github.com/google/uuid"
)

// Application links a user to an approved project. UserName, UserEmail and
// ProjectName are snapshots taken at apply time and are not kept in sync with
// later edits. The composite unique index enforces one application per
// (project, user) pair even under concurrent submits.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_project_user" json:"project_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_project_user" json:"user_id"`
	UserName    string    `gorm:"size:50;not null" json:"user_name"`
	UserEmail   string    `gorm:"size:255;not null" json:"user_email"`
	ProjectName string    `gorm:"size:100;not null" json:"project_name"`
	Status      string    `gorm:"size:20;default:'pending';index" json:"status"`
	AppliedAt   time.Time `gorm:"not null" json:"applied_at"`
	Project     *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
