package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressStatus represents the state of a project section
type ProgressStatus string

const (
	ProgressStatusStart      ProgressStatus = "Start"
	ProgressStatusInProgress ProgressStatus = "In Progress"
	ProgressStatusCompleted  ProgressStatus = "Completed"
)

// ConstructionProgress tracks completion of one section of a project.
// Records are unique per (project, section); repeated writes for the same
// pair mutate the existing record in place.
type ConstructionProgress struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string         `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_progress_project_section"`
	Section   string         `json:"section" gorm:"not null;uniqueIndex:idx_progress_project_section"`
	Progress  float64        `json:"progress" gorm:"default:0"`
	Status    ProgressStatus `json:"status" gorm:"type:varchar(20);default:'Start'"`
	StartDate *time.Time     `json:"startDate"`
	EndDate   *time.Time     `json:"endDate"`
	Remarks   string         `json:"remarks"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (p *ConstructionProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
