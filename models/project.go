package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a construction project owned by a user
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string     `json:"userId" gorm:"type:uuid;not null;index"`
	ProjectName string     `json:"projectName" gorm:"not null"`
	Budget      float64    `json:"budget"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
