package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabourMode discriminates the two labour record shapes
type LabourMode string

const (
	LabourModeContract LabourMode = "contract"
	LabourModeDaily    LabourMode = "daily"
)

// ContractDetails is the payload for contract-mode labour records
type ContractDetails struct {
	ContractorName  string  `json:"contractorName"`
	EstimatedAmount float64 `json:"estimatedAmount"`
	PaidAmount      float64 `json:"paidAmount"`
}

func (d *ContractDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *ContractDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for ContractDetails")
	}
}

// Labourer is a single worker on a daily wage roster
type Labourer struct {
	Name string  `json:"name"`
	Wage float64 `json:"wage"`
}

// DailyLabourDetails is the payload for daily-mode labour records
type DailyLabourDetails struct {
	Labourers   []Labourer `json:"labourers"`
	TotalAmount float64    `json:"totalAmount"`
}

func (d *DailyLabourDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *DailyLabourDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for DailyLabourDetails")
	}
}

// Labour represents a labour expense record. Exactly one of ContractDetails
// and DailyLabourDetails is populated, selected by Mode.
type Labour struct {
	ID                 string              `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID          string              `json:"projectId" gorm:"type:uuid;not null;index"`
	Mode               LabourMode          `json:"mode" gorm:"type:varchar(10);not null"`
	Date               time.Time           `json:"date"`
	ContractDetails    *ContractDetails    `json:"contractDetails,omitempty" gorm:"type:jsonb"`
	DailyLabourDetails *DailyLabourDetails `json:"dailyLabourDetails,omitempty" gorm:"type:jsonb"`
}

func (l *Labour) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
