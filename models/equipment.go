package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentalUnit determines how rental cost is charged per usage log
type RentalUnit string

const (
	RentalUnitPerDay  RentalUnit = "Per Day"
	RentalUnitPerHour RentalUnit = "Per Hour"
	RentalUnitFixed   RentalUnit = "Fixed"
)

// EquipmentStatus represents equipment availability
type EquipmentStatus string

const (
	EquipmentStatusActive   EquipmentStatus = "Active"
	EquipmentStatusInactive EquipmentStatus = "Inactive"
)

// Equipment represents a rented or owned machine assigned to a project
type Equipment struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID  string          `json:"projectId" gorm:"type:uuid;not null;index"`
	Name       string          `json:"name" gorm:"not null"`
	Type       string          `json:"type" gorm:"not null"`
	RentalRate float64         `json:"rentalRate"`
	RentalUnit RentalUnit      `json:"rentalUnit" gorm:"type:varchar(10);not null"`
	FuelType   string          `json:"fuelType" gorm:"type:varchar(10);default:'None'"`
	Status     EquipmentStatus `json:"status" gorm:"type:varchar(10);default:'Active'"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
