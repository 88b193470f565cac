package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentLog records one usage entry for a piece of equipment.
// RentalCost and TotalCost are derived at creation from the equipment's
// billing unit and are never recomputed afterwards.
type EquipmentLog struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	EquipmentID  string    `json:"equipmentId" gorm:"type:uuid;not null;index"`
	Date         time.Time `json:"date"`
	HoursUsed    float64   `json:"hoursUsed"`
	FuelConsumed float64   `json:"fuelConsumed"`
	FuelCost     float64   `json:"fuelCost"`
	RentalCost   float64   `json:"rentalCost"`
	TotalCost    float64   `json:"totalCost"`
	Remarks      string    `json:"remarks"`
}

func (l *EquipmentLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
