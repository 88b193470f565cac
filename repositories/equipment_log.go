package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
	"gorm.io/gorm"
)

// EquipmentLogRepository handles database operations for equipment usage logs
type EquipmentLogRepository struct{}

// NewEquipmentLogRepository creates a new equipment log repository instance
func NewEquipmentLogRepository() *EquipmentLogRepository {
	return &EquipmentLogRepository{}
}

// Create inserts a new usage log into the database
func (r *EquipmentLogRepository) Create(log models.EquipmentLog) (models.EquipmentLog, error) {
	result := database.DB.Create(&log)
	return log, result.Error
}

// FindByEquipmentID retrieves all logs of one equipment, newest first by date
func (r *EquipmentLogRepository) FindByEquipmentID(equipmentID string) ([]models.EquipmentLog, error) {
	var logs []models.EquipmentLog
	result := database.DB.Where("equipment_id = ?", equipmentID).Order("date DESC").Find(&logs)
	return logs, result.Error
}

// Delete removes a usage log. Returns gorm.ErrRecordNotFound when absent.
func (r *EquipmentLogRepository) Delete(id string) error {
	result := database.DB.Delete(&models.EquipmentLog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
