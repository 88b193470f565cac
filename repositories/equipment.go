package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct{}

// NewEquipmentRepository creates a new equipment repository instance
func NewEquipmentRepository() *EquipmentRepository {
	return &EquipmentRepository{}
}

// FindByID retrieves equipment by its ID
func (r *EquipmentRepository) FindByID(id string) (models.Equipment, error) {
	var equipment models.Equipment
	result := database.DB.First(&equipment, "id = ?", id)
	return equipment, result.Error
}

// FindByProjectID retrieves all equipment of a project, newest first
func (r *EquipmentRepository) FindByProjectID(projectID string) ([]models.Equipment, error) {
	var equipment []models.Equipment
	result := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&equipment)
	return equipment, result.Error
}

// Create inserts new equipment into the database
func (r *EquipmentRepository) Create(equipment models.Equipment) (models.Equipment, error) {
	result := database.DB.Create(&equipment)
	return equipment, result.Error
}

// Save persists changes to existing equipment
func (r *EquipmentRepository) Save(equipment models.Equipment) error {
	result := database.DB.Save(&equipment)
	return result.Error
}

// DeleteWithLogs deletes equipment and all its usage logs in one
// transaction. Returns gorm.ErrRecordNotFound when the equipment is absent.
func (r *EquipmentRepository) DeleteWithLogs(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&models.EquipmentLog{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Equipment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
