package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterialRepository handles database operations for materials
type MaterialRepository struct{}

// NewMaterialRepository creates a new material repository instance
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

// FindByID retrieves a material by its ID
func (r *MaterialRepository) FindByID(id string) (models.Material, error) {
	var material models.Material
	result := database.DB.First(&material, "id = ?", id)
	return material, result.Error
}

// FindByProjectID retrieves all materials of a project, newest first
func (r *MaterialRepository) FindByProjectID(projectID string) ([]models.Material, error) {
	var materials []models.Material
	result := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&materials)
	return materials, result.Error
}

// Create inserts a new material into the database
func (r *MaterialRepository) Create(material models.Material) (models.Material, error) {
	result := database.DB.Create(&material)
	return material, result.Error
}

// UpdateLocked loads the material row locked for update, applies fn and
// saves the result, all inside one transaction. This closes the lost-update
// window between concurrent read-modify-write sequences.
func (r *MaterialRepository) UpdateLocked(id string, fn func(m *models.Material) error) (models.Material, error) {
	var material models.Material
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		q := tx
		// sqlite has no FOR UPDATE; its writes are serialized anyway
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&material, "id = ?", id).Error; err != nil {
			return err
		}
		if err := fn(&material); err != nil {
			return err
		}
		return tx.Save(&material).Error
	})
	return material, err
}

// Delete removes a material. Returns gorm.ErrRecordNotFound when absent.
func (r *MaterialRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
