package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
)

// ConstructionProgressRepository handles database operations for progress records
type ConstructionProgressRepository struct{}

// NewConstructionProgressRepository creates a new progress repository instance
func NewConstructionProgressRepository() *ConstructionProgressRepository {
	return &ConstructionProgressRepository{}
}

// FindByProjectAndSection retrieves the progress record for one section of a project
func (r *ConstructionProgressRepository) FindByProjectAndSection(projectID, section string) (models.ConstructionProgress, error) {
	var progress models.ConstructionProgress
	result := database.DB.First(&progress, "project_id = ? AND section = ?", projectID, section)
	return progress, result.Error
}

// FindByProjectID retrieves all progress records of a project
func (r *ConstructionProgressRepository) FindByProjectID(projectID string) ([]models.ConstructionProgress, error) {
	var records []models.ConstructionProgress
	result := database.DB.Where("project_id = ?", projectID).Find(&records)
	return records, result.Error
}

// Create inserts a new progress record into the database
func (r *ConstructionProgressRepository) Create(progress models.ConstructionProgress) (models.ConstructionProgress, error) {
	result := database.DB.Create(&progress)
	return progress, result.Error
}

// Save persists changes to an existing progress record
func (r *ConstructionProgressRepository) Save(progress models.ConstructionProgress) error {
	result := database.DB.Save(&progress)
	return result.Error
}
