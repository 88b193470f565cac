package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
)

// LabourRepository handles database operations for labour records
type LabourRepository struct{}

// NewLabourRepository creates a new labour repository instance
func NewLabourRepository() *LabourRepository {
	return &LabourRepository{}
}

// Create inserts a new labour record into the database
func (r *LabourRepository) Create(labour models.Labour) (models.Labour, error) {
	result := database.DB.Create(&labour)
	return labour, result.Error
}

// FindByProjectID retrieves all labour records of a project, newest first by date
func (r *LabourRepository) FindByProjectID(projectID string) ([]models.Labour, error) {
	var records []models.Labour
	result := database.DB.Where("project_id = ?", projectID).Order("date DESC").Find(&records)
	return records, result.Error
}
