package repositories

import (
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/models"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for document metadata
type DocumentRepository struct{}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// FindByID retrieves a document by its ID
func (r *DocumentRepository) FindByID(id string) (models.Document, error) {
	var document models.Document
	result := database.DB.First(&document, "id = ?", id)
	return document, result.Error
}

// FindByProjectID retrieves all documents of a project, newest upload first
func (r *DocumentRepository) FindByProjectID(projectID string) ([]models.Document, error) {
	var documents []models.Document
	result := database.DB.Where("project_id = ?", projectID).Order("upload_date DESC").Find(&documents)
	return documents, result.Error
}

// Create inserts a new document record into the database
func (r *DocumentRepository) Create(document models.Document) (models.Document, error) {
	result := database.DB.Create(&document)
	return document, result.Error
}

// Delete removes a document record. Returns gorm.ErrRecordNotFound when absent.
func (r *DocumentRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
