package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// DocumentService handles business logic for the document store
type DocumentService struct {
	documentRepo *repositories.DocumentRepository
	storage      *LocalStorage
	now          func() time.Time
}

// NewDocumentService creates a new document service backed by the given
// storage collaborator
func NewDocumentService(storage *LocalStorage) *DocumentService {
	return &DocumentService{
		documentRepo: repositories.NewDocumentRepository(),
		storage:      storage,
		now:          time.Now,
	}
}

// UploadDocument stores the file and records its metadata. Category
// defaults to "General" and the custom name to the original filename.
func (s *DocumentService) UploadDocument(projectID, category, customName string, file *multipart.FileHeader) (models.Document, error) {
	if file == nil {
		return models.Document{}, utils.NewValidationError("No file uploaded")
	}
	if projectID == "" {
		return models.Document{}, utils.NewValidationError("Project ID is required")
	}

	stored, err := s.storage.Save(file)
	if err != nil {
		return models.Document{}, err
	}

	if category == "" {
		category = "General"
	}
	if customName == "" {
		customName = file.Filename
	}

	document := models.Document{
		ProjectID:    projectID,
		Category:     category,
		CustomName:   customName,
		FileURL:      stored.Path,
		FileName:     stored.FileName,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
		UploadDate:   s.now(),
	}
	return s.documentRepo.Create(document)
}

// ListDocuments returns all documents of a project, newest upload first
func (s *DocumentService) ListDocuments(projectID string) ([]models.Document, error) {
	return s.documentRepo.FindByProjectID(projectID)
}

// DeleteDocument removes the stored file and the metadata record. A stored
// file that is already gone is not an error.
func (s *DocumentService) DeleteDocument(documentID string) error {
	document, err := s.documentRepo.FindByID(documentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("Document")
	}
	if err != nil {
		return err
	}

	if err := s.storage.Delete(document.FileURL); err != nil {
		return err
	}
	return s.documentRepo.Delete(documentID)
}
