package services

import (
	"errors"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// ProgressService handles business logic for the construction progress tracker
type ProgressService struct {
	progressRepo *repositories.ConstructionProgressRepository
}

// NewProgressService creates a new progress service instance
func NewProgressService() *ProgressService {
	return &ProgressService{
		progressRepo: repositories.NewConstructionProgressRepository(),
	}
}

// UpsertProgress creates or updates the progress record keyed by
// (project, section). The returned bool reports whether a new record was
// created.
func (s *ProgressService) UpsertProgress(req dto.UpsertProgressRequest) (models.ConstructionProgress, bool, error) {
	if req.ProjectID == "" || req.Section == "" {
		return models.ConstructionProgress{}, false, utils.NewValidationError("Project ID and Section are required")
	}

	status := models.ProgressStatus(req.Status)
	if status == "" {
		status = models.ProgressStatusStart
	}

	existing, err := s.progressRepo.FindByProjectAndSection(req.ProjectID, req.Section)
	if err == nil {
		existing.Progress = req.Progress
		existing.Status = status
		existing.StartDate = req.StartDate.TimePtr()
		existing.EndDate = req.EndDate.TimePtr()
		existing.Remarks = req.Remarks
		if err := s.progressRepo.Save(existing); err != nil {
			return models.ConstructionProgress{}, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ConstructionProgress{}, false, err
	}

	created, err := s.progressRepo.Create(models.ConstructionProgress{
		ProjectID: req.ProjectID,
		Section:   req.Section,
		Progress:  req.Progress,
		Status:    status,
		StartDate: req.StartDate.TimePtr(),
		EndDate:   req.EndDate.TimePtr(),
		Remarks:   req.Remarks,
	})
	if err != nil {
		return models.ConstructionProgress{}, false, err
	}
	return created, true, nil
}

// GetProgress returns all progress records of a project
func (s *ProgressService) GetProgress(projectID string) ([]models.ConstructionProgress, error) {
	return s.progressRepo.FindByProjectID(projectID)
}
