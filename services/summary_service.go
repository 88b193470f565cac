package services

import (
	"errors"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// SummaryService computes derived budget figures for a project. Nothing is
// persisted; every request recomputes from the project and its materials.
type SummaryService struct {
	projectRepo  *repositories.ProjectRepository
	materialRepo *repositories.MaterialRepository
}

// NewSummaryService creates a new summary service instance
func NewSummaryService() *SummaryService {
	return &SummaryService{
		projectRepo:  repositories.NewProjectRepository(),
		materialRepo: repositories.NewMaterialRepository(),
	}
}

// GetProjectSummary returns total spend and remaining budget for a project
func (s *SummaryService) GetProjectSummary(projectID string) (dto.ProjectSummary, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ProjectSummary{}, utils.NewNotFoundError("Project")
	}
	if err != nil {
		return dto.ProjectSummary{}, err
	}

	materials, err := s.materialRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectSummary{}, err
	}

	totalSpent := TotalSpent(materials)

	return dto.ProjectSummary{
		ProjectName:     project.ProjectName,
		Budget:          project.Budget,
		TotalSpent:      totalSpent,
		RemainingBudget: project.Budget - totalSpent,
		MaterialsCount:  len(materials),
		StartDate:       project.StartDate,
		EndDate:         project.EndDate,
	}, nil
}

// TotalSpent sums quantity times average price across materials
func TotalSpent(materials []models.Material) float64 {
	var total float64
	for _, m := range materials {
		total += m.Quantity * m.Price
	}
	return total
}
