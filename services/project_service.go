package services

import (
	"errors"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// ProjectService handles business logic for the project registry
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateProject inserts a new project for a user
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		UserID:      req.UserID,
		ProjectName: req.ProjectName,
		Budget:      req.Budget,
		StartDate:   req.StartDate.TimePtr(),
		EndDate:     req.EndDate.TimePtr(),
	}
	return s.projectRepo.Create(project)
}

// ListProjects returns all projects of a user, newest created first
func (s *ProjectService) ListProjects(userID string) ([]models.Project, error) {
	return s.projectRepo.FindByUserID(userID)
}

// UpdateProject applies a partial update to an existing project
func (s *ProjectService) UpdateProject(projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, utils.NewNotFoundError("Project")
	}
	if err != nil {
		return models.Project{}, err
	}

	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate.TimePtr()
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate.TimePtr()
	}

	if err := s.projectRepo.Save(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject deletes a project together with all its materials
func (s *ProjectService) DeleteProject(projectID string) error {
	err := s.projectRepo.DeleteWithMaterials(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("Project")
	}
	return err
}
