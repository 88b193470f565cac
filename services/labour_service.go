package services

import (
	"time"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
)

// LabourService handles business logic for the labour ledger
type LabourService struct {
	labourRepo *repositories.LabourRepository
	now        func() time.Time
}

// NewLabourService creates a new labour service instance
func NewLabourService() *LabourService {
	return &LabourService{
		labourRepo: repositories.NewLabourRepository(),
		now:        time.Now,
	}
}

// AddLabourRecord validates and inserts a labour record. Mode selects which
// of the two detail payloads must be present; exactly one is persisted.
func (s *LabourService) AddLabourRecord(req dto.AddLabourRequest) (models.Labour, error) {
	if req.ProjectID == "" || req.Mode == "" {
		return models.Labour{}, utils.NewValidationError("Project ID and Mode are required")
	}

	labour := models.Labour{
		ProjectID: req.ProjectID,
		Date:      req.Date.TimeOr(s.now()),
	}

	switch models.LabourMode(req.Mode) {
	case models.LabourModeContract:
		if req.ContractDetails == nil || req.ContractDetails.ContractorName == "" || req.ContractDetails.PaidAmount == nil {
			return models.Labour{}, utils.NewValidationError("Missing contract details")
		}
		labour.Mode = models.LabourModeContract
		labour.ContractDetails = &models.ContractDetails{
			ContractorName:  req.ContractDetails.ContractorName,
			EstimatedAmount: req.ContractDetails.EstimatedAmount,
			PaidAmount:      *req.ContractDetails.PaidAmount,
		}

	case models.LabourModeDaily:
		if req.DailyLabourDetails == nil || len(req.DailyLabourDetails.Labourers) == 0 {
			return models.Labour{}, utils.NewValidationError("Missing daily labour details")
		}

		labourers := make([]models.Labourer, 0, len(req.DailyLabourDetails.Labourers))
		for _, l := range req.DailyLabourDetails.Labourers {
			labourers = append(labourers, models.Labourer{Name: l.Name, Wage: l.Wage})
		}

		total := TotalWages(labourers)
		if req.DailyLabourDetails.TotalAmount != nil {
			total = *req.DailyLabourDetails.TotalAmount
		}

		labour.Mode = models.LabourModeDaily
		labour.DailyLabourDetails = &models.DailyLabourDetails{
			Labourers:   labourers,
			TotalAmount: total,
		}

	default:
		return models.Labour{}, utils.NewValidationError("Invalid mode. Must be 'contract' or 'daily'")
	}

	return s.labourRepo.Create(labour)
}

// ListLabourRecords returns all labour records of a project, newest first by date
func (s *LabourService) ListLabourRecords(projectID string) ([]models.Labour, error) {
	return s.labourRepo.FindByProjectID(projectID)
}

// TotalWages sums the wages of a daily labour roster
func TotalWages(labourers []models.Labourer) float64 {
	var total float64
	for _, l := range labourers {
		total += l.Wage
	}
	return total
}
