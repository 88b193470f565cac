package services

import (
	"errors"
	"time"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// EquipmentService handles business logic for the equipment registry and
// its usage log
type EquipmentService struct {
	equipmentRepo *repositories.EquipmentRepository
	logRepo       *repositories.EquipmentLogRepository
	now           func() time.Time
}

// NewEquipmentService creates a new equipment service instance
func NewEquipmentService() *EquipmentService {
	return &EquipmentService{
		equipmentRepo: repositories.NewEquipmentRepository(),
		logRepo:       repositories.NewEquipmentLogRepository(),
		now:           time.Now,
	}
}

// ListEquipment returns all equipment of a project, newest first
func (s *EquipmentService) ListEquipment(projectID string) ([]models.Equipment, error) {
	return s.equipmentRepo.FindByProjectID(projectID)
}

// AddEquipment registers equipment, defaulting status to Active and fuel
// type to None
func (s *EquipmentService) AddEquipment(req dto.AddEquipmentRequest) (models.Equipment, error) {
	status := models.EquipmentStatus(req.Status)
	if status == "" {
		status = models.EquipmentStatusActive
	}
	fuelType := req.FuelType
	if fuelType == "" {
		fuelType = "None"
	}

	equipment := models.Equipment{
		ProjectID:  req.ProjectID,
		Name:       req.Name,
		Type:       req.Type,
		RentalRate: req.RentalRate,
		RentalUnit: models.RentalUnit(req.RentalUnit),
		FuelType:   fuelType,
		Status:     status,
	}
	return s.equipmentRepo.Create(equipment)
}

// UpdateEquipment applies a partial update to existing equipment
func (s *EquipmentService) UpdateEquipment(id string, req dto.UpdateEquipmentRequest) (models.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Equipment{}, utils.NewNotFoundError("Equipment")
	}
	if err != nil {
		return models.Equipment{}, err
	}

	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.Type != nil {
		equipment.Type = *req.Type
	}
	if req.RentalRate != nil {
		equipment.RentalRate = *req.RentalRate
	}
	if req.RentalUnit != nil {
		equipment.RentalUnit = models.RentalUnit(*req.RentalUnit)
	}
	if req.FuelType != nil {
		equipment.FuelType = *req.FuelType
	}
	if req.Status != nil {
		equipment.Status = models.EquipmentStatus(*req.Status)
	}

	if err := s.equipmentRepo.Save(equipment); err != nil {
		return models.Equipment{}, err
	}
	return equipment, nil
}

// DeleteEquipment deletes equipment together with all its usage logs
func (s *EquipmentService) DeleteEquipment(id string) error {
	err := s.equipmentRepo.DeleteWithLogs(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("Equipment")
	}
	return err
}

// ListLogs returns all usage logs of one equipment, newest first by date
func (s *EquipmentService) ListLogs(equipmentID string) ([]models.EquipmentLog, error) {
	return s.logRepo.FindByEquipmentID(equipmentID)
}

// AddLog records a usage entry, deriving rental and total cost from the
// equipment's billing unit
func (s *EquipmentService) AddLog(req dto.AddEquipmentLogRequest) (models.EquipmentLog, error) {
	equipment, err := s.equipmentRepo.FindByID(req.EquipmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EquipmentLog{}, utils.NewNotFoundError("Equipment")
	}
	if err != nil {
		return models.EquipmentLog{}, err
	}

	hoursUsed := floatOrZero(req.HoursUsed)
	fuelCost := floatOrZero(req.FuelCost)
	rentalCost := ComputeRentalCost(equipment.RentalUnit, equipment.RentalRate, hoursUsed)

	log := models.EquipmentLog{
		EquipmentID:  equipment.ID,
		Date:         req.Date.TimeOr(s.now()),
		HoursUsed:    hoursUsed,
		FuelConsumed: floatOrZero(req.FuelConsumed),
		FuelCost:     fuelCost,
		RentalCost:   rentalCost,
		TotalCost:    rentalCost + fuelCost,
		Remarks:      req.Remarks,
	}
	return s.logRepo.Create(log)
}

// DeleteLog removes a single usage log entry
func (s *EquipmentService) DeleteLog(id string) error {
	err := s.logRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("Log")
	}
	return err
}

// ComputeRentalCost applies the billing-unit policy: hourly equipment is
// charged by hours used, daily equipment one flat day rate per log entry,
// and fixed-rate equipment is not charged per entry.
func ComputeRentalCost(unit models.RentalUnit, rate, hoursUsed float64) float64 {
	switch unit {
	case models.RentalUnitPerHour:
		return hoursUsed * rate
	case models.RentalUnitPerDay:
		return rate
	default:
		return 0
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
