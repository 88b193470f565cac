package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// MaterialService handles business logic for the material ledger
type MaterialService struct {
	materialRepo *repositories.MaterialRepository
	now          func() time.Time
}

// NewMaterialService creates a new material service instance
func NewMaterialService() *MaterialService {
	return &MaterialService{
		materialRepo: repositories.NewMaterialRepository(),
		now:          time.Now,
	}
}

// AddMaterial inserts a new material with an empty update history
func (s *MaterialService) AddMaterial(req dto.AddMaterialRequest) (models.Material, error) {
	if !models.IsValidCategory(req.Category) {
		return models.Material{}, utils.NewValidationError("Unknown material category: " + req.Category)
	}

	material := models.Material{
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Price:         req.Price,
		UsedQuantity:  req.UsedQuantity,
		UpdateHistory: models.UpdateHistory{},
	}
	return s.materialRepo.Create(material)
}

// ListMaterials returns all materials of a project, newest first
func (s *MaterialService) ListMaterials(projectID string) ([]models.Material, error) {
	return s.materialRepo.FindByProjectID(projectID)
}

// UpdateMaterial applies one of the two update modes. The presence of
// AddedQuantity selects stock-addition mode (weighted-average price
// recompute); otherwise quantity and price are set directly. Both modes
// append a history entry and run under a row lock.
func (s *MaterialService) UpdateMaterial(materialID string, req dto.UpdateMaterialRequest) (models.Material, error) {
	material, err := s.materialRepo.UpdateLocked(materialID, func(m *models.Material) error {
		now := s.now()
		if req.AddedQuantity != nil {
			purchasePrice := 0.0
			if req.UnitPriceAtPurchase != nil {
				purchasePrice = *req.UnitPriceAtPurchase
			}
			applyStockAddition(m, *req.AddedQuantity, purchasePrice, now)
		} else {
			applyDirectUpdate(m, req.Quantity, req.Price, now)
		}

		if req.Name != "" {
			m.Name = req.Name
		}
		if req.Category != "" {
			m.Category = req.Category
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Material{}, utils.NewNotFoundError("Material")
	}
	if err != nil {
		return models.Material{}, err
	}
	return material, nil
}

// LogUsage records consumption of a material. Total quantity and price are
// untouched; only UsedQuantity grows and a history entry is appended.
func (s *MaterialService) LogUsage(materialID string, req dto.LogUsageRequest) (models.Material, error) {
	if req.QuantityUsed <= 0 {
		return models.Material{}, utils.NewValidationError("Invalid quantity")
	}

	material, err := s.materialRepo.UpdateLocked(materialID, func(m *models.Material) error {
		remark := req.Remark
		if remark == "" {
			remark = fmt.Sprintf("Used %g units.", req.QuantityUsed)
		}

		entry := models.HistoryEntry{
			Date:             req.Date.TimeOr(s.now()),
			Remark:           remark,
			PreviousQuantity: m.Quantity,
			NewQuantity:      m.Quantity,
			PreviousPrice:    m.Price,
			NewPrice:         m.Price,
		}

		m.UsedQuantity += req.QuantityUsed
		m.LastUpdateRemark = remark
		m.UpdateHistory = append(m.UpdateHistory, entry)
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Material{}, utils.NewNotFoundError("Material")
	}
	if err != nil {
		return models.Material{}, err
	}
	return material, nil
}

// GetHistory returns the update history of a material, newest first by date
func (s *MaterialService) GetHistory(materialID string) ([]models.HistoryEntry, error) {
	material, err := s.materialRepo.FindByID(materialID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("Material")
	}
	if err != nil {
		return nil, err
	}

	history := make([]models.HistoryEntry, len(material.UpdateHistory))
	copy(history, material.UpdateHistory)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history, nil
}

// DeleteMaterial removes a material from the ledger
func (s *MaterialService) DeleteMaterial(materialID string) error {
	err := s.materialRepo.Delete(materialID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("Material")
	}
	return err
}

// applyStockAddition folds a stock purchase into the material: quantity
// grows by the purchased amount and price becomes the quantity-weighted
// average unit cost across all stock. A zero final quantity guards the
// division and resets the price to zero.
func applyStockAddition(m *models.Material, addedQty, purchasePrice float64, now time.Time) {
	oldTotalValue := m.Quantity * m.Price
	newStockValue := addedQty * purchasePrice
	totalValue := oldTotalValue + newStockValue

	finalQuantity := m.Quantity + addedQty
	finalPrice := 0.0
	if finalQuantity > 0 {
		finalPrice = totalValue / finalQuantity
	}

	remark := fmt.Sprintf("Added %g units @ %g/unit. Total extra cost: %g. New Avg Price: %.2f",
		addedQty, purchasePrice, newStockValue, finalPrice)

	entry := models.HistoryEntry{
		Date:                now,
		Remark:              remark,
		PreviousQuantity:    m.Quantity,
		NewQuantity:         finalQuantity,
		PreviousPrice:       m.Price,
		NewPrice:            finalPrice,
		AddedQuantity:       &addedQty,
		UnitPriceAtPurchase: &purchasePrice,
		TotalPurchaseCost:   &newStockValue,
	}

	m.Quantity = finalQuantity
	m.Price = finalPrice
	m.LastUpdateRemark = remark
	m.UpdateHistory = append(m.UpdateHistory, entry)
}

// applyDirectUpdate sets quantity and price from the request, falling back
// to the existing values when omitted, and builds a remark describing the
// quantity, price and total-value deltas.
func applyDirectUpdate(m *models.Material, quantity, price *float64, now time.Time) {
	finalQuantity := m.Quantity
	if quantity != nil {
		finalQuantity = *quantity
	}
	finalPrice := m.Price
	if price != nil {
		finalPrice = *price
	}

	var remark string
	if m.Quantity != finalQuantity {
		diff := finalQuantity - m.Quantity
		remark += fmt.Sprintf("Quantity changed from %g to %g (%+g). ", m.Quantity, finalQuantity, diff)
	}
	if m.Price != finalPrice {
		diff := finalPrice - m.Price
		remark += fmt.Sprintf("Price changed from %g to %g (%+g). ", m.Price, finalPrice, diff)
	}

	costDiff := finalQuantity*finalPrice - m.Quantity*m.Price
	if costDiff != 0 {
		remark += fmt.Sprintf("Total value change: %+g.", costDiff)
	}

	entry := models.HistoryEntry{
		Date:             now,
		Remark:           remark,
		PreviousQuantity: m.Quantity,
		NewQuantity:      finalQuantity,
		PreviousPrice:    m.Price,
		NewPrice:         finalPrice,
	}

	m.Quantity = finalQuantity
	m.Price = finalPrice
	m.LastUpdateRemark = remark
	m.UpdateHistory = append(m.UpdateHistory, entry)
}
