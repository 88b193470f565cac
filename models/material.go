package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialCategories is the closed set of accepted material categories
var MaterialCategories = []string{
	"Cement & Binders",
	"Sand & Aggregates",
	"Bricks & Blocks",
	"Steel & Metals",
	"Concrete & Ready-Mix",
	"Wood & Boards",
	"Doors & Windows",
	"Flooring Materials",
	"Plumbing Materials",
	"Sanitary Ware",
	"Bathroom Fittings",
	"Electrical Materials",
	"Lighting & Fixtures",
	"Paints & Coatings",
	"Waterproofing & Chemicals",
	"Hardware & Fasteners",
	"Ceiling & Wall Systems",
	"Glass & Glazing",
	"Roofing Materials",
	"External & Landscaping",
	"Miscellaneous",
}

// IsValidCategory reports whether category belongs to the accepted set
func IsValidCategory(category string) bool {
	for _, c := range MaterialCategories {
		if c == category {
			return true
		}
	}
	return false
}

// HistoryEntry records a single change to a material's stock, price or usage.
// The purchase fields are only present for stock-addition updates.
type HistoryEntry struct {
	Date                time.Time `json:"date"`
	Remark              string    `json:"remark"`
	PreviousQuantity    float64   `json:"previousQuantity"`
	NewQuantity         float64   `json:"newQuantity"`
	PreviousPrice       float64   `json:"previousPrice"`
	NewPrice            float64   `json:"newPrice"`
	AddedQuantity       *float64  `json:"addedQuantity,omitempty"`
	UnitPriceAtPurchase *float64  `json:"unitPriceAtPurchase,omitempty"`
	TotalPurchaseCost   *float64  `json:"totalPurchaseCost,omitempty"`
}

// UpdateHistory is an append-only sequence of history entries stored as JSON
type UpdateHistory []HistoryEntry

func (h UpdateHistory) Value() (driver.Value, error) {
	if h == nil {
		h = UpdateHistory{}
	}
	return json.Marshal(h)
}

func (h *UpdateHistory) Scan(value interface{}) error {
	if value == nil {
		*h = UpdateHistory{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return errors.New("unsupported type for UpdateHistory")
	}
}

// Material represents a material ledger entry for a project.
// Price is always the quantity-weighted average unit cost across stock
// additions; Quantity is total stock on hand and is never reduced by usage,
// which is tracked separately in UsedQuantity.
type Material struct {
	ID               string        `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID        string        `json:"projectId" gorm:"type:uuid;not null;index"`
	Name             string        `json:"name" gorm:"not null"`
	Category         string        `json:"category" gorm:"not null"`
	Quantity         float64       `json:"quantity"`
	Price            float64       `json:"price"`
	UsedQuantity     float64       `json:"usedQuantity"`
	LastUpdateRemark string        `json:"lastUpdateRemark"`
	UpdateHistory    UpdateHistory `json:"updateHistory" gorm:"type:jsonb;default:'[]'"`
	CreatedAt        time.Time     `json:"createdAt"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
