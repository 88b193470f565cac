package dto

// AddMaterialRequest represents the payload for adding a material
type AddMaterialRequest struct {
	ProjectID    string  `json:"projectId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	UsedQuantity float64 `json:"usedQuantity"`
}

// UpdateMaterialRequest represents a material update. The presence of
// AddedQuantity selects stock-addition mode; otherwise quantity and price
// are set directly, falling back to the existing values when omitted.
type UpdateMaterialRequest struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Quantity            *float64 `json:"quantity"`
	Price               *float64 `json:"price"`
	AddedQuantity       *float64 `json:"addedQuantity"`
	UnitPriceAtPurchase *float64 `json:"unitPriceAtPurchase"`
}

// LogUsageRequest represents a material consumption event
type LogUsageRequest struct {
	QuantityUsed float64   `json:"quantityUsed"`
	Date         *DateTime `json:"date"`
	Remark       string    `json:"remark"`
}
