package dto

// AddEquipmentRequest represents the payload for registering equipment
type AddEquipmentRequest struct {
	ProjectID  string  `json:"projectId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	RentalRate float64 `json:"rentalRate"`
	RentalUnit string  `json:"rentalUnit" binding:"required"`
	FuelType   string  `json:"fuelType"`
	Status     string  `json:"status"`
}

// UpdateEquipmentRequest represents a partial equipment update
type UpdateEquipmentRequest struct {
	Name       *string  `json:"name"`
	Type       *string  `json:"type"`
	RentalRate *float64 `json:"rentalRate"`
	RentalUnit *string  `json:"rentalUnit"`
	FuelType   *string  `json:"fuelType"`
	Status     *string  `json:"status"`
}

// AddEquipmentLogRequest represents a usage log entry. Missing numeric
// inputs default to zero.
type AddEquipmentLogRequest struct {
	EquipmentID  string    `json:"equipmentId" binding:"required"`
	Date         *DateTime `json:"date"`
	HoursUsed    *float64  `json:"hoursUsed"`
	FuelConsumed *float64  `json:"fuelConsumed"`
	FuelCost     *float64  `json:"fuelCost"`
	Remarks      string    `json:"remarks"`
}
