package dto

// ContractDetailsRequest carries the contract-mode payload.
// PaidAmount is a pointer so a missing amount can be told apart from zero.
type ContractDetailsRequest struct {
	ContractorName  string   `json:"contractorName"`
	EstimatedAmount float64  `json:"estimatedAmount"`
	PaidAmount      *float64 `json:"paidAmount"`
}

// LabourerRequest is one worker entry on a daily wage roster
type LabourerRequest struct {
	Name string  `json:"name"`
	Wage float64 `json:"wage"`
}

// DailyLabourDetailsRequest carries the daily-mode payload
type DailyLabourDetailsRequest struct {
	Labourers   []LabourerRequest `json:"labourers"`
	TotalAmount *float64          `json:"totalAmount"`
}

// AddLabourRequest represents the payload for adding a labour record
type AddLabourRequest struct {
	ProjectID          string                     `json:"projectId"`
	Mode               string                     `json:"mode"`
	Date               *DateTime                  `json:"date"`
	ContractDetails    *ContractDetailsRequest    `json:"contractDetails"`
	DailyLabourDetails *DailyLabourDetailsRequest `json:"dailyLabourDetails"`
}
