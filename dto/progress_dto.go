package dto

// UpsertProgressRequest represents the payload for adding or updating the
// progress record of a project section
type UpsertProgressRequest struct {
	ProjectID string    `json:"projectId"`
	Section   string    `json:"section"`
	Progress  float64   `json:"progress"`
	Status    string    `json:"status"`
	StartDate *DateTime `json:"startDate"`
	EndDate   *DateTime `json:"endDate"`
	Remarks   string    `json:"remarks"`
}
