package dto

import "time"

// ProjectSummary is the derived budget summary for a project.
// Nothing here is persisted; it is recomputed on every request.
type ProjectSummary struct {
	ProjectName     string     `json:"projectName"`
	Budget          float64    `json:"budget"`
	TotalSpent      float64    `json:"totalSpent"`
	RemainingBudget float64    `json:"remainingBudget"`
	MaterialsCount  int        `json:"materialsCount"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}
