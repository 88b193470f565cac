package dto

// CreateProjectRequest represents the payload for creating a project.
// Budget sign and date ordering are deliberately not validated.
type CreateProjectRequest struct {
	UserID      string    `json:"userId" binding:"required"`
	ProjectName string    `json:"projectName" binding:"required"`
	Budget      float64   `json:"budget"`
	StartDate   *DateTime `json:"startDate"`
	EndDate     *DateTime `json:"endDate"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	ProjectName *string   `json:"projectName"`
	Budget      *float64  `json:"budget"`
	StartDate   *DateTime `json:"startDate"`
	EndDate     *DateTime `json:"endDate"`
}
