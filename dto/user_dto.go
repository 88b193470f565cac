package dto

// CreateUserRequest represents the payload for create-or-get user
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}

// UpdateNameRequest represents the payload for updating a user's display name
type UpdateNameRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
}
