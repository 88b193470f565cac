package services

import (
	"errors"
	"strings"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/repositories"
	"github.com/sitetrack-api/utils"
	"gorm.io/gorm"
)

// UserService handles business logic for the user directory
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// CreateOrGetUser looks up a user by email and creates one when absent.
// The returned bool reports whether a new user was created; an existing
// user's name is never overwritten here.
func (s *UserService) CreateOrGetUser(req dto.CreateUserRequest) (models.User, bool, error) {
	if req.Email == "" {
		return models.User{}, false, utils.NewValidationError("Email is required")
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, err
	}

	name := req.Name
	if name == "" {
		name = DeriveNameFromEmail(req.Email)
	}

	created, err := s.userRepo.Create(models.User{
		Name:  name,
		Email: req.Email,
	})
	if err != nil {
		return models.User{}, false, err
	}
	return created, true, nil
}

// UpdateName sets the display name of an existing user
func (s *UserService) UpdateName(userID, name string) (models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, utils.NewNotFoundError("User")
	}
	if err != nil {
		return models.User{}, err
	}

	user.Name = name
	if err := s.userRepo.Save(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeriveNameFromEmail returns the local part of an email address
func DeriveNameFromEmail(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
