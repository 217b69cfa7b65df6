package services

import (
	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// UserService handles administrative user management.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAllUsers retrieves every user.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// UpdateUserRole changes the role of the given user.
func (s *UserService) UpdateUserRole(id uint, role models.UserRole) error {
	if !role.Valid() {
		return apperrors.New(apperrors.KindBadRequest, "invalid role: "+string(role))
	}
	return s.userRepo.UpdateRole(id, role)
}
