package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create stores a new user.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.FromDB(err, "user not found")
	}
	return nil
}

// GetAll returns every user.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, apperrors.FromDB(err, "user not found")
	}
	return users, nil
}

// GetByEmail retrieves a user by email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("user with email %s not found", email))
	}
	return &user, nil
}

// GetByID retrieves a user by id.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("user with ID %d not found", id))
	}
	return &user, nil
}

// Update persists all fields of the user, including cleared ones such as a
// used verification token.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "user not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("user with ID %d not found", user.ID))
	}
	return nil
}

// UpdateRole changes a single user's role.
func (r *GORMUserRepository) UpdateRole(id uint, role models.UserRole) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "user not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("user with ID %d not found", id))
	}
	return nil
}
