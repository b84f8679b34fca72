package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// UserRepository defines storage operations on user accounts.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
}

// UserRepositoryImpl provides methods to interact with the User model in the database.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepositoryImpl instance with the provided GORM database connection.
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// CreateUser creates a new User in the database.
func (r *UserRepositoryImpl) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUser retrieves a User by its ID from the database.
func (r *UserRepositoryImpl) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

// GetUserByUsername retrieves a User by its unique username.
func (r *UserRepositoryImpl) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	return &user, err
}

// UpdateUser updates an existing User in the database.
func (r *UserRepositoryImpl) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}
