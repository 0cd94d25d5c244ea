package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// ErrUsernameTaken is returned when creating a user whose username is
// already in use
var ErrUsernameTaken = fmt.Errorf("username already exists")

// UserRepository handles database operations for user entities
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user in the database.
// Returns an error if the username already exists
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.GetByUsername(ctx, user.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking username existence: %w", err)
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByUsername retrieves a user by their username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users with pagination
func (r *UserRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	var users []models.User
	err := applyListOptions(r.db.WithContext(ctx), opts).Find(&users).Error
	return users, err
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, userID).Error
}
