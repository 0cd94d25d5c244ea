// Package services implements the business operations of the solobooks
// service on top of the database repositories
package services

import (
	"context"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
)

// User handles user-related operations
type User struct {
	repo *repos.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(repo *repos.UserRepository) *User {
	return &User{repo: repo}
}

// Create creates a new user
func (s *User) Create(ctx context.Context, user *models.User) (uint, error) {
	if err := s.repo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetByID retrieves a user by ID
func (s *User) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (s *User) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// List retrieves all users with pagination
func (s *User) List(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	return s.repo.List(ctx, opts)
}

// Delete deletes a user by ID
func (s *User) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
