package services

import (
	"context"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
)

// Expense handles expense-related operations
type Expense struct {
	repo *repos.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService
func NewExpenseService(repo *repos.ExpenseRepository) *Expense {
	return &Expense{repo: repo}
}

// Create creates a new expense
func (s *Expense) Create(ctx context.Context, expense *models.Expense) error {
	return s.repo.Create(ctx, expense)
}

// List retrieves all expenses with pagination
func (s *Expense) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Expense, error) {
	return s.repo.List(ctx, ownerID, opts)
}

// Categories retrieves the expense categories, seeding the defaults on
// first use
func (s *Expense) Categories(ctx context.Context) ([]models.ExpenseCategory, error) {
	return s.repo.ListCategories(ctx)
}

// Delete deletes an expense by ID
func (s *Expense) Delete(ctx context.Context, ownerID uint, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}
