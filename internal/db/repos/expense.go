package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// ExpenseRepository handles database operations for expenses and their categories
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense in the database
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Get retrieves an expense by ID, scoped to its owner
func (r *ExpenseRepository) Get(ctx context.Context, ownerID uint, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).Where(models.Expense{OwnerID: ownerID}).
		First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// List retrieves all expenses for an owner ordered by most recent date
func (r *ExpenseRepository) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Expense, error) {
	var expenses []models.Expense
	query := applyListOptions(r.db.WithContext(ctx).Where(models.Expense{OwnerID: ownerID}).Order("date DESC"), opts)
	err := query.Find(&expenses).Error
	return expenses, err
}

// Delete deletes an expense by ID
func (r *ExpenseRepository) Delete(ctx context.Context, ownerID uint, id uint) error {
	return r.db.WithContext(ctx).Where(models.Expense{OwnerID: ownerID}).
		Delete(&models.Expense{}, id).Error
}

// ListCategories retrieves the expense categories, seeding the default set
// when none exist yet
func (r *ExpenseRepository) ListCategories(ctx context.Context) ([]models.ExpenseCategory, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ExpenseCategory{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, name := range models.DefaultExpenseCategories {
				if err := tx.Create(&models.ExpenseCategory{Name: name}).Error; err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}

	var categories []models.ExpenseCategory
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}
