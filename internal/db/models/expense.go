package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultExpenseCategories are seeded when no categories exist yet
var DefaultExpenseCategories = []string{
	"Software", "Hardware", "Marketing", "Travel", "Office Supplies", "Other",
}

// ExpenseCategory groups expenses for reporting
type ExpenseCategory struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;unique"`
}

// Expense represents money spent on a project
type Expense struct {
	gorm.Model
	OwnerID     uint            `json:"-" gorm:"not null;index"`
	ProjectID   uint            `json:"project_id" gorm:"not null;index"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Description string          `json:"description" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
}

// Validate ensures that the expense data is valid
func (e *Expense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("expense description cannot be empty")
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense amount cannot be negative")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new expense
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return e.Validate()
}
