package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Field names for the task model
const (
	// TaskCompletedField is the field name for the task completion flag
	TaskCompletedField = "is_completed"
	// TaskBilledField is the field name for the task billed flag
	TaskBilledField = "has_been_billed"
	// TaskLineItemField is the field name for the task line item back-reference
	TaskLineItemField = "line_item_id"
)

// Task represents a unit of work on a project.
//
// OverrideRate only applies on hourly projects, TaskFee and Quantity only on
// per-task projects. A nil rate or fee means "not set", which is distinct
// from an explicit zero.
type Task struct {
	gorm.Model
	OwnerID       uint             `json:"-" gorm:"not null;index"`
	ProjectID     uint             `json:"project_id" gorm:"not null;index"`
	Description   string           `json:"description" gorm:"not null"`
	IsCompleted   bool             `json:"is_completed" gorm:"not null;default:false"`
	IsBillable    bool             `json:"is_billable" gorm:"not null;default:true"`
	HasBeenBilled bool             `json:"has_been_billed" gorm:"not null;default:false;index"`
	OverrideRate  *decimal.Decimal `json:"override_rate,omitempty" gorm:"type:decimal(12,2)"`
	TaskFee       *decimal.Decimal `json:"task_fee,omitempty" gorm:"type:decimal(12,2)"`
	Quantity      int              `json:"quantity" gorm:"default:1"`
	QuantityIsNA  bool             `json:"quantity_is_na" gorm:"not null;default:false"`
	LineItemID    *uint            `json:"line_item_id,omitempty" gorm:"index"`
	TimeEntries   []TimeEntry      `json:"time_entries,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TotalHoursLogged returns the sum of hours across the task's time entries.
// TimeEntries must be preloaded.
func (t *Task) TotalHoursLogged() float64 {
	var total float64
	for _, entry := range t.TimeEntries {
		total += entry.HoursWorked
	}
	return total
}

// IsEligibleForBilling reports whether the task can appear on a new invoice:
// completed, billable, and not yet billed
func (t *Task) IsEligibleForBilling() bool {
	return t.IsCompleted && t.IsBillable && !t.HasBeenBilled
}

// Validate ensures that the task data is valid
func (t *Task) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("task description cannot be empty")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new task
func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.Quantity == 0 {
		t.Quantity = 1
	}
	return t.Validate()
}
