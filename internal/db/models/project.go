package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Field names for the project model
const (
	// ProjectTitleField is the field name for the project title
	ProjectTitleField = "title"
	// ProjectNotesField is the field name for the project notes
	ProjectNotesField = "notes"
)

// BillingType represents how a project's completed work is turned into invoice line items
type BillingType string

// Billing type constants
const (
	// BillingTypeHourly bills each task by its logged hours at an hourly rate
	BillingTypeHourly BillingType = "hourly"
	// BillingTypeFlatFee bills the whole project as a single fixed amount
	BillingTypeFlatFee BillingType = "flat_fee"
	// BillingTypePerTask bills each task at its own fixed fee
	BillingTypePerTask BillingType = "per_task"
)

// String returns the string representation of the billing type
func (b BillingType) String() string {
	return string(b)
}

// ParseBillingType converts a string to a BillingType, rejecting unknown tags
func ParseBillingType(str string) (BillingType, error) {
	switch str {
	case string(BillingTypeHourly):
		return BillingTypeHourly, nil
	case string(BillingTypeFlatFee):
		return BillingTypeFlatFee, nil
	case string(BillingTypePerTask):
		return BillingTypePerTask, nil
	default:
		return "", fmt.Errorf("invalid billing type: %s", str)
	}
}

// Project represents a client engagement that tasks and invoices belong to.
// Only the rate fields relevant to its billing type are meaningful; the
// billing engine ignores the others even when they hold stale values.
type Project struct {
	gorm.Model
	OwnerID       uint            `json:"-" gorm:"not null;index"`
	ClientID      uint            `json:"client_id" gorm:"not null;index"`
	Title         string          `json:"title" gorm:"not null;index"`
	Description   string          `json:"description" gorm:"type:text"`
	Notes         string          `json:"notes" gorm:"type:text"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	BillingType   BillingType     `json:"billing_type" gorm:"not null;default:hourly"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(12,2)"`
	FlatFeeAmount decimal.Decimal `json:"flat_fee_amount" gorm:"type:decimal(12,2)"`
	Tasks         []Task          `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Invoices      []Invoice       `json:"invoices,omitempty" gorm:"foreignKey:ProjectID"`
}

// DaysLeft returns the number of days until the project deadline,
// or nil when no deadline is set
func (p *Project) DaysLeft() *int {
	if p.Deadline == nil {
		return nil
	}
	days := int(time.Until(*p.Deadline).Hours() / 24)
	return &days
}

// Validate ensures that the project data is valid
func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("project title cannot be empty")
	}
	if _, err := ParseBillingType(string(p.BillingType)); err != nil {
		return err
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new project
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.BillingType == "" {
		p.BillingType = BillingTypeHourly
	}
	return p.Validate()
}
