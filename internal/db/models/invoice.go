package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Field names for the invoice model
const (
	// InvoiceStatusField is the field name for the invoice status
	InvoiceStatusField = "status"
	// InvoiceDueDateField is the field name for the invoice due date
	InvoiceDueDateField = "due_date"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

// Invoice status constants
const (
	// InvoiceStatusDraft indicates the invoice has not been sent to the client
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusSent indicates the invoice has been sent and awaits payment
	InvoiceStatusSent InvoiceStatus = "sent"
	// InvoiceStatusPaid indicates the invoice has been paid
	InvoiceStatusPaid InvoiceStatus = "paid"
)

// String returns the string representation of the invoice status
func (s InvoiceStatus) String() string {
	return string(s)
}

// ParseInvoiceStatus converts a string to an InvoiceStatus type
func ParseInvoiceStatus(str string) (InvoiceStatus, error) {
	switch str {
	case string(InvoiceStatusDraft):
		return InvoiceStatusDraft, nil
	case string(InvoiceStatusSent):
		return InvoiceStatusSent, nil
	case string(InvoiceStatusPaid):
		return InvoiceStatusPaid, nil
	default:
		return "", fmt.Errorf("invalid invoice status: %s", str)
	}
}

// Invoice represents a bill issued for a project. It exclusively owns its
// line items; deleting an invoice deletes them but never the tasks they
// billed.
type Invoice struct {
	gorm.Model
	OwnerID       uint          `json:"-" gorm:"not null;index"`
	ProjectID     uint          `json:"project_id" gorm:"not null;index"`
	InvoiceNumber string        `json:"invoice_number" gorm:"not null;unique"`
	IssueDate     time.Time     `json:"issue_date" gorm:"not null"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Status        InvoiceStatus `json:"status" gorm:"not null;default:draft;index"`
	LineItems     []LineItem    `json:"line_items,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TotalAmount returns the sum of the invoice's line item amounts.
// LineItems must be preloaded.
func (i *Invoice) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.LineItems {
		total = total.Add(item.Amount())
	}
	return total
}

// CanEdit reports whether line items may still be added to the invoice
func (i *Invoice) CanEdit() bool {
	return i.Status == InvoiceStatusDraft
}

// BeforeCreate is a GORM hook that runs before creating a new invoice
func (i *Invoice) BeforeCreate(_ *gorm.DB) error {
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
	if i.IssueDate.IsZero() {
		i.IssueDate = time.Now()
	}
	if i.InvoiceNumber == "" {
		return fmt.Errorf("invoice number cannot be empty")
	}
	return nil
}

// LineItem represents one priced row on an invoice, derived from one or
// more tasks or entered by hand
type LineItem struct {
	gorm.Model
	InvoiceID   uint            `json:"invoice_id" gorm:"not null;index"`
	Description string          `json:"description" gorm:"not null"`
	Quantity    float64         `json:"quantity" gorm:"not null;default:1"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
}

// Amount returns quantity times unit price
func (l *LineItem) Amount() decimal.Decimal {
	return decimal.NewFromFloat(l.Quantity).Mul(l.UnitPrice)
}

// InvoiceSequence is the singleton row holding the next available invoice
// number. It is the only source of truth for numbering and must only ever
// contain one row.
type InvoiceSequence struct {
	ID             uint `gorm:"primaryKey"`
	NextInvoiceNum int  `gorm:"not null;default:1"`
}

// FormatInvoiceNumber renders a sequence value as a display number,
// zero-padded to at least four digits
func FormatInvoiceNumber(n int) string {
	return fmt.Sprintf("INV-%04d", n)
}
