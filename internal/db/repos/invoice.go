package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// InvoiceRepository handles database operations for invoices, line items
// and the invoice number sequence
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *InvoiceRepository) WithTx(tx *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: tx}
}

// NextInvoiceNumber allocates the next invoice number from the singleton
// sequence row, creating it at 1 if absent. The row is read under a
// FOR UPDATE lock and advanced in place, so the read-increment-write is a
// single atomic unit within the caller's transaction: if that transaction
// rolls back, the increment rolls back with it.
//
// Must be called inside a transaction and at most once per invoice.
func (r *InvoiceRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	var seq models.InvoiceSequence
	err := lockForUpdate(r.db.WithContext(ctx)).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = models.InvoiceSequence{NextInvoiceNum: 1}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	num := seq.NextInvoiceNum
	seq.NextInvoiceNum = num + 1
	if err := r.db.WithContext(ctx).Save(&seq).Error; err != nil {
		return "", err
	}
	return models.FormatInvoiceNumber(num), nil
}

// Create creates a new invoice together with its line items
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Get retrieves an invoice by ID with its line items, scoped to its owner
func (r *InvoiceRepository) Get(ctx context.Context, ownerID uint, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Where(models.Invoice{OwnerID: ownerID}).
		Preload("LineItems").
		First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List retrieves all invoices for an owner ordered by most recent issue
// date, with pagination
func (r *InvoiceRepository) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Invoice, error) {
	var invoices []models.Invoice
	query := applyListOptions(r.db.WithContext(ctx).
		Where(models.Invoice{OwnerID: ownerID}).
		Preload("LineItems").
		Order("issue_date DESC"), opts)
	err := query.Find(&invoices).Error
	return invoices, err
}

// Update persists changes to an existing invoice
func (r *InvoiceRepository) Update(ctx context.Context, ownerID uint, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where(models.Invoice{Model: gorm.Model{ID: invoice.ID}, OwnerID: ownerID}).
		Updates(invoice).Error
}

// AddLineItem appends a manually entered line item to an invoice
func (r *InvoiceRepository) AddLineItem(ctx context.Context, item *models.LineItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Delete deletes an invoice and its line items. The tasks the invoice
// billed are made billable again in the same transaction, so deleting an
// invoice never leaves tasks permanently unbillable.
func (r *InvoiceRepository) Delete(ctx context.Context, ownerID uint, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoice, err := r.WithTx(tx).Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		itemIDs := make([]uint, 0, len(invoice.LineItems))
		for _, item := range invoice.LineItems {
			itemIDs = append(itemIDs, item.ID)
		}

		taskRepo := NewTaskRepository(tx)
		if err := taskRepo.ResetBilling(ctx, ownerID, itemIDs); err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Delete(&models.LineItem{}, itemIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Invoice{}, invoice.ID).Error
	})
}
