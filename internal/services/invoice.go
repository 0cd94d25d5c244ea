package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/billing"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
	"github.com/solobooks/solobooks/internal/logger"
)

// ErrInvoiceNotDraft is returned when editing an invoice that has already
// been sent or paid
var ErrInvoiceNotDraft = fmt.Errorf("invoice is not a draft")

// Invoice handles invoice-related operations
type Invoice struct {
	db       *gorm.DB
	invoices *repos.InvoiceRepository
	tasks    *repos.TaskRepository
	projects *repos.ProjectRepository
}

// NewInvoiceService creates a new instance of InvoiceService
func NewInvoiceService(db *gorm.DB, invoices *repos.InvoiceRepository, tasks *repos.TaskRepository, projects *repos.ProjectRepository) *Invoice {
	return &Invoice{
		db:       db,
		invoices: invoices,
		tasks:    tasks,
		projects: projects,
	}
}

// Generate creates an invoice for a project's completed, unbilled work.
//
// The whole operation is one transaction: selecting the eligible tasks,
// deriving line items from the project's billing type, allocating the next
// invoice number, creating the invoice, and marking the billed tasks. Any
// failure rolls everything back, including the sequence increment, so no
// partial invoice or consumed number can ever be observed.
//
// Returns billing.ErrNothingToBill when no eligible task produces a line
// item; nothing is mutated in that case.
func (s *Invoice) Generate(ctx context.Context, ownerID uint, projectID uint) (*models.Invoice, error) {
	var invoice *models.Invoice

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projectRepo := s.projects.WithTx(tx)
		taskRepo := s.tasks.WithTx(tx)
		invoiceRepo := s.invoices.WithTx(tx)

		project, err := projectRepo.Get(ctx, ownerID, projectID)
		if err != nil {
			return err
		}

		tasks, err := taskRepo.ListEligibleForBilling(ctx, ownerID, project.ID)
		if err != nil {
			return fmt.Errorf("failed to load eligible tasks: %w", err)
		}
		if len(tasks) == 0 {
			return billing.ErrNothingToBill
		}

		items, err := billing.BuildLineItems(project, tasks)
		if err != nil {
			return err
		}

		number, err := invoiceRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate invoice number: %w", err)
		}

		invoice = &models.Invoice{
			OwnerID:       ownerID,
			ProjectID:     project.ID,
			InvoiceNumber: number,
			IssueDate:     time.Now(),
			Status:        models.InvoiceStatusDraft,
		}
		for _, item := range items {
			invoice.LineItems = append(invoice.LineItems, models.LineItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		for i, item := range items {
			if err := taskRepo.MarkBilled(ctx, ownerID, item.TaskIDs, invoice.LineItems[i].ID); err != nil {
				return fmt.Errorf("failed to mark tasks billed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoWithFields("invoice generated", map[string]interface{}{
		"invoice_number": invoice.InvoiceNumber,
		"project_id":     projectID,
		"line_items":     len(invoice.LineItems),
	})
	return invoice, nil
}

// Create creates an invoice shell with no line items, numbered from the
// shared sequence
func (s *Invoice) Create(ctx context.Context, ownerID uint, projectID uint) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projectRepo := s.projects.WithTx(tx)
		invoiceRepo := s.invoices.WithTx(tx)

		project, err := projectRepo.Get(ctx, ownerID, projectID)
		if err != nil {
			return err
		}
		number, err := invoiceRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		invoice = &models.Invoice{
			OwnerID:       ownerID,
			ProjectID:     project.ID,
			InvoiceNumber: number,
			IssueDate:     time.Now(),
			Status:        models.InvoiceStatusDraft,
		}
		return invoiceRepo.Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get retrieves an invoice with its line items
func (s *Invoice) Get(ctx context.Context, ownerID uint, id uint) (*models.Invoice, error) {
	return s.invoices.Get(ctx, ownerID, id)
}

// List retrieves all invoices for an owner with pagination
func (s *Invoice) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Invoice, error) {
	return s.invoices.List(ctx, ownerID, opts)
}

// AddLineItem appends a manually entered line item to a draft invoice
func (s *Invoice) AddLineItem(ctx context.Context, ownerID uint, invoiceID uint, item *models.LineItem) error {
	invoice, err := s.invoices.Get(ctx, ownerID, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.CanEdit() {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, ErrInvoiceNotDraft)
	}
	item.InvoiceID = invoice.ID
	return s.invoices.AddLineItem(ctx, item)
}

// UpdateStatus updates the status and optionally the due date of an invoice
func (s *Invoice) UpdateStatus(ctx context.Context, ownerID uint, id uint, status models.InvoiceStatus, dueDate *time.Time) error {
	invoice, err := s.invoices.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	invoice.Status = status
	if dueDate != nil {
		invoice.DueDate = dueDate
	}
	return s.invoices.Update(ctx, ownerID, invoice)
}

// Delete deletes an invoice, returning its billed tasks to the billable pool
func (s *Invoice) Delete(ctx context.Context, ownerID uint, id uint) error {
	return s.invoices.Delete(ctx, ownerID, id)
}
