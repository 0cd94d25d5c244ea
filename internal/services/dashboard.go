package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// Dashboard computes revenue and expense aggregates for an owner
type Dashboard struct {
	db *gorm.DB
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(db *gorm.DB) *Dashboard {
	return &Dashboard{db: db}
}

// ClientRevenue is the paid revenue attributed to one client
type ClientRevenue struct {
	ClientName string          `json:"client_name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Summary aggregates the owner's financial position
type Summary struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`       // paid invoices
	OutstandingRevenue decimal.Decimal `json:"outstanding_revenue"` // sent, unpaid invoices
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`      // all invoices
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	RevenueByClient    []ClientRevenue `json:"revenue_by_client"`
}

// Summarize computes the dashboard summary for an owner
func (s *Dashboard) Summarize(ctx context.Context, ownerID uint) (*Summary, error) {
	totalRevenue, err := s.invoicedAmount(ctx, ownerID, models.InvoiceStatusPaid)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.invoicedAmount(ctx, ownerID, models.InvoiceStatusSent)
	if err != nil {
		return nil, err
	}
	totalInvoiced, err := s.invoicedAmount(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	// Scan sums into decimal directly, a float64 round-trip would lose
	// the exactness of the underlying columns
	var expenses struct{ Total decimal.Decimal }
	err = s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&expenses).Error
	if err != nil {
		return nil, err
	}

	byClient, err := s.revenueByClient(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalRevenue:       totalRevenue,
		OutstandingRevenue: outstanding,
		TotalInvoiced:      totalInvoiced,
		TotalExpenses:      expenses.Total,
		NetProfit:          totalRevenue.Sub(expenses.Total),
		RevenueByClient:    byClient,
	}, nil
}

// invoicedAmount sums line item amounts over the owner's invoices,
// optionally restricted to one status
func (s *Dashboard) invoicedAmount(ctx context.Context, ownerID uint, status models.InvoiceStatus) (decimal.Decimal, error) {
	query := s.db.WithContext(ctx).Table("line_items").
		Joins("JOIN invoices ON invoices.id = line_items.invoice_id").
		Where("invoices.owner_id = ? AND invoices.deleted_at IS NULL AND line_items.deleted_at IS NULL", ownerID)
	if status != "" {
		query = query.Where("invoices.status = ?", status)
	}

	var row struct{ Total decimal.Decimal }
	err := query.Select("COALESCE(SUM(line_items.quantity * line_items.unit_price), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// revenueByClient groups paid revenue by client name
func (s *Dashboard) revenueByClient(ctx context.Context, ownerID uint) ([]ClientRevenue, error) {
	rows := []struct {
		Name    string
		Revenue decimal.Decimal
	}{}

	err := s.db.WithContext(ctx).Table("line_items").
		Joins("JOIN invoices ON invoices.id = line_items.invoice_id").
		Joins("JOIN projects ON projects.id = invoices.project_id").
		Joins("JOIN clients ON clients.id = projects.client_id").
		Where("invoices.owner_id = ? AND invoices.status = ?", ownerID, models.InvoiceStatusPaid).
		Where("invoices.deleted_at IS NULL AND line_items.deleted_at IS NULL").
		Select("clients.name AS name, SUM(line_items.quantity * line_items.unit_price) AS revenue").
		Group("clients.name").
		Order("clients.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]ClientRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, ClientRevenue{
			ClientName: row.Name,
			Revenue:    row.Revenue,
		})
	}
	return result, nil
}
