package services

import (
	"github.com/shopspring/decimal"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *ServiceSuite) TestSummarizeEmptyAccount() {
	summary, err := s.Dashboard.Summarize(s.ctx, testOwnerID)
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.IsZero())
	s.True(summary.OutstandingRevenue.IsZero())
	s.True(summary.TotalInvoiced.IsZero())
	s.True(summary.TotalExpenses.IsZero())
	s.True(summary.NetProfit.IsZero())
	s.Empty(summary.RevenueByClient)
}

func (s *ServiceSuite) TestSummarizeSplitsRevenueByStatus() {
	// Paid: 2h at 100.00 for Acme Corp.
	paidProject := s.createProject(models.BillingTypeHourly)
	paidTask := s.createTask(paidProject.ID, "Paid work")
	s.logHours(paidTask.ID, 2)
	paid, err := s.Invoices.Generate(s.ctx, testOwnerID, paidProject.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.Invoices.UpdateStatus(s.ctx, testOwnerID, paid.ID, models.InvoiceStatusPaid, nil))

	// Sent: 3h at 50.00 for a second client.
	zeta := &models.Client{OwnerID: testOwnerID, Name: "Zeta LLC"}
	s.Require().NoError(s.Clients.Create(s.ctx, zeta))
	sentProject := &models.Project{
		OwnerID:     testOwnerID,
		ClientID:    zeta.ID,
		Title:       "Zeta Retainer",
		BillingType: models.BillingTypeHourly,
		HourlyRate:  decimal.RequireFromString("50.00"),
	}
	s.Require().NoError(s.Projects.Create(s.ctx, sentProject))
	sentTask := s.createTask(sentProject.ID, "Sent work")
	s.logHours(sentTask.ID, 3)
	sent, err := s.Invoices.Generate(s.ctx, testOwnerID, sentProject.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.Invoices.UpdateStatus(s.ctx, testOwnerID, sent.ID, models.InvoiceStatusSent, nil))

	// Draft: 1h at 100.00, counts toward total invoiced only.
	draftTask := s.createTask(paidProject.ID, "Draft work")
	s.logHours(draftTask.ID, 1)
	_, err = s.Invoices.Generate(s.ctx, testOwnerID, paidProject.ID)
	s.Require().NoError(err)

	expense := &models.Expense{
		OwnerID:     testOwnerID,
		ProjectID:   paidProject.ID,
		CategoryID:  1,
		Description: "Design tool subscription",
		Amount:      decimal.RequireFromString("40.00"),
	}
	s.Require().NoError(s.Expenses.Create(s.ctx, expense))

	summary, err := s.Dashboard.Summarize(s.ctx, testOwnerID)
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.Equal(decimal.RequireFromString("200")), "got %s", summary.TotalRevenue)
	s.True(summary.OutstandingRevenue.Equal(decimal.RequireFromString("150")), "got %s", summary.OutstandingRevenue)
	s.True(summary.TotalInvoiced.Equal(decimal.RequireFromString("450")), "got %s", summary.TotalInvoiced)
	s.True(summary.TotalExpenses.Equal(decimal.RequireFromString("40")), "got %s", summary.TotalExpenses)
	s.True(summary.NetProfit.Equal(decimal.RequireFromString("160")), "got %s", summary.NetProfit)

	s.Require().Len(summary.RevenueByClient, 1, "only paid revenue is attributed")
	s.Equal("Acme Corp", summary.RevenueByClient[0].ClientName)
	s.True(summary.RevenueByClient[0].Revenue.Equal(decimal.RequireFromString("200")))
}

func (s *ServiceSuite) TestSummarizeKeepsCentPrecision() {
	project := s.createProject(models.BillingTypeHourly, "100.25")
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 2)
	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.Invoices.UpdateStatus(s.ctx, testOwnerID, invoice.ID, models.InvoiceStatusPaid, nil))

	expense := &models.Expense{
		OwnerID:     testOwnerID,
		ProjectID:   project.ID,
		CategoryID:  1,
		Description: "Stock photo",
		Amount:      decimal.RequireFromString("0.75"),
	}
	s.Require().NoError(s.Expenses.Create(s.ctx, expense))

	summary, err := s.Dashboard.Summarize(s.ctx, testOwnerID)
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.Equal(decimal.RequireFromString("200.50")), "got %s", summary.TotalRevenue)
	s.True(summary.TotalExpenses.Equal(decimal.RequireFromString("0.75")), "got %s", summary.TotalExpenses)
	s.True(summary.NetProfit.Equal(decimal.RequireFromString("199.75")), "got %s", summary.NetProfit)
	s.Require().Len(summary.RevenueByClient, 1)
	s.True(summary.RevenueByClient[0].Revenue.Equal(decimal.RequireFromString("200.50")))
}

func (s *ServiceSuite) TestSummarizeScopedToOwner() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 2)
	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.Invoices.UpdateStatus(s.ctx, testOwnerID, invoice.ID, models.InvoiceStatusPaid, nil))

	summary, err := s.Dashboard.Summarize(s.ctx, testOwnerID+1)
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.IsZero())
	s.True(summary.TotalInvoiced.IsZero())
	s.Empty(summary.RevenueByClient)
}
