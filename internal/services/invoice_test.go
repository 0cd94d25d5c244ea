package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/billing"
	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *ServiceSuite) TestGenerateHourlyInvoice() {
	project := s.createProject(models.BillingTypeHourly, "80.00")

	sync := s.createTask(project.ID, "Weekly sync")
	s.logHours(sync.ID, 2)
	s.logHours(sync.ID, 0.5)

	fix := s.createTask(project.ID, "Emergency fix")
	s.logHours(fix.ID, 1.5)
	override := decimal.RequireFromString("120.00")
	fix.OverrideRate = &override
	s.Require().NoError(s.Tasks.Update(s.ctx, testOwnerID, fix))

	noHours := s.createTask(project.ID, "No hours yet")

	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	s.Equal("INV-0001", invoice.InvoiceNumber)
	s.Equal(models.InvoiceStatusDraft, invoice.Status)
	s.Require().Len(invoice.LineItems, 2, "the task without hours must be skipped")
	// 2.5h * 80 + 1.5h * 120
	s.True(invoice.TotalAmount().Equal(decimal.RequireFromString("380.00")),
		"total was %s", invoice.TotalAmount())

	// Billed tasks leave the pool, the skipped one stays
	billed, err := s.Tasks.Get(s.ctx, testOwnerID, sync.ID)
	s.Require().NoError(err)
	s.True(billed.HasBeenBilled)
	s.Require().NotNil(billed.LineItemID)
	s.Equal(invoice.LineItems[0].ID, *billed.LineItemID)

	skipped, err := s.Tasks.Get(s.ctx, testOwnerID, noHours.ID)
	s.Require().NoError(err)
	s.False(skipped.HasBeenBilled, "a skipped task must stay eligible for a future invoice")
}

func (s *ServiceSuite) TestGenerateFlatFeeInvoice() {
	project := s.createProject(models.BillingTypeFlatFee, "2000.00")
	design := s.createTask(project.ID, "Design")
	build := s.createTask(project.ID, "Build")

	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	s.Require().Len(invoice.LineItems, 1, "flat fee bills as a single line item")
	item := invoice.LineItems[0]
	s.Equal("Project: Test Project - Design; Build", item.Description)
	s.Equal(float64(1), item.Quantity)
	s.True(invoice.TotalAmount().Equal(decimal.RequireFromString("2000.00")))

	// Both tasks hang off the single line item
	for _, taskID := range []uint{design.ID, build.ID} {
		task, err := s.Tasks.Get(s.ctx, testOwnerID, taskID)
		s.Require().NoError(err)
		s.True(task.HasBeenBilled)
		s.Require().NotNil(task.LineItemID)
		s.Equal(item.ID, *task.LineItemID)
	}
}

func (s *ServiceSuite) TestGeneratePerTaskInvoice() {
	project := s.createProject(models.BillingTypePerTask)

	logo := s.createTask(project.ID, "Logo design")
	fee := decimal.RequireFromString("250.00")
	logo.TaskFee = &fee
	logo.Quantity = 3
	s.Require().NoError(s.Tasks.Update(s.ctx, testOwnerID, logo))

	s.createTask(project.ID, "Scoping call") // no fee, skipped

	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	s.Require().Len(invoice.LineItems, 1)
	s.Equal(float64(3), invoice.LineItems[0].Quantity)
	s.True(invoice.TotalAmount().Equal(decimal.RequireFromString("750.00")))
}

func (s *ServiceSuite) TestGenerateNothingToBill() {
	project := s.createProject(models.BillingTypeHourly)

	_, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().ErrorIs(err, billing.ErrNothingToBill)

	var invoiceCount int64
	s.Require().NoError(s.DB.Model(&models.Invoice{}).Count(&invoiceCount).Error)
	s.Zero(invoiceCount, "no invoice may be created")

	var seq models.InvoiceSequence
	s.Require().NoError(s.DB.First(&seq).Error)
	s.Equal(1, seq.NextInvoiceNum, "the number sequence must not advance")
}

func (s *ServiceSuite) TestGenerateTwiceBillsNothingTheSecondTime() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 4)

	first, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal("INV-0001", first.InvoiceNumber)

	_, err = s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().ErrorIs(err, billing.ErrNothingToBill, "already billed tasks must not bill again")
}

func (s *ServiceSuite) TestGenerateRollsBackOnUnknownBillingType() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 4)

	// Corrupt the billing type under the engine's feet
	s.Require().NoError(s.DB.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("billing_type", "retainer").Error)

	_, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().ErrorIs(err, billing.ErrUnknownBillingType)

	// Nothing may be half-committed
	var invoiceCount int64
	s.Require().NoError(s.DB.Model(&models.Invoice{}).Count(&invoiceCount).Error)
	s.Zero(invoiceCount)

	var seq models.InvoiceSequence
	s.Require().NoError(s.DB.First(&seq).Error)
	s.Equal(1, seq.NextInvoiceNum, "the number sequence must not advance")

	got, err := s.Tasks.Get(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.False(got.HasBeenBilled, "the task must stay billable after a failed generation")
}

func (s *ServiceSuite) TestGenerateNumbersAreSequentialAcrossProjects() {
	first := s.createProject(models.BillingTypeFlatFee)
	s.createTask(first.ID, "A")
	second := s.createProject(models.BillingTypeFlatFee)
	s.createTask(second.ID, "B")

	one, err := s.Invoices.Generate(s.ctx, testOwnerID, first.ID)
	s.Require().NoError(err)
	two, err := s.Invoices.Generate(s.ctx, testOwnerID, second.ID)
	s.Require().NoError(err)

	s.Equal("INV-0001", one.InvoiceNumber)
	s.Equal("INV-0002", two.InvoiceNumber)
}

func (s *ServiceSuite) TestGenerateUnknownProject() {
	_, err := s.Invoices.Generate(s.ctx, testOwnerID, 999)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ServiceSuite) TestDeleteInvoiceThenRegenerate() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 2)

	first, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.Invoices.Delete(s.ctx, testOwnerID, first.ID))

	second, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal("INV-0002", second.InvoiceNumber, "deleted numbers are never reused")
	s.True(second.TotalAmount().Equal(first.TotalAmount()))
}

func (s *ServiceSuite) TestAddLineItemOnlyOnDrafts() {
	project := s.createProject(models.BillingTypeFlatFee)
	s.createTask(project.ID, "Work")

	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	item := &models.LineItem{Description: "Rush surcharge", Quantity: 1, UnitPrice: decimal.RequireFromString("100.00")}
	s.Require().NoError(s.Invoices.AddLineItem(s.ctx, testOwnerID, invoice.ID, item))

	s.Require().NoError(s.Invoices.UpdateStatus(s.ctx, testOwnerID, invoice.ID, models.InvoiceStatusSent, nil))

	late := &models.LineItem{Description: "Too late", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")}
	err = s.Invoices.AddLineItem(s.ctx, testOwnerID, invoice.ID, late)
	s.Require().ErrorIs(err, ErrInvoiceNotDraft)
}

func (s *ServiceSuite) TestCreateShellInvoice() {
	project := s.createProject(models.BillingTypeHourly)

	invoice, err := s.Invoices.Create(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal("INV-0001", invoice.InvoiceNumber)
	s.Empty(invoice.LineItems)
	s.Equal(models.InvoiceStatusDraft, invoice.Status)
}
