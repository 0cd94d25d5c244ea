package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/types"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func (s *HandlerSuite) TestGenerateInvoiceEndpoint() {
	project := s.createProject(models.BillingTypeHourly)
	s.createBilledTask(project.ID, "Build homepage", 2)

	status, envelope := s.request(http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%d/invoices/generate", project.ID), nil, testOwnerID)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(types.SuccessSlug, envelope.Slug)

	var invoice models.Invoice
	s.decodeData(envelope, &invoice)
	s.Equal("INV-0001", invoice.InvoiceNumber)
	s.Equal(models.InvoiceStatusDraft, invoice.Status)
	s.Require().Len(invoice.LineItems, 1)
	s.True(invoice.TotalAmount().Equal(decimal.RequireFromString("200")))
}

func (s *HandlerSuite) TestGenerateInvoiceNothingToBill() {
	project := s.createProject(models.BillingTypeHourly)

	status, envelope := s.request(http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%d/invoices/generate", project.ID), nil, testOwnerID)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal(types.NothingToBillSlug, envelope.Slug)
	s.Equal(handlers.ErrMsgNothingToBill, envelope.Error)
}

func (s *HandlerSuite) TestGenerateInvoiceUnknownProject() {
	status, envelope := s.request(http.MethodPost,
		"/api/v1/projects/9999/invoices/generate", nil, testOwnerID)
	s.Equal(http.StatusNotFound, status)
	s.Equal(types.NotFoundSlug, envelope.Slug)
}

func (s *HandlerSuite) TestGenerateInvoiceScopedToOwner() {
	project := s.createProject(models.BillingTypeHourly)
	s.createBilledTask(project.ID, "Build homepage", 2)

	status, envelope := s.request(http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%d/invoices/generate", project.ID), nil, testOwnerID+1)
	s.Equal(http.StatusNotFound, status)
	s.Equal(types.NotFoundSlug, envelope.Slug)
}

func (s *HandlerSuite) TestMissingOwnerHeaderIsRejected() {
	status, envelope := s.request(http.MethodGet, "/api/v1/projects", nil, 0)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal(types.InvalidInputSlug, envelope.Slug)
}

func (s *HandlerSuite) TestHealthEndpointNeedsNoAuth() {
	status, _ := s.request(http.MethodGet, "/health", nil, 0)
	s.Equal(http.StatusOK, status)
}

func (s *HandlerSuite) TestAddLineItemRejectedOffDrafts() {
	project := s.createProject(models.BillingTypeHourly)
	s.createBilledTask(project.ID, "Build homepage", 2)

	status, envelope := s.request(http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%d/invoices/generate", project.ID), nil, testOwnerID)
	s.Require().Equal(http.StatusCreated, status)

	var invoice models.Invoice
	s.decodeData(envelope, &invoice)

	status, _ = s.request(http.MethodPut,
		fmt.Sprintf("/api/v1/invoices/%d", invoice.ID),
		handlers.UpdateInvoiceRequest{Status: string(models.InvoiceStatusSent)}, testOwnerID)
	s.Require().Equal(http.StatusOK, status)

	status, envelope = s.request(http.MethodPost,
		fmt.Sprintf("/api/v1/invoices/%d/line-items", invoice.ID),
		handlers.AddLineItemRequest{
			Description: "Rush fee",
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("50.00"),
		}, testOwnerID)
	s.Equal(http.StatusConflict, status)
	s.Equal(types.InvalidInputSlug, envelope.Slug)
}
