package handlers

import (
	"errors"
	"fmt"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/billing"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/logger"
	"github.com/solobooks/solobooks/internal/pdf"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
)

// InvoiceHandler handles HTTP requests for invoices
type InvoiceHandler struct {
	invoiceService *services.Invoice
	projectService *services.Project
	clientService  *services.Client
}

// NewInvoiceHandler creates a new instance of InvoiceHandler
func NewInvoiceHandler(invoiceService *services.Invoice, projectService *services.Project, clientService *services.Client) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		projectService: projectService,
		clientService:  clientService,
	}
}

// GenerateInvoice handles generating an invoice from a project's completed,
// unbilled tasks
func (h *InvoiceHandler) GenerateInvoice(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	invoice, err := h.invoiceService.Generate(c.Context(), middleware.OwnerID(c), projectID)
	switch {
	case errors.Is(err, billing.ErrNothingToBill):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.NothingToBill(ErrMsgNothingToBill))
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgProjNotFound))
	case err != nil:
		logger.ErrorWithFields("invoice generation failed", map[string]interface{}{
			"project_id": projectID,
			"error":      err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgGenerationFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(invoice))
}

// CreateInvoice handles creating an empty invoice shell for a project
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	invoice, err := h.invoiceService.Create(c.Context(), middleware.OwnerID(c), projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgProjNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgGenerationFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(invoice))
}

// GetInvoice handles retrieving an invoice by ID with its line items
func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	invoice, err := h.invoiceService.Get(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgInvoiceNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(invoice))
}

// ListInvoices handles retrieving all invoices for the caller
func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	invoices, err := h.invoiceService.List(c.Context(), middleware.OwnerID(c), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgInvoiceListFailed))
	}
	return c.JSON(types.Success(map[string]interface{}{
		"invoices": invoices,
		"pagination": PaginationResponse{
			Total:  len(invoices),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// AddLineItemRequest is the request body for appending a line item to a
// draft invoice
type AddLineItemRequest struct {
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// AddLineItem handles appending a manually entered line item to a draft
// invoice
func (h *InvoiceHandler) AddLineItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req AddLineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Description == "" || req.UnitPrice.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgLineItemDescRequired))
	}

	item := models.LineItem{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}
	err = h.invoiceService.AddLineItem(c.Context(), middleware.OwnerID(c), id, &item)
	switch {
	case errors.Is(err, services.ErrInvoiceNotDraft):
		return c.Status(fiber.StatusConflict).JSON(types.ErrInvalidInput(ErrMsgInvoiceNotDraft))
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgInvoiceNotFound))
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(item))
}

// UpdateInvoiceRequest is the request body for updating an invoice's status
type UpdateInvoiceRequest struct {
	Status  string `json:"status"`
	DueDate string `json:"due_date"` // YYYY-MM-DD
}

// UpdateInvoice handles updating an invoice's status and due date
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	status, err := models.ParseInvoiceStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvoiceStatusInvalid))
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid due date, expected YYYY-MM-DD"))
		}
		dueDate = &parsed
	}

	err = h.invoiceService.UpdateStatus(c.Context(), middleware.OwnerID(c), id, status, dueDate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgInvoiceNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.SendStatus(fiber.StatusOK)
}

// DeleteInvoice handles deleting an invoice and returning its billed tasks
// to the billable pool
func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.invoiceService.Delete(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgInvoiceNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgInvoiceDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadInvoicePDF handles rendering an invoice as a PDF attachment
func (h *InvoiceHandler) DownloadInvoicePDF(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}
	ownerID := middleware.OwnerID(c)

	invoice, err := h.invoiceService.Get(c.Context(), ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgInvoiceNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	project, err := h.projectService.Get(c.Context(), ownerID, invoice.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgPDFFailed))
	}
	client, err := h.clientService.Get(c.Context(), ownerID, project.ClientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgPDFFailed))
	}

	doc, err := pdf.RenderInvoice(invoice, project, client)
	if err != nil {
		logger.ErrorWithFields("invoice PDF rendering failed", map[string]interface{}{
			"invoice_number": invoice.InvoiceNumber,
			"error":          err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgPDFFailed))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceNumber))
	return c.Send(doc)
}
