package handlers

import (
	"errors"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
)

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	expenseService *services.Expense
}

// NewExpenseHandler creates a new instance of ExpenseHandler
func NewExpenseHandler(expenseService *services.Expense) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest is the request body for recording an expense
type CreateExpenseRequest struct {
	ProjectID   uint            `json:"project_id"`
	CategoryID  uint            `json:"category_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD, defaults to today
}

// CreateExpense handles recording a new expense
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Description == "" || req.ProjectID == 0 || req.CategoryID == 0 || req.Amount.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgExpenseFieldsRequired))
	}

	expense := models.Expense{
		OwnerID:     middleware.OwnerID(c),
		ProjectID:   req.ProjectID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid date, expected YYYY-MM-DD"))
		}
		expense.Date = date
	}

	if err := h.expenseService.Create(c.Context(), &expense); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgExpenseCreateFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(expense))
}

// ListExpenses handles retrieving all expenses for the caller
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	expenses, err := h.expenseService.List(c.Context(), middleware.OwnerID(c), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgExpenseListFailed))
	}
	return c.JSON(types.Success(map[string]interface{}{
		"expenses": expenses,
		"pagination": PaginationResponse{
			Total:  len(expenses),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// ListExpenseCategories handles retrieving the expense categories, seeding
// the defaults on first use
func (h *ExpenseHandler) ListExpenseCategories(c *fiber.Ctx) error {
	categories, err := h.expenseService.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgExpenseListFailed))
	}
	return c.JSON(types.Success(categories))
}

// DeleteExpense handles deleting an expense by ID
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.expenseService.Delete(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgExpenseNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgExpenseDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
