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

// TaskHandler handles HTTP requests for tasks and time entries
type TaskHandler struct {
	taskService *services.Task
}

// NewTaskHandler creates a new instance of TaskHandler
func NewTaskHandler(taskService *services.Task) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest is the request body for creating or updating a task
type CreateTaskRequest struct {
	Description  string           `json:"description"`
	OverrideRate *decimal.Decimal `json:"override_rate"`
	TaskFee      *decimal.Decimal `json:"task_fee"`
	Quantity     int              `json:"quantity"`
	QuantityIsNA bool             `json:"quantity_is_na"`
}

// CreateTask handles adding a task to a project
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgTaskDescRequired))
	}

	task := models.Task{
		OwnerID:      middleware.OwnerID(c),
		ProjectID:    projectID,
		Description:  req.Description,
		OverrideRate: req.OverrideRate,
		TaskFee:      req.TaskFee,
		Quantity:     req.Quantity,
		QuantityIsNA: req.QuantityIsNA,
	}

	err = h.taskService.Create(c.Context(), &task)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgProjNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgTaskCreateFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(task))
}

// ListTasks handles retrieving all tasks for a project
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	tasks, err := h.taskService.ListByProject(c.Context(), middleware.OwnerID(c), projectID, listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgTaskListFailed))
	}
	return c.JSON(types.Success(map[string]interface{}{
		"tasks": tasks,
		"pagination": PaginationResponse{
			Total:  len(tasks),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// UpdateTask handles updating a task's description and billing fields
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}

	ownerID := middleware.OwnerID(c)
	task, err := h.taskService.Get(c.Context(), ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgTaskNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	if req.Description != "" {
		task.Description = req.Description
	}
	if req.OverrideRate != nil {
		task.OverrideRate = req.OverrideRate
	}
	if req.TaskFee != nil {
		task.TaskFee = req.TaskFee
	}
	if req.Quantity > 0 {
		task.Quantity = req.Quantity
	}
	task.QuantityIsNA = req.QuantityIsNA

	if err := h.taskService.Update(c.Context(), ownerID, task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgTaskUpdateFailed))
	}
	return c.JSON(types.Success(task))
}

// ToggleTask handles flipping a task's completion flag
func (h *TaskHandler) ToggleTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	completed, err := h.taskService.ToggleCompleted(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgTaskNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgTaskUpdateFailed))
	}
	return c.JSON(types.Success(map[string]interface{}{"is_completed": completed}))
}

// DeleteTask handles deleting a task by ID
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.taskService.Delete(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgTaskNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgTaskDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogTimeRequest is the request body for logging time against a task
type LogTimeRequest struct {
	HoursWorked float64 `json:"hours_worked"`
	EntryDate   string  `json:"entry_date"` // YYYY-MM-DD, defaults to today
}

// LogTime handles recording hours worked against a task
func (h *TaskHandler) LogTime(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req LogTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.HoursWorked <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgHoursRequired))
	}

	entry := models.TimeEntry{HoursWorked: req.HoursWorked}
	if req.EntryDate != "" {
		date, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid entry date, expected YYYY-MM-DD"))
		}
		entry.EntryDate = date
	}

	total, err := h.taskService.LogTime(c.Context(), middleware.OwnerID(c), id, &entry)
	if errors.Is(err, services.ErrNotHourlyProject) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgHourlyOnly))
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgTaskNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(map[string]interface{}{
		"entry":       entry,
		"total_hours": total,
	}))
}

// QuickLogTime handles recording a quarter hour against a task
func (h *TaskHandler) QuickLogTime(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	total, err := h.taskService.QuickLogTime(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, services.ErrNotHourlyProject) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgHourlyOnly))
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgTaskNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(map[string]interface{}{"total_hours": total}))
}

// DeleteTimeEntry handles deleting a time entry by ID
func (h *TaskHandler) DeleteTimeEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.taskService.DeleteTimeEntry(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgEntryNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
