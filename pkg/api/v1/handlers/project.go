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

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService *services.Project
}

// NewProjectHandler creates a new instance of ProjectHandler
func NewProjectHandler(projectService *services.Project) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
	Deadline      string          `json:"deadline"` // YYYY-MM-DD
	ClientID      uint            `json:"client_id"`
	BillingType   string          `json:"billing_type"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	FlatFeeAmount decimal.Decimal `json:"flat_fee_amount"`
}

// CreateProject handles the creation of a new project
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgProjTitleRequired))
	}

	billingType, err := models.ParseBillingType(req.BillingType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgProjBillingInvalid))
	}

	project := models.Project{
		OwnerID:       middleware.OwnerID(c),
		ClientID:      req.ClientID,
		Title:         req.Title,
		Description:   req.Description,
		Notes:         req.Notes,
		BillingType:   billingType,
		HourlyRate:    req.HourlyRate,
		FlatFeeAmount: req.FlatFeeAmount,
	}
	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid deadline format, expected YYYY-MM-DD"))
		}
		project.Deadline = &deadline
	}

	if err := h.projectService.Create(c.Context(), &project); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgProjCreateFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(project))
}

// GetProject handles retrieving a project with its tasks
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	project, err := h.projectService.GetWithTasks(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgProjNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(project))
}

// ListProjects handles retrieving all projects with pagination
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	projects, err := h.projectService.List(c.Context(), middleware.OwnerID(c), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgProjListFailed))
	}

	return c.JSON(types.Success(map[string]interface{}{
		"projects": projects,
		"pagination": PaginationResponse{
			Total:  len(projects),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// UpdateProjectRequest is the request body for updating project details
type UpdateProjectRequest struct {
	Title string `json:"title"`
	Notes *string `json:"notes"`
}

// UpdateProject handles renaming a project and saving its notes
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Title == "" && req.Notes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgProjTitleRequired))
	}

	ownerID := middleware.OwnerID(c)
	if req.Title != "" {
		if err := h.projectService.UpdateTitle(c.Context(), ownerID, id, req.Title); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgProjUpdateFailed))
		}
	}
	if req.Notes != nil {
		if err := h.projectService.SaveNotes(c.Context(), ownerID, id, *req.Notes); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgProjUpdateFailed))
		}
	}
	return c.JSON(types.Success(nil))
}

// DeleteProject handles deleting a project by ID
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.projectService.Delete(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgProjNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgProjDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
