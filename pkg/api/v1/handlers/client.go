package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	clientService *services.Client
}

// NewClientHandler creates a new instance of ClientHandler
func NewClientHandler(clientService *services.Client) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest is the request body for creating a client
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateClient handles the creation of a new client
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgClientNameRequired))
	}
	client := models.Client{
		OwnerID: middleware.OwnerID(c),
		Name:    req.Name,
		Email:   req.Email,
	}

	if err := h.clientService.Create(c.Context(), &client); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgClientCreateFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(client))
}

// GetClient handles retrieving a client by ID
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	client, err := h.clientService.Get(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgClientNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(client))
}

// ListClients handles retrieving all clients with pagination
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	clients, err := h.clientService.List(c.Context(), middleware.OwnerID(c), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgClientListFailed))
	}

	return c.JSON(types.Success(map[string]interface{}{
		"clients": clients,
		"pagination": PaginationResponse{
			Total:  len(clients),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// DeleteClient handles deleting a client by ID
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.clientService.Delete(c.Context(), middleware.OwnerID(c), id)
	if errors.Is(err, repos.ErrClientHasProjects) {
		return c.Status(fiber.StatusConflict).JSON(types.ErrInvalidInput(ErrMsgClientHasProjects))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgClientDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
