package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService *services.User
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *services.User) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// CreateUser handles the creation of a new user
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgUsernameRequired))
	}
	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
	}
	id, err := h.userService.Create(c.Context(), &user)
	if errors.Is(err, repos.ErrUsernameTaken) {
		return c.Status(fiber.StatusConflict).JSON(types.ErrInvalidInput(err.Error()))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgUserCreateFailed))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(map[string]interface{}{"id": id}))
}

// GetUser handles retrieving a user by ID or username
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	if username := c.Query("username"); username != "" {
		user, err := h.userService.GetByUsername(c.Context(), username)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgUserNotFound))
		} else if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
		}
		return c.JSON(types.Success(user))
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}
	user, err := h.userService.GetByID(c.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgUserNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(user))
}

// ListUsers handles retrieving all users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page, c.QueryBool("include_deleted"))

	users, err := h.userService.List(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgUserListFailed))
	}
	return c.JSON(types.Success(map[string]interface{}{
		"users": users,
		"pagination": PaginationResponse{
			Total:  len(users),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// DeleteUser handles deleting a user by ID
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidID))
	}

	err = h.userService.Delete(c.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgUserNotFound))
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgUserDeleteFailed))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
