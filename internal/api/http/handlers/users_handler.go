package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/repository"
	"github.com/trimkart/task-tracker/internal/service"
)

// UsersHandler exposes the user directory.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directoryService *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directoryService}
}

// List handles GET /users with optional role and department_id filters.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Role:         c.Query("role"),
		DepartmentID: c.Query("department_id"),
	}
	users, err := h.directory.ListUsers(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(users)
}
