package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/api/dto"
	"github.com/trimkart/task-tracker/internal/service"
	"github.com/trimkart/task-tracker/internal/validation"
	"github.com/trimkart/task-tracker/pkg/util"
)

// DepartmentsHandler manages department endpoints.
type DepartmentsHandler struct {
	directory *service.DirectoryService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(directoryService *service.DirectoryService) *DepartmentsHandler {
	return &DepartmentsHandler{directory: directoryService}
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	id, err := h.directory.CreateDepartment(c.UserContext(), service.DepartmentCreateInput{
		Name:          req.Name,
		Description:   req.Description,
		ManagerUserID: req.ManagerUserID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	departments, err := h.directory.ListDepartments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(departments)
}
