package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/api/dto"
	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/repository"
	"github.com/trimkart/task-tracker/internal/service"
	"github.com/trimkart/task-tracker/internal/validation"
	"github.com/trimkart/task-tracker/pkg/util"
)

// TasksHandler manages task endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// Create handles POST /tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	id, err := h.tasks.Create(c.UserContext(), service.TaskCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		AssignedTo:   req.AssignedTo,
		AssignedBy:   req.AssignedBy,
		DepartmentID: req.DepartmentID,
		Status:       req.Status,
		DueDate:      req.DueDate,
		Progress:     req.Progress,
		Updates:      toUpdateEntries(req.Updates),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
}

// List handles GET /tasks with optional status, assigned_to and department_id
// filters.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	filter := repository.TaskFilter{
		Status:       c.Query("status"),
		AssignedTo:   c.Query("assigned_to"),
		DepartmentID: c.Query("department_id"),
	}
	tasks, err := h.tasks.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// AddUpdate handles POST /tasks/:id/update.
func (h *TasksHandler) AddUpdate(c *fiber.Ctx) error {
	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	entry := domain.TaskUpdateEntry{
		UserID:   req.UserID,
		Note:     req.Note,
		Progress: req.Progress,
	}
	if req.CreatedAt != nil {
		entry.CreatedAt = req.CreatedAt.UTC()
	}

	if err := h.tasks.AddUpdate(c.UserContext(), c.Params("id"), entry); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Update added"})
}

// SetStatus handles POST /tasks/:id/status. The status comes from the query
// string, with a JSON body fallback.
func (h *TasksHandler) SetStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "" {
		var req dto.SetStatusRequest
		if err := c.BodyParser(&req); err == nil {
			status = req.Status
		}
	}

	if err := h.tasks.SetStatus(c.UserContext(), c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

func toUpdateEntries(reqs []dto.TaskUpdateRequest) []domain.TaskUpdateEntry {
	if len(reqs) == 0 {
		return nil
	}
	entries := make([]domain.TaskUpdateEntry, 0, len(reqs))
	for _, r := range reqs {
		entry := domain.TaskUpdateEntry{
			UserID:   r.UserID,
			Note:     r.Note,
			Progress: r.Progress,
		}
		// entries embedded at creation keep whatever the caller sent;
		// only the dedicated update endpoint defaults a missing created_at
		if r.CreatedAt != nil {
			entry.CreatedAt = r.CreatedAt.UTC()
		}
		entries = append(entries, entry)
	}
	return entries
}
