package dto

import "time"

// TaskUpdateRequest is a progress entry supplied by a caller. CreatedAt is
// optional; the handler path defaults it to the current UTC time when absent.
type TaskUpdateRequest struct {
	UserID    string     `json:"user_id" validate:"required"`
	Note      string     `json:"note"`
	Progress  *int       `json:"progress" validate:"omitempty,min=0,max=100"`
	CreatedAt *time.Time `json:"created_at"`
}

// CreateTaskRequest payload.
type CreateTaskRequest struct {
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description"`
	AssignedTo   string              `json:"assigned_to" validate:"required"`
	AssignedBy   string              `json:"assigned_by" validate:"required"`
	DepartmentID string              `json:"department_id"`
	Status       string              `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	DueDate      *time.Time          `json:"due_date"`
	Progress     int                 `json:"progress" validate:"min=0,max=100"`
	Updates      []TaskUpdateRequest `json:"updates" validate:"omitempty,dive"`
}

// SetStatusRequest is the body fallback for the status endpoint; the query
// parameter takes precedence.
type SetStatusRequest struct {
	Status string `json:"status"`
}
