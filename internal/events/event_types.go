package events

import (
	"time"

	"github.com/trimkart/task-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventDepartmentCreated EventType = "department_created"
	EventTaskCreated       EventType = "task_created"
	EventTaskUpdateAdded   EventType = "task_update_added"
	EventTaskStatusChanged EventType = "task_status_changed"
)

// Event represents a domain event emitted by services after successful writes.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Role         domain.Role `json:"role"`
	DepartmentID string      `json:"department_id,omitempty"`
}

// DepartmentCreatedPayload payload.
type DepartmentCreatedPayload struct {
	Name string `json:"name"`
}

// TaskCreatedPayload payload.
type TaskCreatedPayload struct {
	Title        string            `json:"title"`
	AssignedTo   string            `json:"assigned_to"`
	AssignedBy   string            `json:"assigned_by"`
	DepartmentID string            `json:"department_id,omitempty"`
	Status       domain.TaskStatus `json:"status"`
}

// TaskUpdateAddedPayload payload.
type TaskUpdateAddedPayload struct {
	UserID   string `json:"user_id"`
	Progress *int   `json:"progress,omitempty"`
}

// TaskStatusChangedPayload payload.
type TaskStatusChangedPayload struct {
	NewStatus domain.TaskStatus `json:"new_status"`
}
