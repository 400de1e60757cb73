package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus enumerates lifecycle states for tasks.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether the status is a member of the closed set.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is the aggregate for work assigned between users. AssignedTo/AssignedBy
// and DepartmentID are stored references, never validated for existence. The
// Updates sequence is append-only; entries are never reordered or removed.
type Task struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	AssignedTo   string             `bson:"assigned_to" json:"assigned_to"`
	AssignedBy   string             `bson:"assigned_by" json:"assigned_by"`
	DepartmentID string             `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Status       TaskStatus         `bson:"status" json:"status"`
	DueDate      *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Progress     int                `bson:"progress" json:"progress"`
	Updates      []TaskUpdateEntry  `bson:"updates" json:"updates"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// TaskUpdateEntry is an embedded progress note on a task. Its Progress is a
// point-in-time report and is deliberately not propagated to Task.Progress.
type TaskUpdateEntry struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	Progress  *int      `bson:"progress,omitempty" json:"progress,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
