package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies a user within the organizational hierarchy. No permission
// logic is attached to roles; they are descriptive and filterable only.
type Role string

const (
	RoleMD       Role = "MD"
	RoleCEO      Role = "CEO"
	RoleCOO      Role = "COO"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleMD, RoleCEO, RoleCOO, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User is the domain model for organization members. PasswordHash is persisted
// but never serialized into responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	DepartmentID string             `bson:"department_id,omitempty" json:"department_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
