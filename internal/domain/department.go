package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department represents a high-level organizational unit. ManagerUserID is a
// stored reference and is not checked against the user collection.
type Department struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ManagerUserID string             `bson:"manager_user_id,omitempty" json:"manager_user_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
