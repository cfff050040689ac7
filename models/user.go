package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system. Role is "admin" for
// administrators and empty for ordinary users.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
