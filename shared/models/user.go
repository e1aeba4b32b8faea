// shared/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin roles.
const (
	RoleRoot  = "root"
	RoleSuper = "super"
)

// User is a regular account that can read teams, fixtures and search.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"` // unique, stored lowercased
	Password  string             `bson:"password" json:"-"`  // bcrypt hash
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Admin is a privileged account that manages teams and fixtures.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"` // "root" or "super"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
