package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is a user's stored capability. Roles are flat strings compared for
// exact equality; an admin does not implicitly satisfy a moderator check.
type Role string

const (
	RoleNone      Role = ""
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// User represents a registered account. Email is the primary lookup key and
// carries a unique index; users are never deleted.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty"       json:"_id,omitempty"`
	Name      string        `bson:"name"                json:"name"`
	Email     string        `bson:"email"               json:"email"`
	PhotoURL  string        `bson:"photoURL,omitempty"  json:"photoURL,omitempty"`
	Role      Role          `bson:"role,omitempty"      json:"role,omitempty"`
	CreatedAt time.Time     `bson:"created_at"          json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"          json:"updated_at"`
}
