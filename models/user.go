// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
	RoleIntern   = "intern"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	JoinedDate   time.Time          `bson:"joinedDate" json:"joinedDate"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`

	// Cached last-known classification, refreshed on task completion.
	// Advisory only: the live aggregation never reads these fields.
	Risk       string `bson:"risk,omitempty" json:"risk,omitempty"`
	RiskReason string `bson:"riskReason,omitempty" json:"riskReason,omitempty"`
}

// IsOnboarding reports whether the user is tracked by the risk pipeline.
func (u *User) IsOnboarding() bool {
	return u.Role == RoleEmployee || u.Role == RoleIntern
}
