// models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog records who did what, written best-effort on mutating
// operations and surfaced on the admin activity and audit views.
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	UserName  string             `bson:"userName" json:"userName"`
	Action    string             `bson:"action" json:"action"`
	Details   string             `bson:"details,omitempty" json:"details,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
