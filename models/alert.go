// models/alert.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert severity levels
const (
	AlertInfo     = "Info"
	AlertWarning  = "Warning"
	AlertCritical = "Critical"
	AlertDelayed  = "Delayed"
)

// Alert is a persisted HR/system event. Overdue-task alerts are never
// stored; they are synthesized at read time from the tasks collection.
type Alert struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         string             `bson:"type" json:"type"` // Info, Warning, Critical, Delayed
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Message      string             `bson:"message" json:"message"`
	TargetUserID primitive.ObjectID `bson:"targetUserId,omitempty" json:"targetUserId,omitempty"`
	Sender       string             `bson:"sender" json:"sender"` // System or HR name
	IsRead       bool               `bson:"isRead" json:"isRead"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
