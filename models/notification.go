// models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeNotification is a targeted message shown on the employee's own
// dashboard (reminders, task warnings).
type EmployeeNotification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Message       string             `bson:"message" json:"message"`
	Type          string             `bson:"type" json:"type"` // info, warning, critical
	RelatedTaskID primitive.ObjectID `bson:"relatedTaskId,omitempty" json:"relatedTaskId,omitempty"`
	IsRead        bool               `bson:"isRead" json:"isRead"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// TaskMessage is the per-task message thread entry written alongside
// task-related notifications.
type TaskMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	TaskID    primitive.ObjectID `bson:"taskId" json:"taskId"`
	Sender    string             `bson:"sender" json:"sender"` // HR or System
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
