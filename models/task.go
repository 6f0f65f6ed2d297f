// models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses
const (
	TaskNotStarted = "Not Started"
	TaskPending    = "Pending"
	TaskCompleted  = "Completed"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	TaskType    string             `bson:"taskType,omitempty" json:"taskType,omitempty"` // Form, Video, Document
	AssignedTo  primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOverdue reports whether a Pending task is past its due date. Tasks the
// employee never picked up stay "Not Started" and do not count as missed.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status != TaskPending {
		return false
	}
	return t.DueDate.Before(now)
}
