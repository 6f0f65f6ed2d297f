// models/progress.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress is one row per (user, task) pair and the single authoritative
// input for per-employee metrics.
type Progress struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	TaskID      primitive.ObjectID `bson:"taskId" json:"taskId"`
	Completion  int                `bson:"completion" json:"completion"` // 0-100
	DelayDays   int                `bson:"delayDays" json:"delayDays"`
	TimeSpent   int                `bson:"timeSpent" json:"timeSpent"` // minutes
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
