// models/template.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OnboardingTemplate is a named ordered list of task blueprints. Assigning
// it to an employee materializes one Task per blueprint with the due date
// offset by DueDays from the assignment time.
type OnboardingTemplate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Tasks     []TemplateTask     `bson:"tasks" json:"tasks"`
}

type TemplateTask struct {
	TaskName    string `bson:"taskName" json:"taskName"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	DueDays     int    `bson:"dueDays" json:"dueDays"` // days after assignment
	TaskType    string `bson:"taskType" json:"taskType"`
}
