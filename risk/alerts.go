// risk/alerts.go
package risk

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
)

// Risk statuses (alert-precedence path). This is the authoritative status
// shown by every dashboard, report and export.
const (
	StatusOnTrack     = "On Track"
	StatusAtRisk      = "At Risk"
	StatusDelayed     = "Delayed"
	StatusUnavailable = "Unavailable"
)

// AlertView is the unified read model over persisted alerts and
// dynamically-synthesized overdue-task alerts. Synthetic alerts are a pure
// derived view of the tasks collection and are never stored.
type AlertView struct {
	ID           string             `json:"id"`
	Level        string             `json:"level"`
	Title        string             `json:"title,omitempty"`
	Message      string             `json:"message"`
	TargetUserID primitive.ObjectID `json:"targetUserId,omitempty"`
	Sender       string             `json:"sender,omitempty"`
	Synthetic    bool               `json:"synthetic,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ViewFromAlert converts a persisted alert.
func ViewFromAlert(a models.Alert) AlertView {
	return AlertView{
		ID:           a.ID.Hex(),
		Level:        a.Type,
		Title:        a.Title,
		Message:      a.Message,
		TargetUserID: a.TargetUserID,
		Sender:       a.Sender,
		CreatedAt:    a.CreatedAt,
	}
}

// SyntheticOverdueAlerts generates one Critical alert per open task whose
// due date has passed. names maps user ids to display names for messages.
func SyntheticOverdueAlerts(tasks []models.Task, names map[primitive.ObjectID]string, now time.Time) []AlertView {
	var views []AlertView
	for _, t := range tasks {
		if !t.IsOverdue(now) {
			continue
		}
		name := names[t.AssignedTo]
		if name == "" {
			name = "Unknown"
		}
		views = append(views, AlertView{
			ID:           "overdue_" + t.ID.Hex(),
			Level:        models.AlertCritical,
			Title:        "Missed Deadline",
			Message:      fmt.Sprintf("Employee %s missed deadline for: %s.", name, t.Title),
			TargetUserID: t.AssignedTo,
			Sender:       "System",
			Synthetic:    true,
			CreatedAt:    now,
		})
	}
	return views
}

// StatusFromAlerts applies the strict precedence rule over the alerts
// targeting one employee: Critical/Delayed beats Warning beats nothing.
// Info-level alerts never affect status. Reasons collect the messages of
// the alerts that contributed.
func StatusFromAlerts(alerts []AlertView) (string, []string) {
	status := StatusOnTrack
	var reasons []string
	hasCritical := false
	hasWarning := false

	for _, a := range alerts {
		switch strings.ToLower(a.Level) {
		case "critical", "delayed":
			hasCritical = true
			reasons = append(reasons, a.Message)
		case "warning":
			hasWarning = true
			reasons = append(reasons, a.Message)
		}
	}

	if hasCritical {
		status = StatusDelayed
	} else if hasWarning {
		status = StatusAtRisk
	}
	return status, reasons
}

// ScoreForStatus maps a risk status to the numeric score used by the trend
// chart and department heatmap.
func ScoreForStatus(status string) int {
	switch status {
	case StatusAtRisk:
		return 50
	case StatusDelayed:
		return 90
	default:
		return 10
	}
}
