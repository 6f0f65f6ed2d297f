package risk

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
)

func TestStatusFromAlerts(t *testing.T) {
	tests := []struct {
		name       string
		levels     []string
		wantStatus string
	}{
		{"no alerts", nil, StatusOnTrack},
		{"info only never changes status", []string{"Info", "Info"}, StatusOnTrack},
		{"warning", []string{"Warning"}, StatusAtRisk},
		{"critical beats warning", []string{"Warning", "Critical"}, StatusDelayed},
		{"delayed level maps to delayed", []string{"Delayed"}, StatusDelayed},
		{"case insensitive", []string{"critical"}, StatusDelayed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := make([]AlertView, 0, len(tt.levels))
			for _, l := range tt.levels {
				alerts = append(alerts, AlertView{Level: l, Message: "m"})
			}
			got, _ := StatusFromAlerts(alerts)
			if got != tt.wantStatus {
				t.Fatalf("StatusFromAlerts(%v) = %q, want %q", tt.levels, got, tt.wantStatus)
			}
		})
	}
}

func TestStatusFromAlertsReasons(t *testing.T) {
	alerts := []AlertView{
		{Level: "Critical", Message: "missed deadline"},
		{Level: "Info", Message: "welcome aboard"},
		{Level: "Warning", Message: "low completion"},
	}

	_, reasons := StatusFromAlerts(alerts)
	if len(reasons) != 2 {
		t.Fatalf("reasons = %v, want 2 entries (info excluded)", reasons)
	}
	for _, r := range reasons {
		if r == "welcome aboard" {
			t.Fatalf("info alert message leaked into reasons: %v", reasons)
		}
	}
}

func TestSyntheticOverdueAlerts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)
	user := primitive.NewObjectID()

	tasks := []models.Task{
		{ID: primitive.NewObjectID(), Title: "Sign NDA", Status: models.TaskPending, DueDate: &past, AssignedTo: user},
		{ID: primitive.NewObjectID(), Title: "Watch intro", Status: models.TaskCompleted, DueDate: &past, AssignedTo: user},
		{ID: primitive.NewObjectID(), Title: "Setup laptop", Status: models.TaskPending, DueDate: &future, AssignedTo: user},
	}
	names := map[primitive.ObjectID]string{user: "Asha"}

	got := SyntheticOverdueAlerts(tasks, names, now)
	if len(got) != 1 {
		t.Fatalf("SyntheticOverdueAlerts() = %d alerts, want 1", len(got))
	}

	a := got[0]
	if a.Level != models.AlertCritical {
		t.Errorf("Level = %q, want %q", a.Level, models.AlertCritical)
	}
	if !a.Synthetic {
		t.Error("Synthetic = false, want true")
	}
	if !strings.HasPrefix(a.ID, "overdue_") {
		t.Errorf("ID = %q, want overdue_ prefix", a.ID)
	}
	if a.TargetUserID != user {
		t.Errorf("TargetUserID = %v, want %v", a.TargetUserID, user)
	}
	if !strings.Contains(a.Message, "Asha") || !strings.Contains(a.Message, "Sign NDA") {
		t.Errorf("Message = %q, want employee name and task title", a.Message)
	}
}

func TestScoreForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{StatusOnTrack, 10},
		{StatusAtRisk, 50},
		{StatusDelayed, 90},
	}
	for _, tt := range tests {
		if got := ScoreForStatus(tt.status); got != tt.want {
			t.Errorf("ScoreForStatus(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}
