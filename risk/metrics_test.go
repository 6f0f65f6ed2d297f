package risk

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
)

func progressRow(completion, delayDays, timeSpent int) models.Progress {
	return models.Progress{
		ID:         primitive.NewObjectID(),
		Completion: completion,
		DelayDays:  delayDays,
		TimeSpent:  timeSpent,
	}
}

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rows []models.Progress
		want Metrics
	}{
		{
			name: "zero rows produce zero metrics",
			rows: nil,
			want: Metrics{},
		},
		{
			name: "single complete row",
			rows: []models.Progress{progressRow(100, 0, 120)},
			want: Metrics{AvgCompletion: 100, TasksCompleted: 1, TotalTimeSpent: 120},
		},
		{
			name: "late row counts as missed deadline",
			rows: []models.Progress{progressRow(100, 3, 60)},
			want: Metrics{AvgCompletion: 100, TotalDelayDays: 3, TasksCompleted: 1, MissedDeadlines: 1, TotalTimeSpent: 60},
		},
		{
			name: "mixed rows average",
			rows: []models.Progress{
				progressRow(100, 0, 30),
				progressRow(50, 2, 45),
				progressRow(0, 0, 0),
			},
			want: Metrics{AvgCompletion: 50, TotalDelayDays: 2, TasksCompleted: 1, MissedDeadlines: 1, TotalTimeSpent: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMetrics(tt.rows, nil, now)
			if err != nil {
				t.Fatalf("ComputeMetrics() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeMetrics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeMetricsOverdueOpenTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -2)
	future := now.AddDate(0, 0, 2)

	tasks := []models.Task{
		{Status: models.TaskPending, DueDate: &past},
		{Status: models.TaskCompleted, DueDate: &past},
		{Status: models.TaskNotStarted, DueDate: &past},
		{Status: models.TaskPending, DueDate: &future},
		{Status: models.TaskPending},
	}

	got, err := ComputeMetrics([]models.Progress{progressRow(60, 0, 10)}, tasks, now)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}
	if got.MissedDeadlines != 1 {
		t.Fatalf("MissedDeadlines = %d, want 1 (only the overdue pending task)", got.MissedDeadlines)
	}
}

func TestComputeMetricsRejectsBadRows(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		row  models.Progress
	}{
		{"completion above 100", progressRow(150, 0, 0)},
		{"negative completion", progressRow(-5, 0, 0)},
		{"negative delay", progressRow(50, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeMetrics([]models.Progress{tt.row}, nil, now); err == nil {
				t.Fatalf("ComputeMetrics() accepted invalid row %+v", tt.row)
			}
		})
	}
}
