package models

import (
	"testing"
	"time"
)

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{Status: TaskPending}, false},
		{"pending and past due", Task{Status: TaskPending, DueDate: &past}, true},
		{"not started and past due", Task{Status: TaskNotStarted, DueDate: &past}, false},
		{"completed and past due", Task{Status: TaskCompleted, DueDate: &past}, false},
		{"pending and not yet due", Task{Status: TaskPending, DueDate: &future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Fatalf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserIsOnboarding(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleEmployee, true},
		{RoleIntern, true},
		{RoleHR, false},
		{RoleAdmin, false},
	}

	for _, tt := range tests {
		u := User{Role: tt.role}
		if got := u.IsOnboarding(); got != tt.want {
			t.Errorf("IsOnboarding() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}
