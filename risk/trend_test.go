package risk

import (
	"testing"
	"time"
)

func snapshotWithStatuses(statuses ...string) *Snapshot {
	s := &Snapshot{TakenAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	for _, st := range statuses {
		s.Employees = append(s.Employees, EmployeeRisk{Status: st})
	}
	return s
}

func TestCurrentRiskScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"empty fleet", nil, 0},
		{"all on track", []string{StatusOnTrack, StatusOnTrack}, 10},
		{"mixed", []string{StatusOnTrack, StatusDelayed}, 50},
		{"unavailable skipped", []string{StatusDelayed, StatusUnavailable}, 90},
		{"only unavailable", []string{StatusUnavailable}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snapshotWithStatuses(tt.statuses...)
			if got := s.CurrentRiskScore(); got != tt.want {
				t.Fatalf("CurrentRiskScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeeklyTrend(t *testing.T) {
	s := snapshotWithStatuses(StatusDelayed, StatusDelayed) // score 90

	points := s.WeeklyTrend()
	if len(points) != 7 {
		t.Fatalf("WeeklyTrend() = %d points, want 7", len(points))
	}

	if got := points[6].Score; got != s.CurrentRiskScore() {
		t.Fatalf("today point = %d, want live score %d", got, s.CurrentRiskScore())
	}
	if got := points[6].Day; got != "Tue" {
		t.Fatalf("today label = %q, want Tue", got)
	}
	if got := points[0].Score; got != 72 {
		t.Fatalf("first point = %d, want 72 (80%% of 90)", got)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Score < points[i-1].Score {
			t.Fatalf("trend decreases at %d: %v", i, points)
		}
	}
}

func TestWeeklyTrendEmptyFleet(t *testing.T) {
	s := snapshotWithStatuses()
	points := s.WeeklyTrend()
	if len(points) != 7 {
		t.Fatalf("WeeklyTrend() = %d points, want 7", len(points))
	}
	for _, p := range points {
		if p.Score != 0 {
			t.Fatalf("empty fleet point = %d, want 0", p.Score)
		}
	}
}

func TestDepartmentHeatmap(t *testing.T) {
	s := &Snapshot{
		TakenAt: time.Now().UTC(),
		Employees: []EmployeeRisk{
			{Department: "Engineering", Status: StatusDelayed},
			{Department: "Engineering", Status: StatusDelayed},
			{Department: "Sales", Status: StatusAtRisk},
			{Department: "", Status: StatusOnTrack},
			{Department: "Ops", Status: StatusUnavailable},
		},
	}

	got := s.DepartmentHeatmap()

	if d := got["Engineering"]; d.RiskLevel != "High" || d.AvgScore != 90 || d.Employees != 2 {
		t.Fatalf("Engineering = %+v, want High/90/2", d)
	}
	if d := got["Sales"]; d.RiskLevel != "Medium" || d.AvgScore != 50 {
		t.Fatalf("Sales = %+v, want Medium/50", d)
	}
	if d := got["Unassigned"]; d.RiskLevel != "Low" || d.AvgScore != 10 {
		t.Fatalf("Unassigned = %+v, want Low/10", d)
	}
	if _, ok := got["Ops"]; ok {
		t.Fatal("Ops appears in heatmap though its only employee is unavailable")
	}
}
