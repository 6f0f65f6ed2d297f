package risk

import (
	"reflect"
	"testing"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name           string
		avgCompletion  float64
		totalDelayDays int
		tasksCompleted int
		timeSpent      int
		wantLevel      string
		wantScore      int
		wantReasons    []string
	}{
		{
			name:          "healthy employee",
			avgCompletion: 95, totalDelayDays: 0, tasksCompleted: 6, timeSpent: 400,
			wantLevel:   "Low Risk",
			wantScore:   0,
			wantReasons: []string{"Performance is healthy"},
		},
		{
			name:          "every signal firing",
			avgCompletion: 20, totalDelayDays: 12, tasksCompleted: 0, timeSpent: 30,
			wantLevel: "High Risk",
			wantScore: 10,
			wantReasons: []string{
				"Very low task completion",
				"Severe task delays",
				"Very few tasks completed",
				"Low engagement time",
			},
		},
		{
			name:          "medium band",
			avgCompletion: 55, totalDelayDays: 3, tasksCompleted: 5, timeSpent: 300,
			wantLevel:   "Medium Risk",
			wantScore:   3,
			wantReasons: []string{"Low task completion", "Minor delays"},
		},
		{
			name:          "moderate completion alone stays low",
			avgCompletion: 75, totalDelayDays: 0, tasksCompleted: 4, timeSpent: 200,
			wantLevel:   "Low Risk",
			wantScore:   1,
			wantReasons: []string{"Moderate task completion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(tt.avgCompletion, tt.totalDelayDays, tt.tasksCompleted, tt.timeSpent)
			if got.RiskLevel != tt.wantLevel {
				t.Fatalf("RiskLevel = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
			if got.RiskScore != tt.wantScore {
				t.Fatalf("RiskScore = %d, want %d", got.RiskScore, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Reasons, tt.wantReasons) {
				t.Fatalf("Reasons = %v, want %v", got.Reasons, tt.wantReasons)
			}
		})
	}
}
