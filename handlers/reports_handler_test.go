package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/risk"
)

func sampleEmployee() risk.EmployeeRisk {
	return risk.EmployeeRisk{
		UserID:     primitive.NewObjectID(),
		Name:       "Asha",
		Email:      "asha@example.com",
		Department: "Engineering",
		Role:       "employee",
		Status:     risk.StatusDelayed,
		Reasons:    []string{"Missed critical deadline"},
		Score:      90,
		Metrics: risk.Metrics{
			AvgCompletion:   62.5,
			TotalDelayDays:  4,
			TasksCompleted:  3,
			MissedDeadlines: 1,
			TotalTimeSpent:  240,
		},
	}
}

func TestExportRowMatchesHeader(t *testing.T) {
	row := exportRow(sampleEmployee())
	if len(row) != len(exportHeader) {
		t.Fatalf("exportRow has %d cells for %d header columns", len(row), len(exportHeader))
	}
}

func TestExportRowValues(t *testing.T) {
	e := sampleEmployee()
	row := exportRow(e)

	byHeader := make(map[string]string, len(exportHeader))
	for i, h := range exportHeader {
		byHeader[h] = row[i]
	}

	tests := []struct {
		header string
		want   string
	}{
		{"ID", e.UserID.Hex()},
		{"Name", "Asha"},
		{"Risk Status", risk.StatusDelayed},
		{"Risk Reasons", "Missed critical deadline"},
		{"Avg Completion (%)", "62.5"},
		{"Tasks Completed", "3"},
		{"Delay (days)", "4"},
		{"Missed Deadlines", "1"},
		{"Time Spent (min)", "240"},
	}
	for _, tt := range tests {
		if got := byHeader[tt.header]; got != tt.want {
			t.Errorf("column %q = %q, want %q", tt.header, got, tt.want)
		}
	}
}

// The PDF table must stay a projection of the CSV/XLSX row: same source
// cells, one width per projected column.
func TestPDFColumnsProjectExportRow(t *testing.T) {
	if len(pdfColumns) != len(pdfWidths) {
		t.Fatalf("%d pdf columns for %d widths", len(pdfColumns), len(pdfWidths))
	}

	e := sampleEmployee()
	row := exportRow(e)

	for _, col := range pdfColumns {
		if col < 0 || col >= len(exportHeader) {
			t.Fatalf("pdf column %d out of range for %d export columns", col, len(exportHeader))
		}
	}

	projected := make(map[string]string, len(pdfColumns))
	for _, col := range pdfColumns {
		projected[exportHeader[col]] = row[col]
	}

	if got := projected["Risk Status"]; got != e.Status {
		t.Errorf("pdf status cell = %q, want %q", got, e.Status)
	}
	if got := projected["Avg Completion (%)"]; got != "62.5" {
		t.Errorf("pdf completion cell = %q, want 62.5", got)
	}
	if got := projected["Missed Deadlines"]; got != "1" {
		t.Errorf("pdf missed-deadlines cell = %q, want 1", got)
	}
}
