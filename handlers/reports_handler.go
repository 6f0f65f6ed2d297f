// handlers/reports_handler.go
package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/Suhas-098/onboardai-backend/risk"
	"github.com/Suhas-098/onboardai-backend/utils"
)

// GetReportsSummary returns the aggregate numbers shown at the top of the
// reports page.
func GetReportsSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"totalEmployees": snapshot.TotalEmployees,
		"onTrack":        snapshot.OnTrack,
		"atRisk":         snapshot.AtRisk,
		"delayed":        snapshot.Delayed,
		"unavailable":    snapshot.Unavailable,
		"avgCompletion":  snapshot.AvgCompletion,
		"riskScore":      snapshot.CurrentRiskScore(),
		"deptCounts":     snapshot.DeptCounts,
		"takenAt":        snapshot.TakenAt,
	})
}

// GetWeeklyRiskTrend returns the seven-day trend series ending today.
func GetWeeklyRiskTrend(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snapshot.WeeklyTrend())
}

var exportHeader = []string{
	"ID", "Name", "Email", "Department", "Role", "Risk Status", "Risk Reasons",
	"Avg Completion (%)", "Tasks Completed", "Delay (days)", "Missed Deadlines", "Time Spent (min)",
}

// The PDF employee table is a column projection of the same row the CSV
// and XLSX write, so the three formats cannot drift apart.
var (
	pdfColumns = []int{1, 2, 3, 5, 7, 8, 9, 10, 11}
	pdfWidths  = []float64{45, 60, 30, 22, 22, 25, 22, 20, 22}
)

func exportRow(e risk.EmployeeRisk) []string {
	return []string{
		e.UserID.Hex(),
		e.Name,
		e.Email,
		e.Department,
		e.Role,
		e.Status,
		strings.Join(e.Reasons, "; "),
		strconv.FormatFloat(e.Metrics.AvgCompletion, 'f', 1, 64),
		strconv.Itoa(e.Metrics.TasksCompleted),
		strconv.Itoa(e.Metrics.TotalDelayDays),
		strconv.Itoa(e.Metrics.MissedDeadlines),
		strconv.Itoa(e.Metrics.TotalTimeSpent),
	}
}

// DownloadCSV streams the per-employee report. All three export formats are
// serialized from the same snapshot shape, so a CSV, XLSX and PDF requested
// at the same instant agree on every number.
func DownloadCSV(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrExport, "Report generation failed")
		return
	}

	filename := "onboarding_report_" + snapshot.TakenAt.Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(w)
	writer.Write(exportHeader)
	for _, e := range snapshot.Employees {
		writer.Write(exportRow(e))
	}
	writer.Flush()
}

// DownloadExcel streams an XLSX workbook with an Employees sheet and a
// Summary sheet.
func DownloadExcel(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrExport, "Report generation failed")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for row, e := range snapshot.Employees {
		for col, v := range exportRow(e) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	const summary = "Summary"
	f.NewSheet(summary)
	summaryRows := [][]interface{}{
		{"Generated", snapshot.TakenAt.Format("2006-01-02 15:04 MST")},
		{"Total Employees", snapshot.TotalEmployees},
		{"On Track", snapshot.OnTrack},
		{"At Risk", snapshot.AtRisk},
		{"Delayed", snapshot.Delayed},
		{"Unavailable", snapshot.Unavailable},
		{"Average Completion (%)", snapshot.AvgCompletion},
		{"Fleet Risk Score", snapshot.CurrentRiskScore()},
	}
	for row, pair := range summaryRows {
		keyCell, _ := excelize.CoordinatesToCellName(1, row+1)
		valCell, _ := excelize.CoordinatesToCellName(2, row+1)
		f.SetCellValue(summary, keyCell, pair[0])
		f.SetCellValue(summary, valCell, pair[1])
	}

	filename := "onboarding_report_" + snapshot.TakenAt.Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrExport, "Report generation failed")
	}
}

// DownloadPDF streams the printable report: summary block, department
// breakdown and the per-employee table.
func DownloadPDF(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrExport, "Report generation failed")
		return
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Onboarding Risk Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+snapshot.TakenAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	summaryLines := []string{
		fmt.Sprintf("Total employees: %d", snapshot.TotalEmployees),
		fmt.Sprintf("On Track: %d   At Risk: %d   Delayed: %d   Unavailable: %d",
			snapshot.OnTrack, snapshot.AtRisk, snapshot.Delayed, snapshot.Unavailable),
		fmt.Sprintf("Average completion: %.1f%%", snapshot.AvgCompletion),
		fmt.Sprintf("Fleet risk score: %d", snapshot.CurrentRiskScore()),
	}
	for _, line := range summaryLines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Departments")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	heatmap := snapshot.DepartmentHeatmap()
	depts := make([]string, 0, len(heatmap))
	for dept := range heatmap {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	for _, dept := range depts {
		d := heatmap[dept]
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d employees, avg score %.1f (%s)", dept, d.Employees, d.AvgScore, d.RiskLevel))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Top At-Risk Employees")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, e := range snapshot.TopRisks(5) {
		line := fmt.Sprintf("%s (%s): %s", e.Name, e.Department, e.Status)
		if len(e.Reasons) > 0 {
			line += " - " + e.Reasons[0]
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Weekly Risk Trend")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, p := range snapshot.WeeklyTrend() {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", p.Day, p.Score))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Employees")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	for i, col := range pdfColumns {
		pdf.CellFormat(pdfWidths[i], 7, exportHeader[col], "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range snapshot.Employees {
		row := exportRow(e)
		for i, col := range pdfColumns {
			pdf.CellFormat(pdfWidths[i], 7, row[col], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	filename := "onboarding_report_" + snapshot.TakenAt.Format("2006-01-02") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrExport, "Report generation failed")
	}
}
