// handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/Suhas-098/onboardai-backend/utils"
)

// GetDashboardSummary returns everything the HR dashboard renders in one
// call, all derived from a single fleet snapshot.
func GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"totalEmployees":    snapshot.TotalEmployees,
		"onTrack":           snapshot.OnTrack,
		"atRisk":            snapshot.AtRisk,
		"delayed":           snapshot.Delayed,
		"unavailable":       snapshot.Unavailable,
		"avgCompletion":     snapshot.AvgCompletion,
		"riskScore":         snapshot.CurrentRiskScore(),
		"criticalEmployees": snapshot.CriticalEmployees,
		"deptCounts":        snapshot.DeptCounts,
		"topRisks":          snapshot.TopRisks(5),
		"weeklyTrend":       snapshot.WeeklyTrend(),
		"takenAt":           snapshot.TakenAt,
	})
}

// GetDepartmentHeatmap returns the per-department risk levels.
func GetDepartmentHeatmap(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snapshot.DepartmentHeatmap())
}
