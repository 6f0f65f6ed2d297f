// handlers/risk_handler.go
package handlers

import (
	"net/http"

	"github.com/Suhas-098/onboardai-backend/utils"
)

// ListRisks returns the per-employee risk classification for the whole
// onboarding fleet, worst first.
func ListRisks(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snapshot.Employees)
}

// GetRiskStats returns the fleet-level status counts.
func GetRiskStats(w http.ResponseWriter, r *http.Request) {
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
		"takenAt":        snapshot.TakenAt,
	})
}
