// handlers/predict_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/risk"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type predictRequest struct {
	Completion     *float64 `json:"completion"`
	DelayDays      float64  `json:"delayDays"`
	TasksCompleted float64  `json:"tasksCompleted"`
	TimeSpent      float64  `json:"timeSpent"`
}

// PredictRisk scores an arbitrary feature vector against the pretrained
// model. The label is supplementary; it never feeds back into the
// rule-based classification.
func PredictRisk(w http.ResponseWriter, r *http.Request) {
	if riskModel == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, utils.ErrInternal, "Risk model not loaded")
		return
	}

	var req predictRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.Completion == nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "completion is required")
		return
	}
	if *req.Completion < 0 || *req.Completion > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Completion must be between 0 and 100")
		return
	}
	if req.DelayDays < 0 || req.TasksCompleted < 0 || req.TimeSpent < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Features must be non-negative")
		return
	}

	label := riskModel.Predict(*req.Completion, req.DelayDays, req.TasksCompleted, req.TimeSpent)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"prediction": label})
}

// GetAIRiskDashboard returns the fleet snapshot annotated with model
// labels, for the side-by-side model-vs-rules view.
func GetAIRiskDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"modelLoaded": riskModel != nil,
		"employees":   snapshot.Employees,
		"takenAt":     snapshot.TakenAt,
	})
}

type explanationView struct {
	UserID            primitive.ObjectID `json:"userId"`
	Name              string             `json:"name"`
	CompletionPercent float64            `json:"completionPercent"`
	DelayDays         int                `json:"delayDays"`
	Risk              string             `json:"risk"`
	Explanation       risk.Explanation   `json:"explanation"`
}

// GetAIExplanations breaks each employee's annotation down into named
// signal contributions.
func GetAIExplanations(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	views := make([]explanationView, 0, len(snapshot.Employees))
	for _, e := range snapshot.Employees {
		if e.Status == risk.StatusUnavailable {
			continue
		}
		views = append(views, explanationView{
			UserID:            e.UserID,
			Name:              e.Name,
			CompletionPercent: e.Metrics.AvgCompletion,
			DelayDays:         e.Metrics.TotalDelayDays,
			Risk:              annotatedRisk(e),
			Explanation: risk.Explain(
				e.Metrics.AvgCompletion,
				e.Metrics.TotalDelayDays,
				e.Metrics.TasksCompleted,
				e.Metrics.TotalTimeSpent,
			),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, views)
}

type nudgeView struct {
	UserID  primitive.ObjectID `json:"userId"`
	Name    string             `json:"name"`
	Risk    string             `json:"risk"`
	Message string             `json:"message"`
}

// GetAINudges lists intervention suggestions for every employee whose
// annotation is At Risk or Delayed. Suggestions only; nothing is persisted
// and the alert stream is untouched.
func GetAINudges(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	nudges := []nudgeView{}
	for _, e := range snapshot.Employees {
		label := annotatedRisk(e)
		if label != risk.StatusAtRisk && label != risk.StatusDelayed {
			continue
		}
		nudges = append(nudges, nudgeView{
			UserID:  e.UserID,
			Name:    e.Name,
			Risk:    label,
			Message: fmt.Sprintf("Alert: %s is %s. HR intervention recommended.", e.Name, label),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, nudges)
}

// annotatedRisk prefers the model label when a model is loaded and falls
// back to the authoritative status.
func annotatedRisk(e risk.EmployeeRisk) string {
	if e.ModelLabel != "" {
		return e.ModelLabel
	}
	return e.Status
}
