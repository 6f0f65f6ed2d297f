// handlers/alert_handler.go
package handlers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/middleware"
	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
	"github.com/Suhas-098/onboardai-backend/websocket"
)

// ListAlerts returns persisted alerts plus the synthetic overdue-task
// alerts derived from live task state, newest first. Synthetic alerts are
// recomputed on every call and never stored.
func ListAlerts(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	users, err := loadUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch users")
		return
	}
	tasks, err := loadTasks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch tasks")
		return
	}

	views, err := loadAlertViews(r.Context(), users, tasks, now)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch alerts")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, views)
}

type createAlertRequest struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	TargetUserID string `json:"targetUserId"`
}

// CreateAlert persists an HR-sent reminder and pushes it to connected
// dashboards.
func CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Message is required")
		return
	}

	alertType := req.Type
	switch alertType {
	case "":
		alertType = models.AlertInfo
	case models.AlertInfo, models.AlertWarning, models.AlertCritical, models.AlertDelayed:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Unknown alert type")
		return
	}

	alert := models.Alert{
		ID:        primitive.NewObjectID(),
		Type:      alertType,
		Title:     req.Title,
		Message:   req.Message,
		Sender:    "System",
		CreatedAt: time.Now().UTC(),
	}

	if name, ok := r.Context().Value(middleware.CtxUserName).(string); ok && name != "" {
		alert.Sender = name
	}

	if req.TargetUserID != "" {
		target, err := primitive.ObjectIDFromHex(req.TargetUserID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid target user ID")
			return
		}
		alert.TargetUserID = target
	}

	if _, err := alertCollection.InsertOne(r.Context(), alert); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to create alert")
		return
	}

	websocket.SendAlertCreated(alert, alert.Sender)
	recordActivity(r, "Sent alert", alert.Message)

	utils.RespondWithJSON(w, http.StatusCreated, alert)
}
