// handlers/admin_handler.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Suhas-098/onboardai-backend/middleware"
	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
)

// recordActivity writes an activity log entry for the calling user.
// Best effort: a failed write is logged and never fails the request.
func recordActivity(r *http.Request, action, details string) {
	userID, _ := callerID(r)
	userName, _ := r.Context().Value(middleware.CtxUserName).(string)
	logActivity(r.Context(), userID, userName, action, details)
}

func logActivity(ctx context.Context, userID primitive.ObjectID, userName, action, details string) {
	if userName == "" {
		userName = "System"
	}
	_, err := activityCollection.InsertOne(ctx, models.ActivityLog{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		UserName:  userName,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to record activity %q: %v", action, err)
	}
}

func loadActivityLogs(r *http.Request) ([]models.ActivityLog, error) {
	cursor, err := activityCollection.Find(r.Context(),
		bson.M{},
		options.Find().SetSort(bson.M{"timestamp": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(r.Context())

	var logs []models.ActivityLog
	if err := cursor.All(r.Context(), &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs, nil
}

// GetAdminActivity returns every recorded activity, newest first.
func GetAdminActivity(w http.ResponseWriter, r *http.Request) {
	logs, err := loadActivityLogs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch activity")
		return
	}

	adminName, _ := r.Context().Value(middleware.CtxUserName).(string)

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"adminName":       adminName,
		"totalActivities": len(logs),
		"activities":      logs,
	})
}

type auditLogEntry struct {
	models.ActivityLog
	UserEmail  string `json:"userEmail,omitempty"`
	ActionType string `json:"actionType"`
}

// GetAuditLogs is the activity log with user emails joined in.
func GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := loadActivityLogs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch audit logs")
		return
	}

	users, err := loadUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch users")
		return
	}
	emails := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	entries := make([]auditLogEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, auditLogEntry{
			ActivityLog: l,
			UserEmail:   emails[l.UserID],
			ActionType:  "User Activity",
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"totalLogs": len(entries),
		"auditLogs": entries,
	})
}
