// handlers/notification_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
	"github.com/Suhas-098/onboardai-backend/websocket"
)

// ListNotifications returns one user's notifications, newest first.
// Non-staff callers only ever see their own.
func ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Missing caller identity")
		return
	}

	if hex := r.URL.Query().Get("user_id"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
			return
		}
		if id != userID && !isStaff(callerRole(r)) {
			utils.RespondWithError(w, http.StatusForbidden, utils.ErrForbidden, "Notifications belong to another employee")
			return
		}
		userID = id
	}

	cursor, err := notificationCollection.Find(r.Context(),
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch notifications")
		return
	}
	defer cursor.Close(r.Context())

	var notifications []models.EmployeeNotification
	if err := cursor.All(r.Context(), &notifications); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Decode error")
		return
	}
	if notifications == nil {
		notifications = []models.EmployeeNotification{}
	}

	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

type createNotificationRequest struct {
	UserID        string `json:"userId"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	RelatedTaskID string `json:"relatedTaskId"`
}

// CreateNotification stores a targeted notification. A task-related
// notification also writes a task message thread entry.
func CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.UserID == "" || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "userId and message are required")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
		return
	}
	if count, err := userCollection.CountDocuments(r.Context(), bson.M{"_id": userID}); err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "User not found")
		return
	}

	notifType := req.Type
	if notifType == "" {
		notifType = "info"
	}

	now := time.Now().UTC()
	notification := models.EmployeeNotification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Message:   req.Message,
		Type:      notifType,
		CreatedAt: now,
	}

	if req.RelatedTaskID != "" {
		taskID, err := primitive.ObjectIDFromHex(req.RelatedTaskID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid task ID")
			return
		}
		notification.RelatedTaskID = taskID

		taskMessageCollection.InsertOne(r.Context(), models.TaskMessage{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			TaskID:    taskID,
			Sender:    "HR",
			Message:   req.Message,
			CreatedAt: now,
		})
	}

	if _, err := notificationCollection.InsertOne(r.Context(), notification); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to create notification")
		return
	}

	websocket.SendNotificationCreated(notification, "HR")
	recordActivity(r, "Sent notification", req.Message)

	utils.RespondWithJSON(w, http.StatusCreated, notification)
}

func MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid notification ID")
		return
	}

	filter := bson.M{"_id": id}
	if caller, ok := callerID(r); ok && !isStaff(callerRole(r)) {
		filter["userId"] = caller
	}

	result, err := notificationCollection.UpdateOne(r.Context(),
		filter,
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to update notification")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Notification not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
