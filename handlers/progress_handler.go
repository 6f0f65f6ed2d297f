// handlers/progress_handler.go
package handlers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type recordProgressRequest struct {
	UserID     string `json:"userId"`
	TaskID     string `json:"taskId"`
	Completion *int   `json:"completion"`
	DelayDays  int    `json:"delayDays"`
	TimeSpent  int    `json:"timeSpent"`
}

func RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req recordProgressRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.UserID == "" || req.TaskID == "" || req.Completion == nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "userId, taskId and completion are required")
		return
	}
	if *req.Completion < 0 || *req.Completion > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Completion must be between 0 and 100")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
		return
	}
	taskID, err := primitive.ObjectIDFromHex(req.TaskID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid task ID")
		return
	}

	if count, err := userCollection.CountDocuments(r.Context(), bson.M{"_id": userID}); err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "User not found")
		return
	}
	if count, err := taskCollection.CountDocuments(r.Context(), bson.M{"_id": taskID}); err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Task not found")
		return
	}

	now := time.Now().UTC()
	progress := models.Progress{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		TaskID:     taskID,
		Completion: *req.Completion,
		DelayDays:  req.DelayDays,
		TimeSpent:  req.TimeSpent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if *req.Completion == 100 {
		progress.CompletedAt = &now
	}

	if _, err := progressCollection.InsertOne(r.Context(), progress); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to record progress")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, progress)
}

func ListProgress(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}

	if userIDHex := r.URL.Query().Get("user_id"); userIDHex != "" {
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
			return
		}
		filter["userId"] = userID
	}

	cursor, err := progressCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch progress")
		return
	}
	defer cursor.Close(r.Context())

	var rows []models.Progress
	if err := cursor.All(r.Context(), &rows); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Decode error")
		return
	}
	if rows == nil {
		rows = []models.Progress{}
	}

	utils.RespondWithJSON(w, http.StatusOK, rows)
}
