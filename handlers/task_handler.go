// handlers/task_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	TaskType    string     `json:"taskType"`
	AssignedTo  string     `json:"assignedTo"`
}

func CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Title is required")
		return
	}
	if req.AssignedTo == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Assignee is required")
		return
	}

	assignee, err := primitive.ObjectIDFromHex(req.AssignedTo)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid assignee ID")
		return
	}

	count, err := userCollection.CountDocuments(r.Context(), bson.M{"_id": assignee})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to check assignee")
		return
	}
	if count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Assignee not found")
		return
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskPending,
		DueDate:     req.DueDate,
		TaskType:    req.TaskType,
		AssignedTo:  assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := taskCollection.InsertOne(r.Context(), task); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to create task")
		return
	}

	// Progress row created alongside the task: the single authoritative
	// input for metrics aggregation.
	progress := models.Progress{
		ID:        primitive.NewObjectID(),
		UserID:    assignee,
		TaskID:    task.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := progressCollection.InsertOne(r.Context(), progress); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to initialize progress")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, task)
}

func ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}

	if userIDHex := r.URL.Query().Get("user_id"); userIDHex != "" {
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
			return
		}
		filter["assignedTo"] = userID
	}

	cursor, err := taskCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch tasks")
		return
	}
	defer cursor.Close(r.Context())

	var tasks []models.Task
	if err := cursor.All(r.Context(), &tasks); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Decode error")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.RespondWithJSON(w, http.StatusOK, tasks)
}

func GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid task ID")
		return
	}

	var task models.Task
	err = taskCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Task not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch task")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, task)
}

type updateTaskRequest struct {
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"dueDate"`
}

// UpdateTask allows status and due-date edits only; tasks are otherwise
// immutable once created.
func UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid task ID")
		return
	}

	var req updateTaskRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if req.Status != nil {
		update["status"] = *req.Status
	}
	if req.DueDate != nil {
		update["dueDate"] = *req.DueDate
	}
	if len(update) == 1 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "No fields to update")
		return
	}

	result, err := taskCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to update task")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Task not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Task updated"})
}

type completeTaskRequest struct {
	TimeSpent int `json:"timeSpent"` // minutes
}

// CompleteTask marks the caller's task done, finalizes its progress row and
// refreshes the advisory risk cache on the user record. Concurrent
// completions race on the cache; last write wins, which is acceptable
// because the cache is never authoritative.
func CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid task ID")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Missing caller identity")
		return
	}

	var req completeTaskRequest
	if err := utils.ParseJSON(r, &req); err != nil && err.Error() != "EOF" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}

	var task models.Task
	err = taskCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Task not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch task")
		return
	}

	if task.AssignedTo != caller && !isStaff(callerRole(r)) {
		utils.RespondWithError(w, http.StatusForbidden, utils.ErrForbidden, "Task belongs to another employee")
		return
	}

	now := time.Now().UTC()

	delayDays := 0
	if task.DueDate != nil && now.After(*task.DueDate) {
		delayDays = int(now.Sub(*task.DueDate).Hours() / 24)
		if delayDays == 0 {
			delayDays = 1
		}
	}

	if _, err := taskCollection.UpdateOne(r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.TaskCompleted, "updatedAt": now}},
	); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to complete task")
		return
	}

	update := bson.M{
		"completion":  100,
		"delayDays":   delayDays,
		"completedAt": now,
		"updatedAt":   now,
	}
	if req.TimeSpent > 0 {
		update["timeSpent"] = req.TimeSpent
	}

	_, err = progressCollection.UpdateOne(r.Context(),
		bson.M{"userId": task.AssignedTo, "taskId": id},
		bson.M{"$set": update, "$setOnInsert": bson.M{"createdAt": now}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to record progress")
		return
	}

	refreshCachedRisk(r.Context(), task.AssignedTo)
	recordActivity(r, "Completed task", task.Title)

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Task completed",
		"delayDays": delayDays,
	})
}
