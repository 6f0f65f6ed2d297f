// handlers/template_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type templateTaskPayload struct {
	TaskName    string `json:"taskName"`
	Description string `json:"description"`
	DueDays     int    `json:"dueDays"`
	TaskType    string `json:"taskType"`
}

type templateRequest struct {
	Name  string                `json:"name"`
	Tasks []templateTaskPayload `json:"tasks"`
}

func (p templateTaskPayload) toModel() models.TemplateTask {
	dueDays := p.DueDays
	if dueDays <= 0 {
		dueDays = 3
	}
	taskType := p.TaskType
	if taskType == "" {
		taskType = "Form"
	}
	return models.TemplateTask{
		TaskName:    p.TaskName,
		Description: p.Description,
		DueDays:     dueDays,
		TaskType:    taskType,
	}
}

func CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Template name is required")
		return
	}

	tasks := make([]models.TemplateTask, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		if t.TaskName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Task name is required for every template task")
			return
		}
		tasks = append(tasks, t.toModel())
	}

	creator, _ := callerID(r)
	template := models.OnboardingTemplate{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		CreatedBy: creator,
		CreatedAt: time.Now().UTC(),
		Tasks:     tasks,
	}

	if _, err := templateCollection.InsertOne(r.Context(), template); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to create template")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, template)
}

func ListTemplates(w http.ResponseWriter, r *http.Request) {
	cursor, err := templateCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch templates")
		return
	}
	defer cursor.Close(r.Context())

	var templates []models.OnboardingTemplate
	if err := cursor.All(r.Context(), &templates); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Decode error")
		return
	}
	if templates == nil {
		templates = []models.OnboardingTemplate{}
	}

	utils.RespondWithJSON(w, http.StatusOK, templates)
}

func GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid template ID")
		return
	}

	var template models.OnboardingTemplate
	err = templateCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&template)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Template not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch template")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, template)
}

func UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid template ID")
		return
	}

	var req templateRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Tasks != nil {
		tasks := make([]models.TemplateTask, 0, len(req.Tasks))
		for _, t := range req.Tasks {
			if t.TaskName == "" {
				utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Task name is required for every template task")
				return
			}
			tasks = append(tasks, t.toModel())
		}
		update["tasks"] = tasks
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "No fields to update")
		return
	}

	result, err := templateCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to update template")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Template not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Template updated"})
}

func DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid template ID")
		return
	}

	result, err := templateCollection.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to delete template")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Template not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Template deleted"})
}

// AssignTemplate materializes a template for one employee: one task per
// blueprint, due DueDays after assignment, each with a zeroed progress row.
func AssignTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid employee ID")
		return
	}
	templateID, err := primitive.ObjectIDFromHex(vars["templateId"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid template ID")
		return
	}

	var user models.User
	err = userCollection.FindOne(r.Context(), bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Employee not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch employee")
		return
	}

	var template models.OnboardingTemplate
	err = templateCollection.FindOne(r.Context(), bson.M{"_id": templateID}).Decode(&template)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Template not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch template")
		return
	}
	if len(template.Tasks) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Template has no tasks")
		return
	}

	now := time.Now().UTC()
	taskDocs := make([]interface{}, 0, len(template.Tasks))
	progressDocs := make([]interface{}, 0, len(template.Tasks))

	for _, tt := range template.Tasks {
		due := now.AddDate(0, 0, tt.DueDays)
		task := models.Task{
			ID:          primitive.NewObjectID(),
			Title:       tt.TaskName,
			Description: tt.Description,
			Status:      models.TaskNotStarted,
			DueDate:     &due,
			TaskType:    tt.TaskType,
			AssignedTo:  userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		taskDocs = append(taskDocs, task)
		progressDocs = append(progressDocs, models.Progress{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			TaskID:    task.ID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if _, err := taskCollection.InsertMany(r.Context(), taskDocs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to create tasks")
		return
	}
	if _, err := progressCollection.InsertMany(r.Context(), progressDocs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to initialize progress")
		return
	}

	recordActivity(r, "Assigned template", fmt.Sprintf("%s to %s", template.Name, user.Name))

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      fmt.Sprintf("Assigned template '%s' to %s", template.Name, user.Name),
		"tasksCreated": len(taskDocs),
	})
}
