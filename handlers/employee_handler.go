// handlers/employee_handler.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/risk"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type employeeListItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Avatar     string   `json:"avatar,omitempty"`
	Progress   float64  `json:"progress"`
	Risk       string   `json:"risk"`
	RiskReason []string `json:"riskReasons,omitempty"`
}

// ListEmployees returns every onboarding employee with live metrics and
// the authoritative risk status from the shared snapshot.
func ListEmployees(w http.ResponseWriter, r *http.Request) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Failed to aggregate employee risk")
		return
	}

	avatars := loadAvatars(r)

	items := make([]employeeListItem, 0, len(snapshot.Employees))
	for _, e := range snapshot.Employees {
		items = append(items, employeeListItem{
			ID:         e.UserID.Hex(),
			Name:       e.Name,
			Role:       e.Role,
			Department: e.Department,
			Avatar:     avatars[e.UserID],
			Progress:   e.Metrics.AvgCompletion,
			Risk:       e.Status,
			RiskReason: e.Reasons,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func loadAvatars(r *http.Request) map[primitive.ObjectID]string {
	avatars := make(map[primitive.ObjectID]string)
	cursor, err := userCollection.Find(r.Context(), bson.M{})
	if err != nil {
		return avatars
	}
	defer cursor.Close(r.Context())

	var users []models.User
	if err := cursor.All(r.Context(), &users); err != nil {
		return avatars
	}
	for _, u := range users {
		avatars[u.ID] = u.Avatar
	}
	return avatars
}

// employeeDetailView is the full variant returned to admin/hr callers.
type employeeDetailView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Status     string          `json:"status"`
	Reasons    []string        `json:"reasons,omitempty"`
	Score      int             `json:"score"`
	Metrics    risk.Metrics    `json:"metrics"`
	Assessment risk.Assessment `json:"assessment"`
	ModelLabel string          `json:"modelLabel,omitempty"`
	Tasks      []models.Task   `json:"tasks"`
}

// employeeSummaryView is the reduced variant an employee gets for their own
// record: status and metrics, no recommendations or reasons.
type employeeSummaryView struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	Metrics risk.Metrics  `json:"metrics"`
	Tasks   []models.Task `json:"tasks"`
}

func GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid employee ID")
		return
	}

	role := callerRole(r)
	caller, _ := callerID(r)
	if !isStaff(role) && caller != id {
		utils.RespondWithError(w, http.StatusForbidden, utils.ErrForbidden, "Insufficient privileges")
		return
	}

	var user models.User
	err = userCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Employee not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch employee")
		return
	}

	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Failed to aggregate employee risk")
		return
	}

	var entry *risk.EmployeeRisk
	for i := range snapshot.Employees {
		if snapshot.Employees[i].UserID == id {
			entry = &snapshot.Employees[i]
			break
		}
	}
	if entry == nil {
		utils.RespondWithError(w, http.StatusNotFound, utils.ErrNotFound, "Employee is not tracked by onboarding")
		return
	}

	taskCursor, err := taskCollection.Find(r.Context(), bson.M{"assignedTo": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to fetch tasks")
		return
	}
	defer taskCursor.Close(r.Context())

	var tasks []models.Task
	if err := taskCursor.All(r.Context(), &tasks); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Decode error")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	if !isStaff(role) {
		utils.RespondWithJSON(w, http.StatusOK, employeeSummaryView{
			ID:      entry.UserID.Hex(),
			Name:    entry.Name,
			Status:  entry.Status,
			Metrics: entry.Metrics,
			Tasks:   tasks,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, employeeDetailView{
		ID:         entry.UserID.Hex(),
		Name:       entry.Name,
		Email:      entry.Email,
		Role:       entry.Role,
		Department: entry.Department,
		Status:     entry.Status,
		Reasons:    entry.Reasons,
		Score:      entry.Score,
		Metrics:    entry.Metrics,
		Assessment: entry.Assessment,
		ModelLabel: entry.ModelLabel,
		Tasks:      tasks,
	})
}
