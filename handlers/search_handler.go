// handlers/search_handler.go
package handlers

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/risk"
	"github.com/Suhas-098/onboardai-backend/utils"
)

// Search is role-scoped: HR/admin search employees across the fleet,
// employees search their own tasks. Scope defaults by role and matching is
// case-insensitive substring.
func Search(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "query is required")
		return
	}

	staff := isStaff(callerRole(r))

	scope := r.URL.Query().Get("scope")
	if scope == "" {
		if staff {
			scope = "employees"
		} else {
			scope = "tasks"
		}
	}

	switch scope {
	case "employees":
		if !staff {
			utils.RespondWithError(w, http.StatusForbidden, utils.ErrForbidden, "Insufficient privileges")
			return
		}
		searchEmployees(w, r, query)
	case "tasks":
		searchTasks(w, r, query, staff)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Unknown scope")
	}
}

func searchEmployees(w http.ResponseWriter, r *http.Request, query string) {
	snapshot, err := loadSnapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrAggregation, "Risk aggregation failed")
		return
	}

	matches := []risk.EmployeeRisk{}
	for _, e := range snapshot.Employees {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Email), query) ||
			strings.Contains(strings.ToLower(e.Department), query) {
			matches = append(matches, e)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}

func searchTasks(w http.ResponseWriter, r *http.Request, query string, staff bool) {
	target, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Missing caller identity")
		return
	}

	// Staff may search another employee's tasks.
	if hex := r.URL.Query().Get("user_id"); hex != "" && staff {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid user ID")
			return
		}
		target = id
	}

	cursor, err := taskCollection.Find(r.Context(), bson.M{"assignedTo": target})
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

	matches := []models.Task{}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			matches = append(matches, t)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}
