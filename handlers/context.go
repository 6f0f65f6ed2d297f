// handlers/context.go
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/middleware"
	"github.com/Suhas-098/onboardai-backend/models"
)

func callerID(r *http.Request) (primitive.ObjectID, bool) {
	hex, ok := r.Context().Value(middleware.CtxUserID).(string)
	if !ok || hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func callerRole(r *http.Request) string {
	role, _ := r.Context().Value(middleware.CtxUserRole).(string)
	return role
}

func isStaff(role string) bool {
	return role == models.RoleAdmin || role == models.RoleHR
}
