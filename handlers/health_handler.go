// handlers/health_handler.go
package handlers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Suhas-098/onboardai-backend/database"
	"github.com/Suhas-098/onboardai-backend/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	if err := database.Client.Ping(r.Context(), readpref.Primary()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	utils.RespondWithJSON(w, code, map[string]string{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
