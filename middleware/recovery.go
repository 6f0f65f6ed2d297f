// middleware/recovery.go
package middleware

import (
	"log"
	"net/http"

	"github.com/Suhas-098/onboardai-backend/utils"
)

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC recovered: %v", err)
				utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Internal Server Error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
