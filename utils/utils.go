// utils/utils.go
package utils

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// Machine-readable error kinds surfaced in every failure envelope.
const (
	ErrNotFound     = "not_found"
	ErrUnauthorized = "unauthorized"
	ErrForbidden    = "forbidden"
	ErrValidation   = "validation"
	ErrAggregation  = "aggregation_failure"
	ErrExport       = "export_failure"
	ErrInternal     = "internal"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RespondWithError writes the structured error envelope. Callers never see
// stack traces, only the kind and a human-readable message.
func RespondWithError(w http.ResponseWriter, code int, kind, message string) {
	RespondWithJSON(w, code, map[string]errorBody{"error": {Kind: kind, Message: message}})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
