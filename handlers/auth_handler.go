// handlers/auth_handler.go
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Invalid payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrValidation, "Email and password are required")
		return
	}

	var user models.User
	err := userCollection.FindOne(r.Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.ErrInternal, "Failed to issue token")
		return
	}

	logActivity(r.Context(), user.ID, user.Name, "Logged in", "")

	utils.RespondWithJSON(w, http.StatusOK, loginResponse{
		Token:  token,
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Role:   user.Role,
	})
}

// ValidateToken lets clients check a bearer token without hitting a
// protected resource.
func ValidateToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Missing bearer token")
		return
	}

	claims, err := utils.ValidateJWT(authHeader[len(prefix):])
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.ErrUnauthorized, "Invalid or expired token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"userId": claims.UserID,
		"name":   claims.Name,
		"role":   claims.Role,
	})
}
