package controllers

import (
	"encoding/json"
	"net/http"

	"technocy-server/utils"
)

// AuthController issues bearer tokens
type AuthController struct{}

// NewAuthController creates a new AuthController
func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken handles POST /jwt: it signs a short-lived token for the
// posted identity. The token carries the email only; roles are checked
// against the users collection on each request.
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var user struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
