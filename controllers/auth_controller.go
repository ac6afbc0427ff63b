package controllers

import (
	"net/http"

	"skillforge_server/services"
)

// AuthController handles registration and login
type AuthController struct {
	UserService *services.UserService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{UserService: userService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if !decodeBody(w, r, &body) {
		return
	}

	user, token, err := ac.UserService.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to register")
		return
	}

	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if !decodeBody(w, r, &body) {
		return
	}

	user, token, err := ac.UserService.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to login")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
