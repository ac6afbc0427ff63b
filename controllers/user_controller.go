package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// UserController handles profile reads
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetMe handles GET /api/users/me
func (uc *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := uc.UserService.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusOK, user)
}

// GetUser handles GET /api/users/{id}
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := uc.UserService.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusOK, user)
}
