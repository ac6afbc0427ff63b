package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for registration and login under /api/auth
func RegisterAuthRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewAuthController(userService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
