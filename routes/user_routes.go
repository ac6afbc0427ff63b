package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for profile reads under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.Use(middleware.Auth)
	userRouter.HandleFunc("/me", controller.GetMe).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.GetUser).Methods("GET")
}
