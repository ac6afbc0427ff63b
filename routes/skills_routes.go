package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterSkillsRoutes sets up the profile skill matching route under /api/skills
func RegisterSkillsRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewSkillsController(userService)

	skillsRouter := r.PathPrefix("/api/skills").Subrouter()
	skillsRouter.Use(middleware.Auth)
	skillsRouter.HandleFunc("/match", controller.Match).Methods("POST")
}
