package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterProjectRoutes sets up routes for portfolio projects under /api/projects
func RegisterProjectRoutes(r *mux.Router, projectService *services.ProjectService) {
	controller := controllers.NewProjectController(projectService)

	projectRouter := r.PathPrefix("/api/projects").Subrouter()
	projectRouter.Use(middleware.Auth)
	projectRouter.HandleFunc("", controller.List).Methods("GET")
	projectRouter.HandleFunc("", controller.Create).Methods("POST")
	projectRouter.HandleFunc("/{id}/screenshot", controller.Screenshot).Methods("POST")
	projectRouter.HandleFunc("/{id}", controller.Update).Methods("PUT")
	projectRouter.HandleFunc("/{id}", controller.Delete).Methods("DELETE")
}
