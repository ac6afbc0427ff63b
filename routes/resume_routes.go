package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterResumeRoutes sets up the resume upload route under /api/resume
func RegisterResumeRoutes(r *mux.Router, resumeService *services.ResumeService) {
	controller := controllers.NewResumeController(resumeService)

	resumeRouter := r.PathPrefix("/api/resume").Subrouter()
	resumeRouter.Use(middleware.Auth)
	resumeRouter.HandleFunc("/upload", controller.Upload).Methods("POST")
}
