package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterAIRoutes sets up routes for the AI-backed features under /api/ai
func RegisterAIRoutes(r *mux.Router, aiService *services.AIService, userService *services.UserService) {
	controller := controllers.NewAIController(aiService, userService)

	aiRouter := r.PathPrefix("/api/ai").Subrouter()
	aiRouter.HandleFunc("/chat", controller.Chat).Methods("POST")
	aiRouter.HandleFunc("/roadmap", controller.Roadmap).Methods("POST")

	protected := r.PathPrefix("/api/ai").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/mockinterview", controller.MockInterview).Methods("POST")
	protected.HandleFunc("/interview-feedback", controller.InterviewFeedback).Methods("POST")
}
