package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterQuizRoutes sets up routes for quizzes under /api/quizzes
func RegisterQuizRoutes(r *mux.Router, quizService *services.QuizService) {
	controller := controllers.NewQuizController(quizService)

	quizRouter := r.PathPrefix("/api/quizzes").Subrouter()
	quizRouter.HandleFunc("/generate", controller.Generate).Methods("POST")
	quizRouter.HandleFunc("/ai-check", controller.AICheck).Methods("POST")
	quizRouter.HandleFunc("", controller.List).Methods("GET")
	quizRouter.HandleFunc("/{id}", controller.Get).Methods("GET")

	protected := r.PathPrefix("/api/quizzes").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("", controller.Save).Methods("POST")
}
