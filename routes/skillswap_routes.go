package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterSkillSwapRoutes sets up routes for the offer matching engine under
// /api/skillswap
func RegisterSkillSwapRoutes(r *mux.Router, skillSwapService *services.SkillSwapService) {
	controller := controllers.NewSkillSwapController(skillSwapService)

	swapRouter := r.PathPrefix("/api/skillswap").Subrouter()
	swapRouter.Use(middleware.Auth)
	swapRouter.HandleFunc("", controller.ListOpen).Methods("GET")
	swapRouter.HandleFunc("", controller.Create).Methods("POST")
	swapRouter.HandleFunc("/{id}/propose", controller.Propose).Methods("POST")
	swapRouter.HandleFunc("/{id}/accept", controller.Accept).Methods("POST")
	swapRouter.HandleFunc("/{id}/decline", controller.Decline).Methods("POST")
	swapRouter.HandleFunc("/{id}", controller.Delete).Methods("DELETE")
}
