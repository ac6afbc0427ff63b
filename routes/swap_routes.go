package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwapRoutes sets up routes for the swap request lifecycle under /api/swaps
func RegisterSwapRoutes(r *mux.Router, swapService *services.SwapService) {
	controller := controllers.NewSwapController(swapService)

	swapRouter := r.PathPrefix("/api/swaps").Subrouter()
	swapRouter.Use(middleware.Auth)
	swapRouter.HandleFunc("/request", controller.Request).Methods("POST")
	swapRouter.HandleFunc("", controller.List).Methods("GET")
	swapRouter.HandleFunc("/{id}/endorse", controller.Endorse).Methods("POST")
	swapRouter.HandleFunc("/{id}", controller.SetStatus).Methods("PUT")
}
