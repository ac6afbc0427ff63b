package routes

import (
	"net/http"

	"skillforge_server/controllers"
	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterDSARoutes sets up routes for problems and progress under /api/dsa.
// The catch-all {id} route is registered last so /progress wins.
func RegisterDSARoutes(r *mux.Router, dsaService *services.DSAService) {
	controller := controllers.NewDSAController(dsaService)

	dsaRouter := r.PathPrefix("/api/dsa").Subrouter()
	dsaRouter.HandleFunc("", controller.List).Methods("GET")
	dsaRouter.Handle("/progress", middleware.Auth(http.HandlerFunc(controller.Progress))).Methods("GET")
	dsaRouter.Handle("", middleware.Auth(http.HandlerFunc(controller.Add))).Methods("POST")
	dsaRouter.Handle("/{id}/solve", middleware.Auth(http.HandlerFunc(controller.Solve))).Methods("POST")
	dsaRouter.Handle("/{id}/mark", middleware.Auth(http.HandlerFunc(controller.Mark))).Methods("POST")
	dsaRouter.HandleFunc("/{id}", controller.Get).Methods("GET")
}
