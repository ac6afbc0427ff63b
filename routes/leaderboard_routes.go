package routes

import (
	"skillforge_server/controllers"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// RegisterLeaderboardRoutes sets up the leaderboard route under /api/leaderboard
func RegisterLeaderboardRoutes(r *mux.Router, leaderboardService *services.LeaderboardService) {
	controller := controllers.NewLeaderboardController(leaderboardService)

	r.HandleFunc("/api/leaderboard", controller.Get).Methods("GET")
}
