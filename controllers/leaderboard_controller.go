package controllers

import (
	"net/http"

	"skillforge_server/services"
)

// LeaderboardController handles leaderboard reads
type LeaderboardController struct {
	LeaderboardService *services.LeaderboardService
}

// NewLeaderboardController creates a new LeaderboardController instance
func NewLeaderboardController(leaderboardService *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// Get handles GET /api/leaderboard with an optional skill filter
func (lc *LeaderboardController) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := lc.LeaderboardService.GetLeaderboard(r.Context(), r.URL.Query().Get("skill"))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch leaderboard")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
