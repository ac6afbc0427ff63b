package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"
)

// SkillsController handles profile-level skill matching
type SkillsController struct {
	UserService *services.UserService
}

// NewSkillsController creates a new SkillsController instance
func NewSkillsController(userService *services.UserService) *SkillsController {
	return &SkillsController{UserService: userService}
}

// Match handles POST /api/skills/match
func (sc *SkillsController) Match(w http.ResponseWriter, r *http.Request) {
	matches, err := sc.UserService.MatchBySkills(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to match skills")
		return
	}
	WriteJSONResponse(w, http.StatusOK, matches)
}
