package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// SkillSwapController handles HTTP requests for the offer matching engine
type SkillSwapController struct {
	SkillSwapService *services.SkillSwapService
}

// NewSkillSwapController creates a new SkillSwapController instance
func NewSkillSwapController(skillSwapService *services.SkillSwapService) *SkillSwapController {
	return &SkillSwapController{SkillSwapService: skillSwapService}
}

type createOfferRequest struct {
	Offer   string `json:"offer"`
	Request string `json:"request"`
}

type proposeRequest struct {
	TargetID string `json:"targetId"`
}

// ListOpen handles GET /api/skillswap
func (sc *SkillSwapController) ListOpen(w http.ResponseWriter, r *http.Request) {
	offers, err := sc.SkillSwapService.ListOpen(r.Context())
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch skill swaps")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"offers": offers})
}

// Create handles POST /api/skillswap; the response carries the new offer and
// the complementary open offers found for it
func (sc *SkillSwapController) Create(w http.ResponseWriter, r *http.Request) {
	var body createOfferRequest
	if !decodeBody(w, r, &body) {
		return
	}

	offer, matches, err := sc.SkillSwapService.CreateOffer(r.Context(), middleware.UserID(r.Context()), body.Offer, body.Request)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to create skill swap")
		return
	}

	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"skillSwap": offer,
		"matches":   matches,
	})
}

// Propose handles POST /api/skillswap/{id}/propose
func (sc *SkillSwapController) Propose(w http.ResponseWriter, r *http.Request) {
	var body proposeRequest
	if !decodeBody(w, r, &body) {
		return
	}

	myOffer, targetOffer, err := sc.SkillSwapService.Propose(r.Context(), mux.Vars(r)["id"], body.TargetID, middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to propose swap")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message":     "Swap proposed",
		"myOffer":     myOffer,
		"targetOffer": targetOffer,
	})
}

// Accept handles POST /api/skillswap/{id}/accept
func (sc *SkillSwapController) Accept(w http.ResponseWriter, r *http.Request) {
	myOffer, otherOffer, err := sc.SkillSwapService.Accept(r.Context(), mux.Vars(r)["id"], middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to accept swap")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message":    "Swap accepted",
		"myOffer":    myOffer,
		"otherOffer": otherOffer,
	})
}

// Decline handles POST /api/skillswap/{id}/decline
func (sc *SkillSwapController) Decline(w http.ResponseWriter, r *http.Request) {
	myOffer, otherOffer, err := sc.SkillSwapService.Decline(r.Context(), mux.Vars(r)["id"], middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to decline swap")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message":    "Swap declined",
		"myOffer":    myOffer,
		"otherOffer": otherOffer,
	})
}

// Delete handles DELETE /api/skillswap/{id}
func (sc *SkillSwapController) Delete(w http.ResponseWriter, r *http.Request) {
	err := sc.SkillSwapService.DeleteOffer(r.Context(), mux.Vars(r)["id"], middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to delete skill swap")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Skill swap deleted"})
}
