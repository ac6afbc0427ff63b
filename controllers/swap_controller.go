package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// SwapController handles HTTP requests for the swap request lifecycle
type SwapController struct {
	SwapService *services.SwapService
}

// NewSwapController creates a new SwapController instance
func NewSwapController(swapService *services.SwapService) *SwapController {
	return &SwapController{SwapService: swapService}
}

type swapRequestBody struct {
	ResponderID string `json:"responderId"`
	Skill       string `json:"skill"`
	Hours       int    `json:"hours"`
}

type endorseRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// Request handles POST /api/swaps/request
func (sc *SwapController) Request(w http.ResponseWriter, r *http.Request) {
	var body swapRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	swap, err := sc.SwapService.Request(r.Context(), middleware.UserID(r.Context()), body.ResponderID, body.Skill, body.Hours)
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusCreated, swap)
}

// List handles GET /api/swaps
func (sc *SwapController) List(w http.ResponseWriter, r *http.Request) {
	swaps, err := sc.SwapService.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusOK, swaps)
}

// Endorse handles POST /api/swaps/{id}/endorse
func (sc *SwapController) Endorse(w http.ResponseWriter, r *http.Request) {
	var body endorseRequest
	if !decodeBody(w, r, &body) {
		return
	}

	swap, err := sc.SwapService.Endorse(r.Context(), mux.Vars(r)["id"], middleware.UserID(r.Context()), body.Comment, body.Rating)
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusOK, swap)
}

// SetStatus handles PUT /api/swaps/{id}
func (sc *SwapController) SetStatus(w http.ResponseWriter, r *http.Request) {
	var body setStatusRequest
	if !decodeBody(w, r, &body) {
		return
	}

	swap, err := sc.SwapService.SetStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		WriteErrorResponse(w, err, "Server error")
		return
	}
	WriteJSONResponse(w, http.StatusOK, swap)
}
