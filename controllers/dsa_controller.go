package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/models"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// DSAController handles HTTP requests for the problem list and progress
type DSAController struct {
	DSAService *services.DSAService
}

// NewDSAController creates a new DSAController instance
func NewDSAController(dsaService *services.DSAService) *DSAController {
	return &DSAController{DSAService: dsaService}
}

type addProblemRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty"`
	Tags        []string          `json:"tags"`
	Solution    string            `json:"solution"`
	TestCases   []models.TestCase `json:"testCases"`
}

type solveRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type markRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/dsa with optional difficulty/tag/search filters
func (dc *DSAController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	problems, err := dc.DSAService.ListProblems(r.Context(), query.Get("difficulty"), query.Get("tag"), query.Get("search"))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch problems")
		return
	}
	WriteJSONResponse(w, http.StatusOK, problems)
}

// Progress handles GET /api/dsa/progress
func (dc *DSAController) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := dc.DSAService.Progress(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch progress")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

// Get handles GET /api/dsa/{id}
func (dc *DSAController) Get(w http.ResponseWriter, r *http.Request) {
	problem, err := dc.DSAService.GetProblem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch problem")
		return
	}
	WriteJSONResponse(w, http.StatusOK, problem)
}

// Add handles POST /api/dsa
func (dc *DSAController) Add(w http.ResponseWriter, r *http.Request) {
	var body addProblemRequest
	if !decodeBody(w, r, &body) {
		return
	}

	problem, err := dc.DSAService.AddProblem(r.Context(), &models.DSAProblem{
		Title:       body.Title,
		Description: body.Description,
		Difficulty:  body.Difficulty,
		Tags:        body.Tags,
		Solution:    body.Solution,
		TestCases:   body.TestCases,
	})
	if err != nil {
		WriteErrorResponse(w, err, "Failed to add problem")
		return
	}
	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"problem": problem})
}

// Solve handles POST /api/dsa/{id}/solve
func (dc *DSAController) Solve(w http.ResponseWriter, r *http.Request) {
	var body solveRequest
	if !decodeBody(w, r, &body) {
		return
	}

	results, allPassed, err := dc.DSAService.Solve(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], body.Code, body.Language)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to check solution")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"allPassed": allPassed,
		"results":   results,
	})
}

// Mark handles POST /api/dsa/{id}/mark
func (dc *DSAController) Mark(w http.ResponseWriter, r *http.Request) {
	var body markRequest
	if !decodeBody(w, r, &body) {
		return
	}

	if err := dc.DSAService.Mark(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], body.Status); err != nil {
		WriteErrorResponse(w, err, "Failed to update progress")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Problem marked as " + body.Status})
}
