package controllers

import (
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/models"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

// QuizController handles HTTP requests for quiz generation and storage
type QuizController struct {
	QuizService *services.QuizService
}

// NewQuizController creates a new QuizController instance
func NewQuizController(quizService *services.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type generateQuizRequest struct {
	Topic string `json:"topic"`
}

type saveQuizRequest struct {
	Title     string                `json:"title"`
	Questions []models.QuizQuestion `json:"questions"`
}

type aiCheckRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
}

// Generate handles POST /api/quizzes/generate
func (qc *QuizController) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateQuizRequest
	if !decodeBody(w, r, &body) {
		return
	}

	quiz, err := qc.QuizService.Generate(r.Context(), body.Topic)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to generate quiz")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"quiz": quiz})
}

// Save handles POST /api/quizzes
func (qc *QuizController) Save(w http.ResponseWriter, r *http.Request) {
	var body saveQuizRequest
	if !decodeBody(w, r, &body) {
		return
	}

	quiz, err := qc.QuizService.Save(r.Context(), middleware.UserID(r.Context()), body.Title, body.Questions)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to save quiz")
		return
	}
	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"quiz": quiz})
}

// List handles GET /api/quizzes
func (qc *QuizController) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := qc.QuizService.List(r.Context())
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch quizzes")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
}

// Get handles GET /api/quizzes/{id}
func (qc *QuizController) Get(w http.ResponseWriter, r *http.Request) {
	quiz, err := qc.QuizService.GetQuiz(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch quiz")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"quiz": quiz})
}

// AICheck handles POST /api/quizzes/ai-check
func (qc *QuizController) AICheck(w http.ResponseWriter, r *http.Request) {
	var body aiCheckRequest
	if !decodeBody(w, r, &body) {
		return
	}

	feedback, isCorrect, err := qc.QuizService.CheckAnswer(r.Context(), body.Question, body.CorrectAnswer, body.UserAnswer)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to check answer")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"feedback":  feedback,
		"isCorrect": isCorrect,
	})
}
