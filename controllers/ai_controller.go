package controllers

import (
	"encoding/json"
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"
)

// AIController handles HTTP requests for the AI-backed features
type AIController struct {
	AIService   *services.AIService
	UserService *services.UserService
}

// NewAIController creates a new AIController instance
func NewAIController(aiService *services.AIService, userService *services.UserService) *AIController {
	return &AIController{AIService: aiService, UserService: userService}
}

type chatRequest struct {
	Message string `json:"message"`
}

type roadmapRequest struct {
	Text string `json:"text"`
}

type feedbackRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Chat handles POST /api/ai/chat
func (ac *AIController) Chat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Message == "" {
		WriteJSONResponse(w, http.StatusBadRequest, map[string]string{"reply": "Please enter a message.", "code": "validation_error"})
		return
	}

	reply, err := ac.AIService.Chat(r.Context(), body.Message)
	if err != nil {
		WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{"reply": "Sorry, I couldn't process your request.", "code": "server_error"})
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"reply": reply})
}

// Roadmap handles POST /api/ai/roadmap
func (ac *AIController) Roadmap(w http.ResponseWriter, r *http.Request) {
	var body roadmapRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Text == "" {
		WriteErrorResponse(w, services.ValidationError("No resume text provided"), "")
		return
	}

	roadmap, err := ac.AIService.GenerateRoadmap(r.Context(), body.Text)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to generate roadmap")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"roadmap": roadmap})
}

// MockInterview handles POST /api/ai/mockinterview, generating questions
// from the user's saved resume text
func (ac *AIController) MockInterview(w http.ResponseWriter, r *http.Request) {
	user, err := ac.UserService.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to generate mock interview questions")
		return
	}
	if user.ResumeText == "" {
		WriteErrorResponse(w, services.ValidationError("No resume data found. Please scan your resume first."), "")
		return
	}

	resumeData, _ := json.Marshal(map[string]string{"resume": user.ResumeText})
	questions, err := ac.AIService.MockInterviewQuestions(r.Context(), string(resumeData))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to generate mock interview questions")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// InterviewFeedback handles POST /api/ai/interview-feedback
func (ac *AIController) InterviewFeedback(w http.ResponseWriter, r *http.Request) {
	var body feedbackRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Question == "" || body.Answer == "" {
		WriteErrorResponse(w, services.ValidationError("Question and answer are required."), "")
		return
	}

	feedback, err := ac.AIService.InterviewFeedback(r.Context(), body.Question, body.Answer)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to generate feedback.")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"feedback": feedback})
}
