package controllers

import (
	"io"
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"
)

const maxResumeSize = 10 << 20 // 10 MiB

// ResumeController handles resume uploads and analysis
type ResumeController struct {
	ResumeService *services.ResumeService
}

// NewResumeController creates a new ResumeController instance
func NewResumeController(resumeService *services.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Upload handles POST /api/resume/upload. The multipart form carries the
// resume file under "resume" and the extracted text under "text".
func (rc *ResumeController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		WriteErrorResponse(w, services.ValidationError("No file uploaded"), "")
		return
	}

	var fileName string
	var fileData []byte
	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
		if err != nil {
			WriteErrorResponse(w, err, "Failed to read uploaded file")
			return
		}
		fileName = header.Filename
		fileData = data
	}

	analysis, err := rc.ResumeService.Analyze(r.Context(), middleware.UserID(r.Context()), fileName, fileData, r.FormValue("text"))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to analyze resume")
		return
	}
	WriteJSONResponse(w, http.StatusOK, analysis)
}
