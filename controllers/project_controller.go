package controllers

import (
	"io"
	"net/http"

	"skillforge_server/middleware"
	"skillforge_server/services"

	"github.com/gorilla/mux"
)

const maxScreenshotSize = 5 << 20 // 5 MiB

// ProjectController handles HTTP requests for portfolio projects
type ProjectController struct {
	ProjectService *services.ProjectService
}

// NewProjectController creates a new ProjectController instance
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// List handles GET /api/projects
func (pc *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	projects, err := pc.ProjectService.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		WriteErrorResponse(w, err, "Failed to fetch projects")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// Create handles POST /api/projects
func (pc *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.ProjectInput
	if !decodeBody(w, r, &body) {
		return
	}

	project, err := pc.ProjectService.Create(r.Context(), middleware.UserID(r.Context()), body)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to create project")
		return
	}
	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"project": project})
}

// Update handles PUT /api/projects/{id}
func (pc *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	var body services.ProjectInput
	if !decodeBody(w, r, &body) {
		return
	}

	project, err := pc.ProjectService.Update(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], body)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to update project")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"project": project})
}

// Delete handles DELETE /api/projects/{id}
func (pc *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	err := pc.ProjectService.Delete(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		WriteErrorResponse(w, err, "Failed to delete project")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// Screenshot handles POST /api/projects/{id}/screenshot. The multipart form
// carries the image under "screenshot"; a request without a file clears the
// stored screenshot.
func (pc *ProjectController) Screenshot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxScreenshotSize); err != nil {
		WriteErrorResponse(w, services.ValidationError("Invalid upload"), "")
		return
	}

	var fileName string
	var fileData []byte
	if file, header, err := r.FormFile("screenshot"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxScreenshotSize))
		if err != nil {
			WriteErrorResponse(w, err, "Failed to read uploaded file")
			return
		}
		fileName = header.Filename
		fileData = data
	}

	project, err := pc.ProjectService.AttachScreenshot(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], fileName, fileData)
	if err != nil {
		WriteErrorResponse(w, err, "Failed to upload screenshot")
		return
	}
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"project": project})
}
