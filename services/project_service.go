package services

import (
	"context"
	"sort"
	"time"

	"skillforge_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ProjectStore persists portfolio projects
type ProjectStore interface {
	Put(ctx context.Context, project *models.Project) error
	Get(ctx context.Context, id string) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService manages a user's portfolio projects
type ProjectService struct {
	Projects ProjectStore
	Storage  *S3Service
}

// ProjectInput carries the caller-editable project fields
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Tech        string `json:"tech"`
}

// List returns the user's projects, newest first
func (s *ProjectService) List(ctx context.Context, userID string) ([]models.Project, error) {
	projects, err := s.Projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt > projects[j].CreatedAt
	})
	return projects, nil
}

// Create stores a new project for the user
func (s *ProjectService) Create(ctx context.Context, userID string, input ProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, ValidationError("Title is required.")
	}

	project := &models.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Tech:        input.Tech,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := s.Projects.Put(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces the editable fields of a project owned by userID
func (s *ProjectService) Update(ctx context.Context, userID, projectID string, input ProjectInput) (*models.Project, error) {
	project, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Link = input.Link
	project.Tech = input.Tech
	if err := s.Projects.Put(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project owned by userID
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}
	return s.Projects.Delete(ctx, projectID)
}

// AttachScreenshot uploads the screenshot and stores its key on the project.
// An upload without a file clears the stored screenshot.
func (s *ProjectService) AttachScreenshot(ctx context.Context, userID, projectID, fileName string, fileData []byte) (*models.Project, error) {
	project, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	key := ""
	if len(fileData) > 0 && fileName != "" {
		key, err = s.Storage.UploadScreenshot(ctx, fileName, fileData)
		if err != nil {
			return nil, err
		}
	}

	project.Screenshot = key
	if err := s.Projects.Put(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ownedProject loads a project and checks it belongs to userID. Misses and
// foreign projects both surface as not found.
func (s *ProjectService) ownedProject(ctx context.Context, userID, projectID string) (*models.Project, error) {
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, notFoundOrErr(err, "Project not found")
	}
	if project.UserID != userID {
		return nil, NotFoundError("Project not found")
	}
	return project, nil
}

// DynamoProjectStore is the DynamoDB-backed ProjectStore
type DynamoProjectStore struct {
	Dynamo *DynamoService
}

func (st *DynamoProjectStore) Put(ctx context.Context, project *models.Project) error {
	return st.Dynamo.PutItem(ctx, models.ProjectsTable, project)
}

func (st *DynamoProjectStore) Get(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := st.Dynamo.GetByID(ctx, models.ProjectsTable, id, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (st *DynamoProjectStore) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := st.Dynamo.QueryItemsWithIndex(ctx, models.ProjectsTable, models.ProjectUserIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&projects,
	)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (st *DynamoProjectStore) Delete(ctx context.Context, id string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	return st.Dynamo.DeleteItem(ctx, models.ProjectsTable, key, "", nil)
}
