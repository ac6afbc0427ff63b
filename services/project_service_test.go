package services

import (
	"context"
	"testing"

	"skillforge_server/models"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s3Recorder captures PutObject keys without touching the network
type s3Recorder struct {
	keys []string
}

func (r *s3Recorder) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.keys = append(r.keys, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func newTestProjectService() (*ProjectService, *memProjectStore, *s3Recorder) {
	projects := newMemProjectStore()
	recorder := &s3Recorder{}
	svc := &ProjectService{
		Projects: projects,
		Storage:  &S3Service{Client: recorder, Bucket: "test-bucket"},
	}
	return svc, projects, recorder
}

func projectFixture(id, userID, title, createdAt string) *models.Project {
	return &models.Project{ID: id, UserID: userID, Title: title, CreatedAt: createdAt}
}

func TestProjectCreate(t *testing.T) {
	svc, _, _ := newTestProjectService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-a", ProjectInput{Description: "no title"})
	assert.ErrorIs(t, err, ErrValidation)

	project, err := svc.Create(ctx, "user-a", ProjectInput{
		Title:       "Portfolio Site",
		Description: "Personal site",
		Link:        "https://example.com",
		Tech:        "Go, React",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "user-a", project.UserID)
	assert.Equal(t, "Go, React", project.Tech)
	assert.NotEmpty(t, project.CreatedAt)
}

func TestProjectList_OwnProjectsNewestFirst(t *testing.T) {
	svc, store, _ := newTestProjectService()
	ctx := context.Background()

	store.Put(ctx, projectFixture("p1", "user-a", "Old", "2024-01-01T00:00:00Z"))
	store.Put(ctx, projectFixture("p2", "user-a", "New", "2025-01-01T00:00:00Z"))
	store.Put(ctx, projectFixture("p3", "user-b", "Other", "2025-06-01T00:00:00Z"))

	projects, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "New", projects[0].Title)
	assert.Equal(t, "Old", projects[1].Title)
}

func TestProjectUpdate_OwnerOnly(t *testing.T) {
	svc, _, _ := newTestProjectService()
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-a", ProjectInput{Title: "Site"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-b", project.ID, ProjectInput{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "user-a", "missing", ProjectInput{Title: "Site"})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(ctx, "user-a", project.ID, ProjectInput{Title: "Site v2", Tech: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "Site v2", updated.Title)
	assert.Equal(t, "Go", updated.Tech)
}

func TestProjectDelete_OwnerOnly(t *testing.T) {
	svc, store, _ := newTestProjectService()
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-a", ProjectInput{Title: "Site"})
	require.NoError(t, err)

	err = svc.Delete(ctx, "user-b", project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "user-a", project.ID))
	_, err = store.Get(ctx, project.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestProjectAttachScreenshot(t *testing.T) {
	svc, store, recorder := newTestProjectService()
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-a", ProjectInput{Title: "Site"})
	require.NoError(t, err)

	_, err = svc.AttachScreenshot(ctx, "user-b", project.ID, "shot.png", []byte("img"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, recorder.keys)

	updated, err := svc.AttachScreenshot(ctx, "user-a", project.ID, "shot.png", []byte("img"))
	require.NoError(t, err)
	require.Len(t, recorder.keys, 1)
	assert.Contains(t, recorder.keys[0], "screenshots/")
	assert.Contains(t, recorder.keys[0], "shot.png")
	assert.Equal(t, recorder.keys[0], updated.Screenshot)

	// An upload without a file clears the stored screenshot.
	updated, err = svc.AttachScreenshot(ctx, "user-a", project.ID, "", nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Screenshot)

	stored, _ := store.Get(ctx, project.ID)
	assert.Empty(t, stored.Screenshot)
}
