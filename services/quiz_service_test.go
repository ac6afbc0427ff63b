package services

import (
	"context"
	"testing"

	"skillforge_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(aiURL string) (*QuizService, *memQuizStore, *memUserStore) {
	quizzes := newMemQuizStore()
	users := newMemUserStore()
	users.Put(context.Background(), &models.User{ID: "user-a", Name: "Alice"})
	svc := &QuizService{
		Quizzes: quizzes,
		Users:   &UserService{Users: users},
		AI:      &AIService{APIKey: "sk-test", BaseURL: aiURL},
	}
	return svc, quizzes, users
}

func TestQuizGenerate_RejectsBlankTopic(t *testing.T) {
	svc, _, _ := newTestQuizService("")

	_, err := svc.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuizGenerate(t *testing.T) {
	server := chatStub(t, `[{"question": "What is SQL?", "correctAnswer": "A query language"}]`, nil)
	defer server.Close()

	svc, _, _ := newTestQuizService(server.URL)
	questions, err := svc.Generate(context.Background(), "SQL")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is SQL?", questions[0].Question)
}

func TestQuizSave_RecordsActivity(t *testing.T) {
	svc, quizzes, users := newTestQuizService("")
	ctx := context.Background()

	_, err := svc.Save(ctx, "user-a", "", nil)
	assert.ErrorIs(t, err, ErrValidation)

	questions := []models.QuizQuestion{{Question: "Q", CorrectAnswer: "A"}}
	quiz, err := svc.Save(ctx, "user-a", "SQL Basics", questions)
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "user-a", quiz.AuthorID)

	stored, err := quizzes.Get(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "SQL Basics", stored.Title)

	user, _ := users.Get(ctx, "user-a")
	require.Len(t, user.RecentActivity, 1)
	assert.Equal(t, models.ActivityTypeQuiz, user.RecentActivity[0].Type)
	assert.Equal(t, "Created quiz: SQL Basics", user.RecentActivity[0].Description)
}

func TestQuizList_PopulatesAuthor(t *testing.T) {
	svc, _, _ := newTestQuizService("")
	ctx := context.Background()

	_, err := svc.Save(ctx, "user-a", "SQL Basics", []models.QuizQuestion{{Question: "Q", CorrectAnswer: "A"}})
	require.NoError(t, err)

	quizzes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	require.NotNil(t, quizzes[0].Author)
	assert.Equal(t, "Alice", quizzes[0].Author.Name)
}

func TestGetQuiz_NotFound(t *testing.T) {
	svc, _, _ := newTestQuizService("")
	_, err := svc.GetQuiz(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizCheckAnswer_Validation(t *testing.T) {
	svc, _, _ := newTestQuizService("")
	_, _, err := svc.CheckAnswer(context.Background(), "Q", "", "B")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuizCheckAnswer(t *testing.T) {
	server := chatStub(t, "Correct! SQL is indeed a query language.", nil)
	defer server.Close()

	svc, _, _ := newTestQuizService(server.URL)
	feedback, correct, err := svc.CheckAnswer(context.Background(), "What is SQL?", "A query language", "query language")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Contains(t, feedback, "Correct")
}
