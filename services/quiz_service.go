package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"skillforge_server/models"

	"github.com/google/uuid"
)

// QuizStore persists quizzes
type QuizStore interface {
	Put(ctx context.Context, quiz *models.Quiz) error
	Get(ctx context.Context, id string) (*models.Quiz, error)
	List(ctx context.Context) ([]models.Quiz, error)
}

// QuizService generates quizzes through the AI client and manages saved ones
type QuizService struct {
	Quizzes QuizStore
	Users   *UserService
	AI      *AIService
}

// Generate produces quiz questions for a topic
func (s *QuizService) Generate(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ValidationError("Topic is required and cannot be empty or whitespace.")
	}
	return s.AI.GenerateQuiz(ctx, topic)
}

// Save stores a quiz and records the creation in the author's activity feed
func (s *QuizService) Save(ctx context.Context, userID, title string, questions []models.QuizQuestion) (*models.Quiz, error) {
	if title == "" || len(questions) == 0 {
		return nil, ValidationError("Title and questions are required.")
	}

	quiz := &models.Quiz{
		ID:        uuid.New().String(),
		Title:     title,
		Questions: questions,
		AuthorID:  userID,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.Quizzes.Put(ctx, quiz); err != nil {
		return nil, err
	}

	if err := s.Users.RecordActivity(ctx, userID, models.ActivityTypeQuiz, "Created quiz: "+title); err != nil {
		log.Printf("Failed to record quiz activity for user %s: %v", userID, err)
	}
	return quiz, nil
}

// List returns all quizzes with their authors populated
func (s *QuizService) List(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := s.Quizzes.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		if author, err := s.Users.Users.Get(ctx, quizzes[i].AuthorID); err == nil {
			summary := author.Summary()
			quizzes[i].Author = &summary
		}
	}
	return quizzes, nil
}

// GetQuiz returns one quiz by id
func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Quizzes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, NotFoundError("Quiz not found")
		}
		return nil, err
	}
	return quiz, nil
}

// CheckAnswer grades a user's answer with the AI client
func (s *QuizService) CheckAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (string, bool, error) {
	if question == "" || correctAnswer == "" || userAnswer == "" {
		return "", false, ValidationError("Missing fields")
	}
	return s.AI.CheckAnswer(ctx, question, correctAnswer, userAnswer)
}

// DynamoQuizStore is the DynamoDB-backed QuizStore
type DynamoQuizStore struct {
	Dynamo *DynamoService
}

func (st *DynamoQuizStore) Put(ctx context.Context, quiz *models.Quiz) error {
	return st.Dynamo.PutItem(ctx, models.QuizzesTable, quiz)
}

func (st *DynamoQuizStore) Get(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := st.Dynamo.GetByID(ctx, models.QuizzesTable, id, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (st *DynamoQuizStore) List(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := st.Dynamo.ScanWithFilter(ctx, models.QuizzesTable, nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}
