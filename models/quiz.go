package models

// QuizQuestion is one generated question with its expected answer
type QuizQuestion struct {
	Question      string `dynamodbav:"question" json:"question"`
	CorrectAnswer string `dynamodbav:"correctAnswer" json:"correctAnswer"`
}

// Quiz defines the structure for saved quizzes
type Quiz struct {
	ID        string         `dynamodbav:"id" json:"id"`
	Title     string         `dynamodbav:"title" json:"title"`
	Questions []QuizQuestion `dynamodbav:"questions" json:"questions"`
	AuthorID  string         `dynamodbav:"authorId" json:"authorId"`
	CreatedAt string         `dynamodbav:"createdAt" json:"createdAt"`

	// Author is populated from the Users table on list paths; never persisted.
	Author *UserSummary `dynamodbav:"-" json:"author,omitempty"`
}

// QuizzesTable is the DynamoDB table name for quizzes
const QuizzesTable = "Quizzes"
