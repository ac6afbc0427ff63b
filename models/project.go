package models

// Project is a portfolio entry owned by one user
type Project struct {
	ID          string `dynamodbav:"id" json:"id"`
	UserID      string `dynamodbav:"userId" json:"userId"`
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Link        string `dynamodbav:"link,omitempty" json:"link,omitempty"`
	Tech        string `dynamodbav:"tech,omitempty" json:"tech,omitempty"`
	Screenshot  string `dynamodbav:"screenshot,omitempty" json:"screenshot,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// ProjectsTable is the DynamoDB table name for portfolio projects
const ProjectsTable = "Projects"

// ProjectUserIndex is the GSI keyed on the owning user
const ProjectUserIndex = "userId-index"
