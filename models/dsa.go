package models

// TestCase is a single input/expected-output pair for a problem
type TestCase struct {
	Input  string `dynamodbav:"input" json:"input"`
	Output string `dynamodbav:"output" json:"output"`
}

// DSAProblem defines the structure for curated DSA problems
type DSAProblem struct {
	ID          string     `dynamodbav:"id" json:"id"`
	Title       string     `dynamodbav:"title" json:"title"`
	Description string     `dynamodbav:"description" json:"description"`
	Difficulty  string     `dynamodbav:"difficulty" json:"difficulty"`
	Tags        []string   `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	Solution    string     `dynamodbav:"solution,omitempty" json:"solution,omitempty"`
	TestCases   []TestCase `dynamodbav:"testCases,omitempty" json:"testCases,omitempty"`
	CreatedAt   string     `dynamodbav:"createdAt" json:"createdAt"`
}

// DSAProblemsTable is the DynamoDB table name for DSA problems
const DSAProblemsTable = "DSAProblems"
