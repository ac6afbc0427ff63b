package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillforge_server/models"
	"skillforge_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ProblemStore persists DSA problems
type ProblemStore interface {
	Put(ctx context.Context, problem *models.DSAProblem) error
	Get(ctx context.Context, id string) (*models.DSAProblem, error)
	List(ctx context.Context, difficulty, tag, search string) ([]models.DSAProblem, error)
}

// CaseResult is the judged outcome of one test case
type CaseResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Output   string `json:"output"`
	Passed   bool   `json:"passed"`
	Status   string `json:"status"`
}

// ProgressItem is a user's progress entry resolved with problem display fields
type ProgressItem struct {
	ProblemID   string `json:"problemId"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Status      string `json:"status"`
	LastAttempt string `json:"lastAttempt"`
}

// DSAService manages the curated problem list, per-user progress, and
// solution checking through the judge
type DSAService struct {
	Problems ProblemStore
	Users    *UserService
	Judge    *Judge0Service
}

// ListProblems returns problems matching the optional filters
func (s *DSAService) ListProblems(ctx context.Context, difficulty, tag, search string) ([]models.DSAProblem, error) {
	return s.Problems.List(ctx, difficulty, tag, search)
}

// GetProblem returns one problem by id
func (s *DSAService) GetProblem(ctx context.Context, id string) (*models.DSAProblem, error) {
	problem, err := s.Problems.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, NotFoundError("Problem not found")
		}
		return nil, err
	}
	return problem, nil
}

// AddProblem stores a new problem
func (s *DSAService) AddProblem(ctx context.Context, problem *models.DSAProblem) (*models.DSAProblem, error) {
	if problem.Title == "" || problem.Description == "" || problem.Difficulty == "" {
		return nil, ValidationError("Title, description, and difficulty are required.")
	}

	problem.ID = uuid.New().String()
	problem.CreatedAt = time.Now().Format(time.RFC3339)
	if err := s.Problems.Put(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// Solve runs the submitted code against every test case of the problem and
// records the attempt in the user's progress: solved when all cases pass,
// bookmarked otherwise.
func (s *DSAService) Solve(ctx context.Context, userID, problemID, code, language string) ([]CaseResult, bool, error) {
	problem, err := s.GetProblem(ctx, problemID)
	if err != nil {
		return nil, false, err
	}
	if len(problem.TestCases) == 0 {
		return nil, false, InvalidStateError("No test cases for this problem.")
	}
	if code == "" || language == "" {
		return nil, false, ValidationError("Code and language required.")
	}
	languageID, ok := Judge0Languages[language]
	if !ok {
		return nil, false, ValidationError("Unsupported language.")
	}

	results := make([]CaseResult, 0, len(problem.TestCases))
	allPassed := true
	for _, tc := range problem.TestCases {
		judged, err := s.Judge.Submit(ctx, code, languageID, tc.Input)
		if err != nil {
			return nil, false, err
		}
		output := strings.TrimSpace(judged.Stdout)
		passed := output != "" && output == strings.TrimSpace(tc.Output)
		if !passed {
			allPassed = false
		}
		results = append(results, CaseResult{
			Input:    tc.Input,
			Expected: tc.Output,
			Output:   output,
			Passed:   passed,
			Status:   judged.Status,
		})
	}

	status := models.DSAStatusBookmarked
	if allPassed {
		status = models.DSAStatusSolved
	}
	if err := s.Users.SetDSAProgress(ctx, userID, problemID, status); err != nil {
		return nil, false, err
	}
	return results, allPassed, nil
}

// Mark sets a user's progress status for a problem
func (s *DSAService) Mark(ctx context.Context, userID, problemID, status string) error {
	if status != models.DSAStatusSolved && status != models.DSAStatusBookmarked {
		return ValidationError("Invalid status")
	}
	return s.Users.SetDSAProgress(ctx, userID, problemID, status)
}

// Progress returns the user's progress entries resolved with problem titles
func (s *DSAService) Progress(ctx context.Context, userID string) ([]ProgressItem, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := []ProgressItem{}
	for _, entry := range user.DSAProgress {
		item := ProgressItem{
			ProblemID:   entry.ProblemID,
			Status:      entry.Status,
			LastAttempt: entry.LastAttempt,
		}
		if problem, err := s.Problems.Get(ctx, entry.ProblemID); err == nil {
			item.Title = problem.Title
			item.Difficulty = problem.Difficulty
		}
		items = append(items, item)
	}
	return items, nil
}

// DynamoProblemStore is the DynamoDB-backed ProblemStore
type DynamoProblemStore struct {
	Dynamo *DynamoService
}

func (st *DynamoProblemStore) Put(ctx context.Context, problem *models.DSAProblem) error {
	return st.Dynamo.PutItem(ctx, models.DSAProblemsTable, problem)
}

func (st *DynamoProblemStore) Get(ctx context.Context, id string) (*models.DSAProblem, error) {
	var problem models.DSAProblem
	if err := st.Dynamo.GetByID(ctx, models.DSAProblemsTable, id, &problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

func (st *DynamoProblemStore) List(ctx context.Context, difficulty, tag, search string) ([]models.DSAProblem, error) {
	search = strings.ToLower(search)

	var problems []models.DSAProblem
	err := st.Dynamo.ScanWithFilter(ctx, models.DSAProblemsTable, func(item map[string]types.AttributeValue) bool {
		if difficulty != "" && utils.ExtractString(item, "difficulty") != difficulty {
			return false
		}
		if tag != "" {
			found := false
			for _, t := range utils.ExtractStringList(item, "tags") {
				if t == tag {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(utils.ExtractString(item, "title")), search) {
			return false
		}
		return true
	}, &problems)
	if err != nil {
		return nil, err
	}
	return problems, nil
}
