package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillforge_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// judgeStub returns a canned stdout per stdin value
func judgeStub(t *testing.T, outputs map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req judge0Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		stdout := outputs[req.Stdin]
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stdout": stdout,
			"status": map[string]string{"description": "Accepted"},
		})
	}))
}

func newTestDSAService(judgeURL string) (*DSAService, *memProblemStore, *memUserStore) {
	problems := newMemProblemStore()
	users := newMemUserStore()
	users.Put(context.Background(), &models.User{ID: "user-a", Name: "Alice"})
	svc := &DSAService{
		Problems: problems,
		Users:    &UserService{Users: users},
		Judge:    &Judge0Service{APIKey: "test-key", BaseURL: judgeURL},
	}
	return svc, problems, users
}

func seedProblem(t *testing.T, svc *DSAService, title, difficulty string, tags []string, cases []models.TestCase) *models.DSAProblem {
	t.Helper()
	problem, err := svc.AddProblem(context.Background(), &models.DSAProblem{
		Title:       title,
		Description: "desc",
		Difficulty:  difficulty,
		Tags:        tags,
		TestCases:   cases,
	})
	require.NoError(t, err)
	return problem
}

func TestAddProblem_Validation(t *testing.T) {
	svc, _, _ := newTestDSAService("")

	_, err := svc.AddProblem(context.Background(), &models.DSAProblem{Title: "Two Sum"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListProblems_Filters(t *testing.T) {
	svc, _, _ := newTestDSAService("")
	ctx := context.Background()

	seedProblem(t, svc, "Two Sum", "easy", []string{"arrays"}, nil)
	seedProblem(t, svc, "Word Ladder", "hard", []string{"graphs"}, nil)

	all, err := svc.ListProblems(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	easy, err := svc.ListProblems(ctx, "easy", "", "")
	require.NoError(t, err)
	require.Len(t, easy, 1)
	assert.Equal(t, "Two Sum", easy[0].Title)

	graphs, err := svc.ListProblems(ctx, "", "graphs", "")
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, "Word Ladder", graphs[0].Title)

	searched, err := svc.ListProblems(ctx, "", "", "ladder")
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Word Ladder", searched[0].Title)
}

func TestGetProblem_NotFound(t *testing.T) {
	svc, _, _ := newTestDSAService("")
	_, err := svc.GetProblem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSolve_AllCasesPass(t *testing.T) {
	server := judgeStub(t, map[string]string{"1 2": "3\n", "4 5": "9\n"})
	defer server.Close()

	svc, _, users := newTestDSAService(server.URL)
	ctx := context.Background()
	problem := seedProblem(t, svc, "Sum", "easy", nil, []models.TestCase{
		{Input: "1 2", Output: "3"},
		{Input: "4 5", Output: "9"},
	})

	results, allPassed, err := svc.Solve(ctx, "user-a", problem.ID, "print(sum())", "python")
	require.NoError(t, err)
	assert.True(t, allPassed)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Passed)
		assert.Equal(t, "Accepted", r.Status)
	}

	user, err := users.Get(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, user.DSAProgress, 1)
	assert.Equal(t, models.DSAStatusSolved, user.DSAProgress[0].Status)
	assert.Equal(t, problem.ID, user.DSAProgress[0].ProblemID)
}

func TestSolve_FailingCaseBookmarks(t *testing.T) {
	server := judgeStub(t, map[string]string{"1 2": "3\n", "4 5": "8\n"})
	defer server.Close()

	svc, _, users := newTestDSAService(server.URL)
	ctx := context.Background()
	problem := seedProblem(t, svc, "Sum", "easy", nil, []models.TestCase{
		{Input: "1 2", Output: "3"},
		{Input: "4 5", Output: "9"},
	})

	results, allPassed, err := svc.Solve(ctx, "user-a", problem.ID, "print(wrong())", "python")
	require.NoError(t, err)
	assert.False(t, allPassed)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)

	user, _ := users.Get(ctx, "user-a")
	require.Len(t, user.DSAProgress, 1)
	assert.Equal(t, models.DSAStatusBookmarked, user.DSAProgress[0].Status)
}

func TestSolve_Validation(t *testing.T) {
	svc, _, _ := newTestDSAService("")
	ctx := context.Background()
	problem := seedProblem(t, svc, "Sum", "easy", nil, []models.TestCase{{Input: "1", Output: "1"}})

	_, _, err := svc.Solve(ctx, "user-a", problem.ID, "", "python")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Solve(ctx, "user-a", problem.ID, "code", "cobol")
	assert.ErrorIs(t, err, ErrValidation)

	empty := seedProblem(t, svc, "No Cases", "easy", nil, nil)
	_, _, err = svc.Solve(ctx, "user-a", empty.ID, "code", "python")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkAndProgress(t *testing.T) {
	svc, _, _ := newTestDSAService("")
	ctx := context.Background()
	problem := seedProblem(t, svc, "Two Sum", "easy", nil, nil)

	err := svc.Mark(ctx, "user-a", problem.ID, "wishlisted")
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Mark(ctx, "user-a", problem.ID, models.DSAStatusBookmarked))

	items, err := svc.Progress(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Two Sum", items[0].Title)
	assert.Equal(t, "easy", items[0].Difficulty)
	assert.Equal(t, models.DSAStatusBookmarked, items[0].Status)

	// Re-marking the same problem replaces the entry instead of appending.
	require.NoError(t, svc.Mark(ctx, "user-a", problem.ID, models.DSAStatusSolved))
	items, err = svc.Progress(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.DSAStatusSolved, items[0].Status)
}
