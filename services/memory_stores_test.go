package services

import (
	"context"
	"strings"
	"sync"

	"skillforge_server/models"
)

// In-memory stores mirroring the conditional-write semantics of the
// DynamoDB-backed implementations.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (m *memUserStore) Put(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *memUserStore) Get(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &user, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrItemNotFound
}

func (m *memUserStore) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, user)
	}
	return out, nil
}

type memOfferStore struct {
	mu     sync.Mutex
	offers map[string]models.SkillOffer
}

func newMemOfferStore() *memOfferStore {
	return &memOfferStore{offers: map[string]models.SkillOffer{}}
}

func (m *memOfferStore) Put(_ context.Context, offer *models.SkillOffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *offer
	stored.User = nil
	m.offers[offer.ID] = stored
	return nil
}

func (m *memOfferStore) Get(_ context.Context, id string) (*models.SkillOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	offer, ok := m.offers[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &offer, nil
}

func (m *memOfferStore) ListByStatus(_ context.Context, status string) ([]models.SkillOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.SkillOffer
	for _, offer := range m.offers {
		if offer.Status == status {
			out = append(out, offer)
		}
	}
	return out, nil
}

func (m *memOfferStore) CountByUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, offer := range m.offers {
		if offer.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *memOfferStore) Delete(_ context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	offer, ok := m.offers[id]
	if !ok || offer.UserID != ownerID {
		return ErrConditionFailed
	}
	delete(m.offers, id)
	return nil
}

// UpdatePair checks both expectations under one lock and applies both
// transitions or neither, like the TransactWriteItems-backed store.
func (m *memOfferStore) UpdatePair(_ context.Context, a, b OfferUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range []OfferUpdate{a, b} {
		offer, ok := m.offers[u.ID]
		if !ok || offer.Status != u.ExpectStatus || offer.MatchedWith != u.ExpectMatchedWith {
			return ErrConditionFailed
		}
	}
	for _, u := range []OfferUpdate{a, b} {
		offer := m.offers[u.ID]
		offer.Status = u.NewStatus
		offer.MatchedWith = u.NewMatchedWith
		m.offers[u.ID] = offer
	}
	return nil
}

type memSwapStore struct {
	mu    sync.Mutex
	swaps map[string]models.Swap
}

func newMemSwapStore() *memSwapStore {
	return &memSwapStore{swaps: map[string]models.Swap{}}
}

func (m *memSwapStore) Put(_ context.Context, swap *models.Swap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *swap
	stored.Requester = nil
	stored.Responder = nil
	m.swaps[swap.ID] = stored
	return nil
}

func (m *memSwapStore) Get(_ context.Context, id string) (*models.Swap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	swap, ok := m.swaps[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &swap, nil
}

func (m *memSwapStore) ListByUser(_ context.Context, userID string) ([]models.Swap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Swap
	for _, swap := range m.swaps {
		if swap.RequesterID == userID || swap.ResponderID == userID {
			out = append(out, swap)
		}
	}
	return out, nil
}

type memProjectStore struct {
	mu       sync.Mutex
	projects map[string]models.Project
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{projects: map[string]models.Project{}}
}

func (m *memProjectStore) Put(_ context.Context, project *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[project.ID] = *project
	return nil
}

func (m *memProjectStore) Get(_ context.Context, id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	project, ok := m.projects[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &project, nil
}

func (m *memProjectStore) ListByUser(_ context.Context, userID string) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Project
	for _, project := range m.projects {
		if project.UserID == userID {
			out = append(out, project)
		}
	}
	return out, nil
}

func (m *memProjectStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, id)
	return nil
}

type memQuizStore struct {
	mu      sync.Mutex
	quizzes map[string]models.Quiz
}

func newMemQuizStore() *memQuizStore {
	return &memQuizStore{quizzes: map[string]models.Quiz{}}
}

func (m *memQuizStore) Put(_ context.Context, quiz *models.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *quiz
	stored.Author = nil
	m.quizzes[quiz.ID] = stored
	return nil
}

func (m *memQuizStore) Get(_ context.Context, id string) (*models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quiz, ok := m.quizzes[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &quiz, nil
}

func (m *memQuizStore) List(_ context.Context) ([]models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Quiz, 0, len(m.quizzes))
	for _, quiz := range m.quizzes {
		out = append(out, quiz)
	}
	return out, nil
}

type memProblemStore struct {
	mu       sync.Mutex
	problems map[string]models.DSAProblem
}

func newMemProblemStore() *memProblemStore {
	return &memProblemStore{problems: map[string]models.DSAProblem{}}
}

func (m *memProblemStore) Put(_ context.Context, problem *models.DSAProblem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.problems[problem.ID] = *problem
	return nil
}

func (m *memProblemStore) Get(_ context.Context, id string) (*models.DSAProblem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	problem, ok := m.problems[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &problem, nil
}

func (m *memProblemStore) List(_ context.Context, difficulty, tag, search string) ([]models.DSAProblem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DSAProblem
	for _, problem := range m.problems {
		if difficulty != "" && problem.Difficulty != difficulty {
			continue
		}
		if tag != "" && !contains(problem.Tags, tag) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(problem.Title), strings.ToLower(search)) {
			continue
		}
		out = append(out, problem)
	}
	return out, nil
}
