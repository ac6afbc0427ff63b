package services

import (
	"context"
	"errors"
	"time"

	"skillforge_server/models"
	"skillforge_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserStore persists user accounts
type UserStore interface {
	Put(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserService handles registration, login, and profile reads
type UserService struct {
	Users UserStore
}

// Register creates a new account and returns it with a signed token
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ValidationError("Name, email and password are required.")
	}

	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.Users.Put(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns the account with a signed token
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ValidationError("Email and password are required.")
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", UnauthorizedError("Invalid credentials")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", UnauthorizedError("Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns an account by id
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, NotFoundError("User not found")
		}
		return nil, err
	}
	return user, nil
}

// SkillMatch is one user surfaced by the profile-level skill matching
type SkillMatch struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Bio           string   `json:"bio,omitempty"`
	SkillsOffered []string `json:"skillsOffered,omitempty"`
	SkillsWanted  []string `json:"skillsWanted,omitempty"`
}

// MatchBySkills finds users who offer something the caller wants and want
// something the caller offers. Unlike the offer engine this matches on the
// profile skill lists, where any overlap on both sides counts.
func (s *UserService) MatchBySkills(ctx context.Context, userID string) ([]SkillMatch, error) {
	me, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := []SkillMatch{}
	for _, u := range users {
		if u.ID == me.ID {
			continue
		}
		if !intersects(u.SkillsOffered, me.SkillsWanted) || !intersects(u.SkillsWanted, me.SkillsOffered) {
			continue
		}
		matches = append(matches, SkillMatch{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Bio:           u.Bio,
			SkillsOffered: u.SkillsOffered,
			SkillsWanted:  u.SkillsWanted,
		})
	}
	return matches, nil
}

func intersects(a, b []string) bool {
	for _, v := range a {
		for _, w := range b {
			if v == w {
				return true
			}
		}
	}
	return false
}

// RecordActivity prepends an entry to the user's recent activity feed,
// keeping only the ten most recent entries
func (s *UserService) RecordActivity(ctx context.Context, userID, activityType, description string) error {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return err
	}

	entry := models.Activity{
		Type:        activityType,
		Description: description,
		Date:        time.Now().Format(time.RFC3339),
	}
	user.RecentActivity = append([]models.Activity{entry}, user.RecentActivity...)
	if len(user.RecentActivity) > 10 {
		user.RecentActivity = user.RecentActivity[:10]
	}
	return s.Users.Put(ctx, user)
}

// SetDSAProgress replaces the user's progress entry for a problem
func (s *UserService) SetDSAProgress(ctx context.Context, userID, problemID, status string) error {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return NotFoundError("User not found")
		}
		return err
	}

	kept := user.DSAProgress[:0]
	for _, entry := range user.DSAProgress {
		if entry.ProblemID != problemID {
			kept = append(kept, entry)
		}
	}
	user.DSAProgress = append(kept, models.DSAProgressEntry{
		ProblemID:   problemID,
		Status:      status,
		LastAttempt: time.Now().Format(time.RFC3339),
	})
	return s.Users.Put(ctx, user)
}

// SaveResumeText stores the scanned resume text on the user's account
func (s *UserService) SaveResumeText(ctx context.Context, userID, text string) error {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return err
	}
	user.ResumeText = text
	return s.Users.Put(ctx, user)
}

// DynamoUserStore is the DynamoDB-backed UserStore
type DynamoUserStore struct {
	Dynamo *DynamoService
}

func (st *DynamoUserStore) Put(ctx context.Context, user *models.User) error {
	return st.Dynamo.PutItem(ctx, models.UsersTable, user)
}

func (st *DynamoUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := st.Dynamo.GetByID(ctx, models.UsersTable, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (st *DynamoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	err := st.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.UserEmailIndex,
		"email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		nil,
		&users,
	)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrItemNotFound
	}
	return &users[0], nil
}

func (st *DynamoUserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := st.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
