package services

import (
	"context"
	"testing"

	"skillforge_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard_RanksByTotalScore(t *testing.T) {
	users := newMemUserStore()
	offers := newMemOfferStore()
	ctx := context.Background()

	users.Put(ctx, &models.User{ID: "u1", Name: "Alice", ResumeScore: 90, QuizScore: 80, DSAScore: 70, SkillsOffered: []string{"React"}})
	users.Put(ctx, &models.User{ID: "u2", Name: "Bob", ResumeScore: 50, QuizScore: 50, DSAScore: 50, SkillsOffered: []string{"SQL"}})
	users.Put(ctx, &models.User{ID: "u3", Name: "Cleo", ResumeScore: 100, QuizScore: 100, DSAScore: 100})

	offers.Put(ctx, &models.SkillOffer{ID: "o1", UserID: "u1", Status: models.OfferStatusOpen})
	offers.Put(ctx, &models.SkillOffer{ID: "o2", UserID: "u1", Status: models.OfferStatusMatched})

	svc := &LeaderboardService{Users: users, Offers: offers}
	entries, err := svc.GetLeaderboard(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Cleo", entries[0].Name)
	assert.Equal(t, 100, entries[0].TotalScore)
	assert.Equal(t, "Alice", entries[1].Name)
	assert.Equal(t, 80, entries[1].TotalScore)
	assert.Equal(t, "Bob", entries[2].Name)
	assert.Equal(t, 50, entries[2].TotalScore)

	assert.Equal(t, 2, entries[1].SwapCount)
	assert.Equal(t, 0, entries[2].SwapCount)
}

func TestGetLeaderboard_SkillFilter(t *testing.T) {
	users := newMemUserStore()
	ctx := context.Background()

	users.Put(ctx, &models.User{ID: "u1", Name: "Alice", SkillsOffered: []string{"React", "Go"}})
	users.Put(ctx, &models.User{ID: "u2", Name: "Bob", SkillsOffered: []string{"SQL"}})

	svc := &LeaderboardService{Users: users, Offers: newMemOfferStore()}
	entries, err := svc.GetLeaderboard(ctx, "React")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Name)
}

func TestGetLeaderboard_RoundsMeanScore(t *testing.T) {
	users := newMemUserStore()
	ctx := context.Background()

	// (1 + 1 + 2) / 3 = 1.33 rounds down, (1 + 2 + 2) / 3 = 1.67 rounds up.
	users.Put(ctx, &models.User{ID: "u1", Name: "Alice", ResumeScore: 1, QuizScore: 1, DSAScore: 2})
	users.Put(ctx, &models.User{ID: "u2", Name: "Bob", ResumeScore: 1, QuizScore: 2, DSAScore: 2})

	svc := &LeaderboardService{Users: users, Offers: newMemOfferStore()}
	entries, err := svc.GetLeaderboard(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]int{}
	for _, e := range entries {
		byName[e.Name] = e.TotalScore
	}
	assert.Equal(t, 1, byName["Alice"])
	assert.Equal(t, 2, byName["Bob"])
}

func TestGetLeaderboard_AvatarFallback(t *testing.T) {
	users := newMemUserStore()
	ctx := context.Background()

	users.Put(ctx, &models.User{ID: "u1", Name: "Alice"})
	users.Put(ctx, &models.User{ID: "u2", Name: "Bob", Avatar: "https://example.com/bob.png"})

	svc := &LeaderboardService{Users: users, Offers: newMemOfferStore()}
	entries, err := svc.GetLeaderboard(ctx, "")
	require.NoError(t, err)

	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Name] = e.Avatar
	}
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=Alice", byName["Alice"])
	assert.Equal(t, "https://example.com/bob.png", byName["Bob"])
}
