package services

import (
	"context"
	"log"
	"math"
	"sort"
)

// LeaderboardEntry is one ranked row on the leaderboard
type LeaderboardEntry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Avatar         string   `json:"avatar"`
	ResumeScore    int      `json:"resumeScore"`
	QuizScore      int      `json:"quizScore"`
	DSAScore       int      `json:"dsaScore"`
	TotalScore     int      `json:"totalScore"`
	Badges         []string `json:"badges"`
	SwapCount      int      `json:"swapCount"`
	ActivityStreak int      `json:"activityStreak"`
	Skills         []string `json:"skills"`
}

// LeaderboardService ranks users by their combined scores
type LeaderboardService struct {
	Users  UserStore
	Offers OfferStore
}

// GetLeaderboard returns all users ranked by total score, optionally
// restricted to users offering the given skill. Total score is the rounded
// mean of the resume, quiz, and DSA scores.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, skill string) ([]LeaderboardEntry, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := []LeaderboardEntry{}
	for _, u := range users {
		if skill != "" && !contains(u.SkillsOffered, skill) {
			continue
		}

		avatar := u.Avatar
		if avatar == "" {
			avatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + u.Name
		}

		swapCount, err := s.Offers.CountByUser(ctx, u.ID)
		if err != nil {
			log.Printf("Failed to count offers for user %s: %v", u.ID, err)
		}

		entries = append(entries, LeaderboardEntry{
			ID:             u.ID,
			Name:           u.Name,
			Avatar:         avatar,
			ResumeScore:    u.ResumeScore,
			QuizScore:      u.QuizScore,
			DSAScore:       u.DSAScore,
			TotalScore:     int(math.Round(float64(u.ResumeScore+u.QuizScore+u.DSAScore) / 3)),
			Badges:         u.Badges,
			SwapCount:      swapCount,
			ActivityStreak: u.Stats.Streak,
			Skills:         u.SkillsOffered,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	return entries, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
