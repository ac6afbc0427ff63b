package services

import (
	"context"
	"log"
	"strings"

	"skillforge_server/models"
)

// ResumeAnalysis is the result of scanning an uploaded resume
type ResumeAnalysis struct {
	FileKey     string              `json:"fileKey,omitempty"`
	Topics      []string            `json:"topics"`
	Recommended []models.DSAProblem `json:"recommended"`
}

// ResumeService stores uploaded resumes and turns their text into focus
// topics plus recommended problems. Extracting text from the PDF itself is
// out of scope; callers supply the resume text alongside the file.
type ResumeService struct {
	Storage  *S3Service
	AI       *AIService
	Problems ProblemStore
	Users    *UserService
}

// Analyze uploads the resume file (when present), extracts focus topics from
// the text, and recommends problems whose tags overlap those topics. The
// text is saved on the user's account for later mock interview generation.
func (s *ResumeService) Analyze(ctx context.Context, userID, fileName string, fileData []byte, resumeText string) (*ResumeAnalysis, error) {
	if resumeText == "" {
		return nil, ValidationError("No resume text provided")
	}

	analysis := &ResumeAnalysis{}

	if len(fileData) > 0 && fileName != "" {
		key, err := s.Storage.UploadResume(ctx, fileName, "application/pdf", fileData)
		if err != nil {
			return nil, err
		}
		analysis.FileKey = key
	}

	topics, err := s.AI.ExtractDSATopics(ctx, resumeText)
	if err != nil {
		return nil, err
	}
	analysis.Topics = topics

	problems, err := s.Problems.List(ctx, "", "", "")
	if err != nil {
		return nil, err
	}
	analysis.Recommended = recommendByTopics(problems, topics)

	if err := s.Users.SaveResumeText(ctx, userID, resumeText); err != nil {
		log.Printf("Failed to save resume text for user %s: %v", userID, err)
	}
	return analysis, nil
}

// recommendByTopics keeps problems whose tags intersect the topic list,
// compared case-insensitively
func recommendByTopics(problems []models.DSAProblem, topics []string) []models.DSAProblem {
	lowered := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		lowered[strings.ToLower(t)] = struct{}{}
	}

	recommended := []models.DSAProblem{}
	for _, p := range problems {
		for _, tag := range p.Tags {
			if _, ok := lowered[strings.ToLower(tag)]; ok {
				recommended = append(recommended, p)
				break
			}
		}
	}
	return recommended
}
