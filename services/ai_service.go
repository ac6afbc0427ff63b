package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"skillforge_server/models"
)

const (
	openRouterURL = "https://openrouter.ai/api/v1/chat/completions"
	openAIURL     = "https://api.openai.com/v1/chat/completions"
)

// AIService calls the OpenRouter/OpenAI chat completions API. Keys with the
// sk-or- prefix are routed to OpenRouter, anything else to OpenAI.
type AIService struct {
	APIKey     string
	HTTPClient *http.Client

	// BaseURL overrides endpoint selection when set (used in tests)
	BaseURL string
}

// ChatMessage is one turn in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *AIService) endpoint() (string, string) {
	if strings.HasPrefix(s.APIKey, "sk-or-") {
		return openRouterURL, "openai/gpt-3.5-turbo"
	}
	return openAIURL, "gpt-3.5-turbo"
}

// ChatCompletion sends the messages and returns the first choice's content
func (s *AIService) ChatCompletion(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error) {
	if s.APIKey == "" && s.BaseURL == "" {
		return "", fmt.Errorf("no API key found for OpenAI or OpenRouter")
	}

	apiURL, model := s.endpoint()
	if s.BaseURL != "" {
		apiURL = s.BaseURL
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if resp.StatusCode >= 400 {
		if decoded.Error != nil {
			return "", fmt.Errorf("chat completion API error: %s", decoded.Error.Message)
		}
		return "", fmt.Errorf("chat completion API error: status %d", resp.StatusCode)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("malformed chat completion response: no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// Chat answers a free-form chatbot message
func (s *AIService) Chat(ctx context.Context, message string) (string, error) {
	return s.ChatCompletion(ctx, []ChatMessage{{Role: "user", Content: message}}, 150)
}

// GenerateRoadmap builds a personalized skill roadmap from resume text
func (s *AIService) GenerateRoadmap(ctx context.Context, resumeText string) (string, error) {
	prompt := "Here is a resume. Extract current skills and compare with the required skills for a Frontend Developer at Meta. " +
		"Identify gaps and generate a personalized 30-day skill roadmap including 3 courses, 2 projects, and 1 DSA sheet.\nResume: " + resumeText
	return s.ChatCompletion(ctx, []ChatMessage{
		{Role: "system", Content: "You are a career coach and AI assistant."},
		{Role: "user", Content: prompt},
	}, 800)
}

// MockInterviewQuestions generates personalized interview questions from
// resume data
func (s *AIService) MockInterviewQuestions(ctx context.Context, resumeData string) ([]string, error) {
	prompt := fmt.Sprintf("You are an expert technical interviewer. Based on this candidate's resume: %s, "+
		"generate 5 personalized technical and behavioral interview questions.", resumeData)
	raw, err := s.ChatCompletion(ctx, []ChatMessage{{Role: "user", Content: prompt}}, 300)
	if err != nil {
		return nil, err
	}
	questions := parseNumberedLines(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions generated from response")
	}
	return questions, nil
}

// InterviewFeedback critiques a candidate's answer to an interview question
func (s *AIService) InterviewFeedback(ctx context.Context, question, answer string) (string, error) {
	prompt := fmt.Sprintf("You are an expert interview coach. Here is a question: %q. Here is the candidate's answer: %q. "+
		"Give constructive, specific feedback and suggestions for improvement.", question, answer)
	return s.ChatCompletion(ctx, []ChatMessage{{Role: "user", Content: prompt}}, 150)
}

// GenerateQuiz generates quiz questions with answers for a topic
func (s *AIService) GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	prompt := fmt.Sprintf("Generate 15 quiz questions and their correct answers for the topic: %q. "+
		`Format as JSON array: [{"question": "...", "correctAnswer": "..."}, ...]`, topic)
	raw, err := s.ChatCompletion(ctx, []ChatMessage{{Role: "user", Content: prompt}}, 2000)
	if err != nil {
		return nil, err
	}

	questions := parseQuizJSON(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("failed to generate quiz questions")
	}
	return questions, nil
}

// CheckAnswer asks the model to grade a user's answer and reports the verdict
func (s *AIService) CheckAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (string, bool, error) {
	prompt := fmt.Sprintf("Question: %s\nCorrect Answer: %s\nUser's Answer: %s\n"+
		"Is the user's answer correct? Reply with 'Correct', 'Partially Correct', or 'Incorrect' and a brief explanation.",
		question, correctAnswer, userAnswer)
	feedback, err := s.ChatCompletion(ctx, []ChatMessage{{Role: "user", Content: prompt}}, 150)
	if err != nil {
		return "", false, err
	}
	return feedback, isCorrectVerdict(feedback), nil
}

// ExtractDSATopics extracts focus topics from resume text as a string list
func (s *AIService) ExtractDSATopics(ctx context.Context, resumeText string) ([]string, error) {
	prompt := "Given the following resume, list 3-5 DSA (Data Structures & Algorithms) topics the candidate should focus on " +
		"to improve their coding interview skills. Only output a JSON array of topic strings.\nResume:\n" + resumeText
	raw, err := s.ChatCompletion(ctx, []ChatMessage{
		{Role: "system", Content: "You are a career coach and DSA expert."},
		{Role: "user", Content: prompt},
	}, 200)
	if err != nil {
		return nil, err
	}

	var topics []string
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &topics); err != nil {
		return nil, fmt.Errorf("failed to parse topics from response: %w", err)
	}
	return topics, nil
}

var leadingNumber = regexp.MustCompile(`^[0-9]+[.)]?\s*`)

// parseNumberedLines splits a numbered list into trimmed items
func parseNumberedLines(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, leadingNumber.ReplaceAllString(line, ""))
	}
	return items
}

// parseQuizJSON pulls the first JSON array out of the model output
func parseQuizJSON(raw string) []models.QuizQuestion {
	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &questions); err != nil {
		return nil
	}
	return questions
}

// extractJSONArray strips markdown fences and returns the bracketed array
// portion of the text, or the text unchanged when no array is found
func extractJSONArray(raw string) string {
	content := strings.TrimSpace(raw)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}

var incorrectWord = regexp.MustCompile(`(?i)incorrect`)
var correctWord = regexp.MustCompile(`(?i)\bcorrect\b`)

// isCorrectVerdict mirrors the grading heuristic: the feedback must mention
// "correct" and must not mention "incorrect"
func isCorrectVerdict(feedback string) bool {
	return correctWord.MatchString(feedback) && !incorrectWord.MatchString(feedback)
}
