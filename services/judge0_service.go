package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const judge0URL = "https://judge0-ce.p.rapidapi.com/submissions?base64_encoded=false&wait=true"

// Judge0Languages maps supported language names to Judge0 language ids
var Judge0Languages = map[string]int{
	"python":     71,
	"javascript": 63,
}

// Judge0Service submits code to the Judge0 execution API
type Judge0Service struct {
	APIKey     string
	HTTPClient *http.Client

	// BaseURL overrides the Judge0 endpoint when set (used in tests)
	BaseURL string
}

// JudgeResult is the outcome of one synchronous submission
type JudgeResult struct {
	Stdout string
	Status string
}

type judge0Request struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type judge0Response struct {
	Stdout *string `json:"stdout"`
	Status *struct {
		Description string `json:"description"`
	} `json:"status"`
}

// Submit runs the code against one stdin and waits for the result
func (s *Judge0Service) Submit(ctx context.Context, code string, languageID int, stdin string) (*JudgeResult, error) {
	apiURL := judge0URL
	if s.BaseURL != "" {
		apiURL = s.BaseURL
	}

	body, err := json.Marshal(judge0Request{
		SourceCode: code,
		LanguageID: languageID,
		Stdin:      stdin,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", s.APIKey)
	req.Header.Set("X-RapidAPI-Host", "judge0-ce.p.rapidapi.com")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("judge submission failed: status %d", resp.StatusCode)
	}

	var decoded judge0Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode judge response: %w", err)
	}

	result := &JudgeResult{}
	if decoded.Stdout != nil {
		result.Stdout = *decoded.Stdout
	}
	if decoded.Status != nil {
		result.Status = decoded.Status.Description
	}
	return result, nil
}
