package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatStub serves a canned chat-completion response and records the request
func chatStub(t *testing.T, content string, capture *chatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatCompletion_ReturnsFirstChoice(t *testing.T) {
	var captured chatCompletionRequest
	server := chatStub(t, "hello there", &captured)
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	reply, err := svc.Chat(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "hi", captured.Messages[0].Content)
	assert.Equal(t, 150, captured.MaxTokens)
}

func TestChatCompletion_RequiresAPIKey(t *testing.T) {
	svc := &AIService{}
	_, err := svc.Chat(context.Background(), "hi")
	assert.Error(t, err)
}

func TestChatCompletion_SurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "bad key"},
		})
	}))
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	_, err := svc.Chat(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestEndpointSelection(t *testing.T) {
	svc := &AIService{APIKey: "sk-or-v1-abc"}
	url, model := svc.endpoint()
	assert.Equal(t, openRouterURL, url)
	assert.Equal(t, "openai/gpt-3.5-turbo", model)

	svc.APIKey = "sk-abc"
	url, model = svc.endpoint()
	assert.Equal(t, openAIURL, url)
	assert.Equal(t, "gpt-3.5-turbo", model)
}

func TestMockInterviewQuestions_ParsesNumberedList(t *testing.T) {
	server := chatStub(t, "1. Tell me about yourself.\n2) Why React?\n\n3 Describe a hard bug.", nil)
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	questions, err := svc.MockInterviewQuestions(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Tell me about yourself.",
		"Why React?",
		"Describe a hard bug.",
	}, questions)
}

func TestGenerateQuiz_ParsesFencedJSON(t *testing.T) {
	content := "```json\n[{\"question\": \"What is a goroutine?\", \"correctAnswer\": \"A lightweight thread\"}]\n```"
	server := chatStub(t, content, nil)
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	questions, err := svc.GenerateQuiz(context.Background(), "Go")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is a goroutine?", questions[0].Question)
	assert.Equal(t, "A lightweight thread", questions[0].CorrectAnswer)
}

func TestGenerateQuiz_FailsOnUnparseableOutput(t *testing.T) {
	server := chatStub(t, "Sorry, I cannot do that.", nil)
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	_, err := svc.GenerateQuiz(context.Background(), "Go")
	assert.Error(t, err)
}

func TestExtractDSATopics(t *testing.T) {
	server := chatStub(t, "Here you go:\n[\"Arrays\", \"Graphs\", \"DP\"]", nil)
	defer server.Close()

	svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
	topics, err := svc.ExtractDSATopics(context.Background(), "resume")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arrays", "Graphs", "DP"}, topics)
}

func TestCheckAnswer_Verdicts(t *testing.T) {
	cases := []struct {
		feedback string
		correct  bool
	}{
		{"Correct! Well done.", true},
		{"That is correct.", true},
		{"Incorrect. The right answer is X.", false},
		{"Partially Correct, but missing detail.", true},
	}
	for _, tc := range cases {
		server := chatStub(t, tc.feedback, nil)
		svc := &AIService{APIKey: "sk-test", BaseURL: server.URL}
		feedback, correct, err := svc.CheckAnswer(context.Background(), "Q", "A", "B")
		server.Close()
		require.NoError(t, err)
		assert.Equal(t, tc.feedback, feedback)
		assert.Equal(t, tc.correct, correct, "feedback: %s", tc.feedback)
	}
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `["a"]`, extractJSONArray("```json\n[\"a\"]\n```"))
	assert.Equal(t, `["a"]`, extractJSONArray("Sure: [\"a\"] hope that helps"))
	assert.Equal(t, "no array here", extractJSONArray("no array here"))
}

func TestIsCorrectVerdict(t *testing.T) {
	assert.True(t, isCorrectVerdict("Correct, nice work"))
	assert.False(t, isCorrectVerdict("Incorrect"))
	assert.False(t, isCorrectVerdict("The answer is incorrect but close to correct"))
	assert.False(t, isCorrectVerdict("Good try"))
}
