package services

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/aralgen/aralgen-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return log
}

func newTestClient(t *testing.T, serverURL string) AIClient {
  t.Helper()
  t.Setenv("GEMINI_API_KEY", "test-key")
  t.Setenv("GEMINI_BASE_URL", serverURL)
  t.Setenv("GEMINI_MODEL", "gemini-test")
  t.Setenv("GEMINI_MAX_RETRIES", "2")
  client, err := NewGeminiClient(testLogger(t))
  if err != nil {
    t.Fatalf("client: %v", err)
  }
  return client
}

func candidateReply(text string) map[string]any {
  return map[string]any{
    "candidates": []map[string]any{
      {
        "content": map[string]any{
          "parts": []map[string]any{{"text": text}},
        },
        "finishReason": "STOP",
      },
    },
  }
}

func quizSchema() map[string]any {
  return map[string]any{"type": "object"}
}

func TestGenerateJSON_DecodesCandidateText(t *testing.T) {
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if r.Header.Get("x-goog-api-key") != "test-key" {
      t.Errorf("missing api key header")
    }
    if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
      t.Errorf("unexpected path %s", r.URL.Path)
    }
    var req map[string]any
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
      t.Errorf("bad request body: %v", err)
    }
    gc, _ := req["generationConfig"].(map[string]any)
    if gc["responseMimeType"] != "application/json" {
      t.Errorf("responseMimeType not set: %v", gc)
    }
    json.NewEncoder(w).Encode(candidateReply(`{"title":"Quiz 1"}`))
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  obj, err := client.GenerateJSON(context.Background(), "system", "user", "quiz", quizSchema())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if obj["title"] != "Quiz 1" {
    t.Fatalf("unexpected object: %v", obj)
  }
}

func TestGenerateJSON_StripsCodeFences(t *testing.T) {
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    json.NewEncoder(w).Encode(candidateReply("```json\n{\"title\":\"Fenced\"}\n```"))
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  obj, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", quizSchema())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if obj["title"] != "Fenced" {
    t.Fatalf("unexpected object: %v", obj)
  }
}

func TestGenerateJSON_RetriesOn429(t *testing.T) {
  attempts := 0
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    attempts++
    if attempts == 1 {
      w.Header().Set("Retry-After", "0")
      w.WriteHeader(http.StatusTooManyRequests)
      return
    }
    json.NewEncoder(w).Encode(candidateReply(`{"ok":true}`))
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  obj, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", quizSchema())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if attempts != 2 {
    t.Fatalf("expected 2 attempts, got %d", attempts)
  }
  if obj["ok"] != true {
    t.Fatalf("unexpected object: %v", obj)
  }
}

func TestGenerateJSON_DoesNotRetryOn400(t *testing.T) {
  attempts := 0
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    attempts++
    w.WriteHeader(http.StatusBadRequest)
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  if _, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", quizSchema()); err == nil {
    t.Fatalf("expected error")
  }
  if attempts != 1 {
    t.Fatalf("expected 1 attempt, got %d", attempts)
  }
}

func TestGenerateJSON_ReportsPromptBlock(t *testing.T) {
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    json.NewEncoder(w).Encode(map[string]any{
      "promptFeedback": map[string]any{"blockReason": "SAFETY"},
    })
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  _, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", quizSchema())
  if err == nil || !strings.Contains(err.Error(), "blocked") {
    t.Fatalf("expected block error, got %v", err)
  }
}

func TestGenerateJSON_ReportsSafetyFinish(t *testing.T) {
  ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    json.NewEncoder(w).Encode(map[string]any{
      "candidates": []map[string]any{
        {"content": map[string]any{"parts": []map[string]any{}}, "finishReason": "SAFETY"},
      },
    })
  }))
  defer ts.Close()

  client := newTestClient(t, ts.URL)
  _, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", quizSchema())
  if err == nil || !strings.Contains(err.Error(), "safety") {
    t.Fatalf("expected safety error, got %v", err)
  }
}

func TestGenerateJSON_RequiresSchema(t *testing.T) {
  client := newTestClient(t, "http://localhost:0")
  if _, err := client.GenerateJSON(context.Background(), "s", "u", "quiz", nil); err == nil {
    t.Fatalf("expected error for nil schema")
  }
  if _, err := client.GenerateJSON(context.Background(), "s", "u", "", quizSchema()); err == nil {
    t.Fatalf("expected error for empty schema name")
  }
}
