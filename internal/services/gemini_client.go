package services

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "math/rand"
  "net"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/aralgen/aralgen-backend/internal/content"
  "github.com/aralgen/aralgen-backend/internal/logger"
)

type AIClient interface {
  GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
  Model() string
}

type geminiClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client

  maxRetries int
}

func NewGeminiClient(log *logger.Logger) (AIClient, error) {
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GEMINI_API_KEY")
  }

  baseURL := os.Getenv("GEMINI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://generativelanguage.googleapis.com"
  }

  model := os.Getenv("GEMINI_MODEL")
  if model == "" {
    model = "gemini-2.5-flash"
  }

  // IMPORTANT: default timeout higher for full-document generation
  timeoutSec := 180
  if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  maxRetries := 4
  if v := os.Getenv("GEMINI_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
      maxRetries = parsed
    }
  }

  return &geminiClient{
    log:        log.With("service", "GeminiClient"),
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
    maxRetries: maxRetries,
  }, nil
}

func (c *geminiClient) Model() string {
  return c.model
}

type geminiHTTPError struct {
  StatusCode int
  Body       string
}

func (e *geminiHTTPError) Error() string {
  return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
  if code == 408 || code == 429 {
    return true
  }
  if code >= 500 && code <= 599 {
    return true
  }
  return false
}

func isRetryableErr(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
    // if caller canceled, don't retry; if it's our timeout, we will retry anyway.
    // We can only distinguish reliably by checking ctx, which we do in call loop.
    return true
  }
  var netErr net.Error
  if errors.As(err, &netErr) {
    if netErr.Timeout() {
      return true
    }
  }
  var httpErr *geminiHTTPError
  if errors.As(err, &httpErr) {
    return isRetryableHTTP(httpErr.StatusCode)
  }
  return false
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  j := 0.2
  delta := base.Seconds() * j
  low := base.Seconds() - delta
  high := base.Seconds() + delta
  if low < 0 {
    low = 0
  }
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}

func (c *geminiClient) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return nil, nil, err
  }
  req.Header.Set("x-goog-api-key", c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return resp, nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return resp, raw, &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return resp, raw, nil
}

func (c *geminiClient) do(ctx context.Context, method, path string, body any, out any) error {
  // exponential backoff: 1s, 2s, 4s, 8s (cap ~10s)
  backoff := 1 * time.Second

  for attempt := 0; attempt <= c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return ctx.Err()
    }

    resp, raw, err := c.doOnce(ctx, method, path, body)
    if err == nil {
      if out == nil {
        return nil
      }
      if uErr := json.Unmarshal(raw, out); uErr != nil {
        return fmt.Errorf("gemini decode error: %w; raw=%s", uErr, string(raw))
      }
      return nil
    }

    // If non-retryable: fail immediately
    if !isRetryableErr(err) {
      return err
    }

    // If we've exhausted retries: return last error
    if attempt == c.maxRetries {
      return err
    }

    // Respect Retry-After when present
    sleepFor := backoff
    if resp != nil {
      ra := strings.TrimSpace(resp.Header.Get("Retry-After"))
      if ra != "" {
        if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
          sleepFor = time.Duration(secs) * time.Second
        }
      }
    }

    // Cap + jitter
    if sleepFor > 10*time.Second {
      sleepFor = 10 * time.Second
    }
    sleepFor = jitterSleep(sleepFor)

    c.log.Warn("Gemini request retrying",
      "path", path,
      "attempt", attempt+1,
      "max_retries", c.maxRetries,
      "sleep", sleepFor.String(),
      "error", err.Error(),
    )

    time.Sleep(sleepFor)
    backoff *= 2
  }

  return fmt.Errorf("unreachable retry loop")
}

// ---- generateContent (structured output via responseJsonSchema) ----

type generatePart struct {
  Text string `json:"text"`
}

type generateContent struct {
  Role  string         `json:"role,omitempty"`
  Parts []generatePart `json:"parts"`
}

type safetySetting struct {
  Category  string `json:"category"`
  Threshold string `json:"threshold"`
}

type generateRequest struct {
  SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
  Contents          []generateContent `json:"contents"`
  GenerationConfig  struct {
    Temperature        float64        `json:"temperature"`
    ResponseMimeType   string         `json:"responseMimeType"`
    ResponseJsonSchema map[string]any `json:"responseJsonSchema,omitempty"`
  } `json:"generationConfig"`
  SafetySettings []safetySetting `json:"safetySettings,omitempty"`
}

type generateResponse struct {
  Candidates []struct {
    Content struct {
      Parts []generatePart `json:"parts"`
    } `json:"content"`
    FinishReason string `json:"finishReason"`
  } `json:"candidates"`
  PromptFeedback struct {
    BlockReason string `json:"blockReason"`
  } `json:"promptFeedback"`
}

func defaultSafetySettings() []safetySetting {
  categories := []string{
    "HARM_CATEGORY_HARASSMENT",
    "HARM_CATEGORY_HATE_SPEECH",
    "HARM_CATEGORY_SEXUALLY_EXPLICIT",
    "HARM_CATEGORY_DANGEROUS_CONTENT",
  }
  out := make([]safetySetting, 0, len(categories))
  for _, cat := range categories {
    out = append(out, safetySetting{Category: cat, Threshold: "BLOCK_ONLY_HIGH"})
  }
  return out
}

func (c *geminiClient) GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error) {
  if schemaName == "" {
    return nil, errors.New("schemaName required")
  }
  if schema == nil {
    return nil, errors.New("schema required")
  }

  req := generateRequest{
    Contents: []generateContent{
      {Role: "user", Parts: []generatePart{{Text: user}}},
    },
    SafetySettings: defaultSafetySettings(),
  }
  if strings.TrimSpace(system) != "" {
    req.SystemInstruction = &generateContent{Parts: []generatePart{{Text: system}}}
  }
  req.GenerationConfig.Temperature = 0.2
  req.GenerationConfig.ResponseMimeType = "application/json"
  req.GenerationConfig.ResponseJsonSchema = schema

  path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)

  var resp generateResponse
  if err := c.do(ctx, "POST", path, req, &resp); err != nil {
    return nil, err
  }
  if resp.PromptFeedback.BlockReason != "" {
    return nil, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
  }
  if len(resp.Candidates) == 0 {
    return nil, fmt.Errorf("no candidates in response")
  }
  cand := resp.Candidates[0]
  if cand.FinishReason == "SAFETY" {
    return nil, fmt.Errorf("candidate blocked by safety settings")
  }

  var jsonText string
  for _, p := range cand.Content.Parts {
    jsonText += p.Text
  }
  if strings.TrimSpace(jsonText) == "" {
    return nil, fmt.Errorf("no text parts in candidate")
  }

  var obj map[string]any
  if err := content.Decode(jsonText, &obj); err != nil {
    return nil, fmt.Errorf("%s: %w", schemaName, err)
  }
  return obj, nil
}
