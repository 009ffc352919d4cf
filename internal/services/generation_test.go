package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "sync"
  "testing"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/aralgen/aralgen-backend/internal/content"
  "github.com/aralgen/aralgen-backend/internal/curriculum"
  "github.com/aralgen/aralgen-backend/internal/prompts"
  "github.com/aralgen/aralgen-backend/internal/types"
)

func init() {
  prompts.RegisterAll()
}

// fakeAI returns canned objects keyed by schema name and counts calls.
type fakeAI struct {
  mu      sync.Mutex
  replies map[string]func(user string) (map[string]any, error)
  calls   map[string]int
}

func (f *fakeAI) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
  f.mu.Lock()
  if f.calls == nil {
    f.calls = map[string]int{}
  }
  f.calls[schemaName]++
  f.mu.Unlock()
  fn, ok := f.replies[schemaName]
  if !ok {
    return nil, fmt.Errorf("no canned reply for %s", schemaName)
  }
  return fn(user)
}

func (f *fakeAI) Model() string { return "fake-model" }

type fakeDocRepo struct {
  mu   sync.Mutex
  rows []*types.GeneratedDocument
}

func (f *fakeDocRepo) Create(ctx context.Context, tx *gorm.DB, row *types.GeneratedDocument) (*types.GeneratedDocument, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.rows = append(f.rows, row)
  return row, nil
}

func (f *fakeDocRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedDocument, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  for _, row := range f.rows {
    if row.ID == id {
      return row, nil
    }
  }
  return nil, gorm.ErrRecordNotFound
}

func (f *fakeDocRepo) List(ctx context.Context, tx *gorm.DB, docType types.DocumentType, limit int) ([]*types.GeneratedDocument, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  out := make([]*types.GeneratedDocument, 0, len(f.rows))
  for _, row := range f.rows {
    if docType != "" && row.Type != docType {
      continue
    }
    out = append(out, row)
  }
  return out, nil
}

func (f *fakeDocRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  f.mu.Lock()
  defer f.mu.Unlock()
  kept := f.rows[:0]
  for _, row := range f.rows {
    if row.ID != id {
      kept = append(kept, row)
    }
  }
  f.rows = kept
  return nil
}

type fakeCallLogRepo struct {
  mu   sync.Mutex
  rows []*types.AICallLog
}

func (f *fakeCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.rows = append(f.rows, logs...)
  return logs, nil
}

// memoryCache is an always-on cache for exercising the hit path.
type memoryCache struct {
  mu    sync.Mutex
  store map[string]map[string]any
}

func newMemoryCache() *memoryCache {
  return &memoryCache{store: map[string]map[string]any{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) (map[string]any, bool) {
  m.mu.Lock()
  defer m.mu.Unlock()
  obj, ok := m.store[key]
  return obj, ok
}

func (m *memoryCache) Set(ctx context.Context, key string, val map[string]any) {
  m.mu.Lock()
  defer m.mu.Unlock()
  m.store[key] = val
}

func (m *memoryCache) Enabled() bool { return true }

func asMap(t *testing.T, v any) map[string]any {
  t.Helper()
  raw, err := json.Marshal(v)
  if err != nil {
    t.Fatalf("marshal: %v", err)
  }
  var obj map[string]any
  if err := json.Unmarshal(raw, &obj); err != nil {
    t.Fatalf("unmarshal: %v", err)
  }
  return obj
}

func validQuizReply(t *testing.T, n int) map[string]any {
  qs := make([]content.MCQuestion, n)
  for i := range qs {
    qs[i] = content.MCQuestion{
      Number:   i + 1,
      Question: fmt.Sprintf("Question %d?", i+1),
      Options:  []string{"w", "x", "y", "z"},
      Answer:   "b",
    }
  }
  return asMap(t, content.Quiz{
    Title:      "Quiz on Fractions",
    Directions: "Choose the letter of the best answer.",
    Questions:  qs,
  })
}

type genFixture struct {
  svc     GenerationService
  ai      *fakeAI
  docs    *fakeDocRepo
  logs    *fakeCallLogRepo
  cache   *memoryCache
  catalog *curriculum.Catalog
}

func newGenFixture(t *testing.T, replies map[string]func(string) (map[string]any, error)) *genFixture {
  t.Helper()
  catalog, err := curriculum.Load()
  if err != nil {
    t.Fatalf("catalog: %v", err)
  }
  f := &genFixture{
    ai:      &fakeAI{replies: replies},
    docs:    &fakeDocRepo{},
    logs:    &fakeCallLogRepo{},
    cache:   newMemoryCache(),
    catalog: catalog,
  }
  f.svc = NewGenerationService(nil, testLogger(t), f.docs, f.logs, f.cache, f.ai, catalog)
  return f
}

func quizGenParams() QuizParams {
  return QuizParams{
    GenerateParams: GenerateParams{
      Subject:    "Mathematics",
      GradeLevel: 4,
      Quarter:    1,
      Competency: "Adds similar fractions",
    },
    NumQuestions: 5,
  }
}

func TestGenerateQuiz_PersistsValidatedDocument(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "quiz": func(string) (map[string]any, error) { return validQuizReply(t, 5), nil },
  })

  doc, err := f.svc.GenerateQuiz(context.Background(), quizGenParams())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if doc.Type != types.DocumentQuiz {
    t.Fatalf("unexpected type %s", doc.Type)
  }
  if doc.Title != "Quiz on Fractions" {
    t.Fatalf("unexpected title %q", doc.Title)
  }
  if doc.Language != "English" {
    t.Fatalf("expected default language, got %q", doc.Language)
  }
  if doc.FromCache {
    t.Fatalf("first generation should not be from cache")
  }
  if len(f.docs.rows) != 1 {
    t.Fatalf("expected 1 persisted row, got %d", len(f.docs.rows))
  }
  if len(f.logs.rows) != 1 || !f.logs.rows[0].Success {
    t.Fatalf("expected one successful call log, got %+v", f.logs.rows)
  }
  if f.logs.rows[0].Kind != types.DocumentQuiz {
    t.Fatalf("call log kind = %q, want %q", f.logs.rows[0].Kind, types.DocumentQuiz)
  }

  var stored content.Quiz
  if err := json.Unmarshal(doc.Content, &stored); err != nil {
    t.Fatalf("stored content: %v", err)
  }
  if stored.Questions[0].Answer != "B" {
    t.Fatalf("answer not normalized in stored content: %q", stored.Questions[0].Answer)
  }
}

func TestGenerateQuiz_SecondCallHitsCache(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "quiz": func(string) (map[string]any, error) { return validQuizReply(t, 5), nil },
  })

  if _, err := f.svc.GenerateQuiz(context.Background(), quizGenParams()); err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  doc, err := f.svc.GenerateQuiz(context.Background(), quizGenParams())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if !doc.FromCache {
    t.Fatalf("expected cache hit on repeat generation")
  }
  if f.ai.calls["quiz"] != 1 {
    t.Fatalf("expected 1 AI call, got %d", f.ai.calls["quiz"])
  }
}

func TestGenerateQuiz_RejectsInvalidReply(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "quiz": func(string) (map[string]any, error) { return validQuizReply(t, 3), nil },
  })

  if _, err := f.svc.GenerateQuiz(context.Background(), quizGenParams()); err == nil {
    t.Fatalf("expected validation error for wrong question count")
  }
  if len(f.docs.rows) != 0 {
    t.Fatalf("invalid reply must not be persisted")
  }
}

func TestGenerateQuiz_InvalidReplyNotCached(t *testing.T) {
  // A reply that fails validation must not be pinned in the cache: the
  // retry has to reach the model again instead of replaying the bad reply.
  call := 0
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "quiz": func(string) (map[string]any, error) {
      call++
      if call == 1 {
        return validQuizReply(t, 3), nil
      }
      return validQuizReply(t, 5), nil
    },
  })

  if _, err := f.svc.GenerateQuiz(context.Background(), quizGenParams()); err == nil {
    t.Fatalf("expected validation error for wrong question count")
  }
  doc, err := f.svc.GenerateQuiz(context.Background(), quizGenParams())
  if err != nil {
    t.Fatalf("retry after bad reply: %v", err)
  }
  if doc.FromCache {
    t.Fatalf("retry must not be served from cache")
  }
  if f.ai.calls["quiz"] != 2 {
    t.Fatalf("expected 2 AI calls, got %d", f.ai.calls["quiz"])
  }

  // Only the valid reply is cached.
  doc, err = f.svc.GenerateQuiz(context.Background(), quizGenParams())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if !doc.FromCache || f.ai.calls["quiz"] != 2 {
    t.Fatalf("expected cache hit without a third call, fromCache=%v calls=%d", doc.FromCache, f.ai.calls["quiz"])
  }
}

func TestGenerateQuiz_RejectsUnknownGrade(t *testing.T) {
  f := newGenFixture(t, nil)
  p := quizGenParams()
  p.GradeLevel = 13
  if _, err := f.svc.GenerateQuiz(context.Background(), p); err == nil {
    t.Fatalf("expected catalog error for grade 13")
  }
}

func TestGenerateQuiz_LogsFailedCall(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "quiz": func(string) (map[string]any, error) { return nil, fmt.Errorf("model unavailable") },
  })

  if _, err := f.svc.GenerateQuiz(context.Background(), quizGenParams()); err == nil {
    t.Fatalf("expected error")
  }
  if len(f.logs.rows) != 1 || f.logs.rows[0].Success {
    t.Fatalf("expected one failed call log, got %+v", f.logs.rows)
  }
  if f.logs.rows[0].Error == "" {
    t.Fatalf("call log missing error text")
  }
}

func examTOSReply(t *testing.T) map[string]any {
  return asMap(t, content.ExamTOS{
    Title:      "First Quarter Examination in Science 4",
    Directions: "Read each item carefully.",
    Rows: []content.TOSRow{
      {
        Objective: "Describe the stages of the water cycle", Topic: "Water cycle",
        Hours: 6, Percent: 60,
        Remembering: 6, Understanding: 4, Applying: 2,
        TotalItems: 12, Placement: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
      },
      {
        Objective: "Explain the importance of the water cycle", Topic: "Water cycle",
        Hours: 4, Percent: 40,
        Applying: 4, Analyzing: 4,
        TotalItems: 8, Placement: []int{13, 14, 15, 16, 17, 18, 19, 20},
      },
    },
  })
}

func examItemsReply(t *testing.T, user string) (map[string]any, error) {
  // The item prompt carries "Items to write: N, numbered S upward."
  var count, start int
  if _, err := fmt.Sscanf(user[strings.Index(user, "Items to write:"):], "Items to write: %d, numbered %d", &count, &start); err != nil {
    return nil, fmt.Errorf("parse fan-out prompt: %w", err)
  }
  qs := make([]content.MCQuestion, count)
  for i := range qs {
    qs[i] = content.MCQuestion{
      Number:   start + i,
      Question: fmt.Sprintf("Item %d?", start+i),
      Options:  []string{"w", "x", "y", "z"},
      Answer:   "A",
    }
  }
  return asMap(t, map[string]any{"questions": qs}), nil
}

func examGenParams() ExamParams {
  return ExamParams{
    Subject:      "Science",
    GradeLevel:   4,
    Quarter:      1,
    TotalItems:   20,
    Competencies: []string{"Describe the stages of the water cycle", "Explain the importance of the water cycle"},
  }
}

func TestGenerateExam_FansOutPerCognitiveLevel(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "exam_tos":   func(string) (map[string]any, error) { return examTOSReply(t), nil },
    "exam_items": func(user string) (map[string]any, error) { return examItemsReply(t, user) },
  })

  doc, err := f.svc.GenerateExam(context.Background(), examGenParams())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if f.ai.calls["exam_tos"] != 1 {
    t.Fatalf("expected 1 TOS call, got %d", f.ai.calls["exam_tos"])
  }
  // Levels with items: remembering, understanding, applying, analyzing.
  if f.ai.calls["exam_items"] != 4 {
    t.Fatalf("expected 4 item calls, got %d", f.ai.calls["exam_items"])
  }

  var exam content.PeriodicalExam
  if err := json.Unmarshal(doc.Content, &exam); err != nil {
    t.Fatalf("stored content: %v", err)
  }
  if len(exam.Parts) != 4 {
    t.Fatalf("expected 4 parts, got %d", len(exam.Parts))
  }
  if exam.Parts[0].Part != "Part I" || exam.Parts[0].CognitiveLevel != "remembering" {
    t.Fatalf("unexpected first part: %+v", exam.Parts[0])
  }
  // Item numbers run consecutively across parts.
  want := 1
  for _, part := range exam.Parts {
    for _, q := range part.Questions {
      if q.Number != want {
        t.Fatalf("expected item %d, got %d in %s", want, q.Number, part.Part)
      }
      want++
    }
  }
  if want-1 != 20 {
    t.Fatalf("expected 20 items total, got %d", want-1)
  }
}

func TestGenerateExam_PlacementFollowsFinalNumbering(t *testing.T) {
  // The model's placement column may use its own layout; the stored TOS
  // must match the numbering the assembled parts actually use.
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "exam_tos": func(string) (map[string]any, error) {
      reply := examTOSReply(t)
      rows := reply["rows"].([]any)
      // A valid permutation of 1..20, interleaved across the rows.
      rows[0].(map[string]any)["placement"] = []any{1, 2, 3, 4, 5, 6, 7, 8, 13, 14, 15, 16}
      rows[1].(map[string]any)["placement"] = []any{9, 10, 11, 12, 17, 18, 19, 20}
      return reply, nil
    },
    "exam_items": func(user string) (map[string]any, error) { return examItemsReply(t, user) },
  })

  doc, err := f.svc.GenerateExam(context.Background(), examGenParams())
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }

  var exam content.PeriodicalExam
  if err := json.Unmarshal(doc.Content, &exam); err != nil {
    t.Fatalf("stored content: %v", err)
  }
  // Bloom order assigns row one's 12 items first, then row two's 8.
  wantRow0 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
  wantRow1 := []int{13, 14, 15, 16, 17, 18, 19, 20}
  if got := exam.TOS[0].Placement; !equalInts(got, wantRow0) {
    t.Fatalf("row 0 placement = %v, want %v", got, wantRow0)
  }
  if got := exam.TOS[1].Placement; !equalInts(got, wantRow1) {
    t.Fatalf("row 1 placement = %v, want %v", got, wantRow1)
  }
}

func equalInts(a, b []int) bool {
  if len(a) != len(b) {
    return false
  }
  for i := range a {
    if a[i] != b[i] {
      return false
    }
  }
  return true
}

func TestGenerateExam_RejectsBrokenTOS(t *testing.T) {
  f := newGenFixture(t, map[string]func(string) (map[string]any, error){
    "exam_tos": func(string) (map[string]any, error) {
      reply := examTOSReply(t)
      rows := reply["rows"].([]any)
      row := rows[0].(map[string]any)
      row["placement"] = []any{1, 2, 3}
      return reply, nil
    },
  })

  if _, err := f.svc.GenerateExam(context.Background(), examGenParams()); err == nil {
    t.Fatalf("expected TOS validation error")
  }
  if f.ai.calls["exam_items"] != 0 {
    t.Fatalf("item calls must not run on a broken TOS")
  }
}
