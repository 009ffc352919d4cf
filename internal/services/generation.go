package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "time"

  "golang.org/x/sync/errgroup"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/aralgen/aralgen-backend/internal/content"
  "github.com/aralgen/aralgen-backend/internal/curriculum"
  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/prompts"
  "github.com/aralgen/aralgen-backend/internal/repos"
  "github.com/aralgen/aralgen-backend/internal/types"
)

// GenerateParams are the form fields shared by every document type.
type GenerateParams struct {
  Subject        string `json:"subject" binding:"required"`
  GradeLevel     int    `json:"grade_level" binding:"required,min=1,max=12"`
  Quarter        int    `json:"quarter" binding:"omitempty,min=1,max=4"`
  Language       string `json:"language" binding:"omitempty,oneof=English Filipino Taglish"`
  Competency     string `json:"competency" binding:"required"`
  CompetencyCode string `json:"competency_code"`
  Topic          string `json:"topic"`
  Notes          string `json:"notes"`
}

type DLLParams struct {
  GenerateParams
  WeekOf string `json:"week_of"`
}

type LASParams struct {
  GenerateParams
  NumActivities int `json:"num_activities" binding:"omitempty,min=1,max=6"`
}

type QuizParams struct {
  GenerateParams
  NumQuestions int `json:"num_questions" binding:"omitempty,min=5,max=50"`
}

type ExamParams struct {
  Subject      string   `json:"subject" binding:"required"`
  GradeLevel   int      `json:"grade_level" binding:"required,min=1,max=12"`
  Quarter      int      `json:"quarter" binding:"required,min=1,max=4"`
  Language     string   `json:"language" binding:"omitempty,oneof=English Filipino Taglish"`
  TotalItems   int      `json:"total_items" binding:"omitempty,min=20,max=100"`
  Competencies []string `json:"competencies" binding:"required,min=1,dive,required"`
  Notes        string   `json:"notes"`
}

type GenerationService interface {
  GenerateDLP(ctx context.Context, p GenerateParams) (*types.GeneratedDocument, error)
  GenerateDLL(ctx context.Context, p DLLParams) (*types.GeneratedDocument, error)
  GenerateLAS(ctx context.Context, p LASParams) (*types.GeneratedDocument, error)
  GenerateQuiz(ctx context.Context, p QuizParams) (*types.GeneratedDocument, error)
  GenerateExam(ctx context.Context, p ExamParams) (*types.GeneratedDocument, error)
}

type generationService struct {
  db          *gorm.DB
  log         *logger.Logger
  docRepo     repos.DocumentRepo
  callLogRepo repos.AICallLogRepo
  cache       GenerationCache
  ai          AIClient
  catalog     *curriculum.Catalog
}

func NewGenerationService(
  db *gorm.DB,
  log *logger.Logger,
  docRepo repos.DocumentRepo,
  callLogRepo repos.AICallLogRepo,
  cache GenerationCache,
  ai AIClient,
  catalog *curriculum.Catalog,
) GenerationService {
  return &generationService{
    db:          db,
    log:         log.With("service", "GenerationService"),
    docRepo:     docRepo,
    callLogRepo: callLogRepo,
    cache:       cache,
    ai:          ai,
    catalog:     catalog,
  }
}

func languageOrDefault(lang string) string {
  if strings.TrimSpace(lang) == "" {
    return "English"
  }
  return lang
}

func (s *generationService) checkCatalog(gradeLevel int, subject string) error {
  if s.catalog == nil {
    return nil
  }
  if !s.catalog.HasGrade(gradeLevel) {
    return fmt.Errorf("grade %d not in curriculum catalog", gradeLevel)
  }
  // Subject left free-form: teachers type local subject variants the
  // catalog does not enumerate, so an unknown subject is only logged.
  if !s.catalog.HasSubject(gradeLevel, subject) {
    s.log.Debug("Subject not in catalog for grade", "subject", subject, "grade", gradeLevel)
  }
  return nil
}

// callModel builds a registered prompt, consults the cache, calls the model
// on a miss, and writes an AICallLog row for every real call. check decodes
// and validates the reply; only replies that pass it are cached, so a bad
// reply is never pinned for the TTL and a resubmit reaches the model again.
func (s *generationService) callModel(
  ctx context.Context,
  kind types.DocumentType,
  name prompts.PromptName,
  in prompts.Input,
  check func(obj map[string]any) error,
) (prompts.Prompt, bool, error) {
  p, err := prompts.Build(name, in)
  if err != nil {
    return prompts.Prompt{}, false, err
  }

  fingerprint := p.Fingerprint()
  if obj, ok := s.cache.Get(ctx, fingerprint); ok {
    if err := check(obj); err == nil {
      s.log.Debug("Generation cache hit", "prompt", p.Name)
      return p, true, nil
    }
    s.log.Warn("Cached reply no longer validates, regenerating", "prompt", p.Name)
  }

  started := time.Now()
  obj, err := s.ai.GenerateJSON(ctx, p.System, p.User, p.SchemaName, p.Schema)
  duration := time.Since(started).Milliseconds()

  logRow := &types.AICallLog{
    Kind:          kind,
    Model:         s.ai.Model(),
    PromptName:    p.Name,
    PromptVersion: p.Version,
    DurationMS:    duration,
    Success:       err == nil,
  }
  if err != nil {
    logRow.Error = err.Error()
  }
  if _, logErr := s.callLogRepo.Create(ctx, nil, []*types.AICallLog{logRow}); logErr != nil {
    s.log.Warn("Failed to persist AI call log", "error", logErr)
  }

  if err != nil {
    return p, false, fmt.Errorf("%s generation: %w", p.Name, err)
  }
  if err := check(obj); err != nil {
    return p, false, err
  }
  s.cache.Set(ctx, fingerprint, obj)
  return p, false, nil
}

func (s *generationService) persist(
  ctx context.Context,
  docType types.DocumentType,
  title string,
  params any,
  doc any,
  p prompts.Prompt,
  fromCache bool,
  subject string,
  gradeLevel, quarter int,
  language string,
) (*types.GeneratedDocument, error) {
  paramsJSON, err := json.Marshal(params)
  if err != nil {
    return nil, fmt.Errorf("marshal params: %w", err)
  }
  contentJSON, err := json.Marshal(doc)
  if err != nil {
    return nil, fmt.Errorf("marshal content: %w", err)
  }
  row := &types.GeneratedDocument{
    Type:          docType,
    Title:         title,
    Subject:       subject,
    GradeLevel:    gradeLevel,
    Quarter:       quarter,
    Language:      language,
    Params:        datatypes.JSON(paramsJSON),
    Content:       datatypes.JSON(contentJSON),
    ModelID:       s.ai.Model(),
    PromptName:    p.Name,
    PromptVersion: p.Version,
    FromCache:     fromCache,
  }
  return s.docRepo.Create(ctx, nil, row)
}

func (s *generationService) GenerateDLP(ctx context.Context, p GenerateParams) (*types.GeneratedDocument, error) {
  if err := s.checkCatalog(p.GradeLevel, p.Subject); err != nil {
    return nil, err
  }
  lang := languageOrDefault(p.Language)

  var doc content.DailyLessonPlan
  prompt, fromCache, err := s.callModel(ctx, types.DocumentDLP, prompts.PromptDailyLessonPlan, prompts.Input{
    Subject:        p.Subject,
    GradeLevel:     p.GradeLevel,
    Quarter:        p.Quarter,
    Language:       lang,
    Competency:     p.Competency,
    CompetencyCode: p.CompetencyCode,
    Topic:          p.Topic,
    Notes:          p.Notes,
  }, func(obj map[string]any) error {
    doc = content.DailyLessonPlan{}
    if err := content.DecodeMap(obj, &doc); err != nil {
      return err
    }
    return content.ValidateDLP(&doc)
  })
  if err != nil {
    return nil, err
  }

  if hit := content.ScrubDLP(&doc); len(hit) > 0 {
    s.log.Debug("Scrubbed meta phrases from DLP", "rules", hit)
  }

  return s.persist(ctx, types.DocumentDLP, doc.Title, p, doc, prompt, fromCache,
    p.Subject, p.GradeLevel, p.Quarter, lang)
}

func (s *generationService) GenerateDLL(ctx context.Context, p DLLParams) (*types.GeneratedDocument, error) {
  if err := s.checkCatalog(p.GradeLevel, p.Subject); err != nil {
    return nil, err
  }
  lang := languageOrDefault(p.Language)

  var doc content.DailyLessonLog
  prompt, fromCache, err := s.callModel(ctx, types.DocumentDLL, prompts.PromptDailyLessonLog, prompts.Input{
    Subject:        p.Subject,
    GradeLevel:     p.GradeLevel,
    Quarter:        p.Quarter,
    Language:       lang,
    Competency:     p.Competency,
    CompetencyCode: p.CompetencyCode,
    Topic:          p.Topic,
    Notes:          p.Notes,
    WeekOf:         p.WeekOf,
  }, func(obj map[string]any) error {
    doc = content.DailyLessonLog{}
    if err := content.DecodeMap(obj, &doc); err != nil {
      return err
    }
    return content.ValidateDLL(&doc)
  })
  if err != nil {
    return nil, err
  }

  if hit := content.ScrubDLL(&doc); len(hit) > 0 {
    s.log.Debug("Scrubbed meta phrases from DLL", "rules", hit)
  }

  return s.persist(ctx, types.DocumentDLL, doc.Title, p, doc, prompt, fromCache,
    p.Subject, p.GradeLevel, p.Quarter, lang)
}

func (s *generationService) GenerateLAS(ctx context.Context, p LASParams) (*types.GeneratedDocument, error) {
  if err := s.checkCatalog(p.GradeLevel, p.Subject); err != nil {
    return nil, err
  }
  lang := languageOrDefault(p.Language)
  if p.NumActivities == 0 {
    p.NumActivities = 3
  }

  var doc content.ActivitySheet
  prompt, fromCache, err := s.callModel(ctx, types.DocumentLAS, prompts.PromptActivitySheet, prompts.Input{
    Subject:        p.Subject,
    GradeLevel:     p.GradeLevel,
    Quarter:        p.Quarter,
    Language:       lang,
    Competency:     p.Competency,
    CompetencyCode: p.CompetencyCode,
    Topic:          p.Topic,
    Notes:          p.Notes,
    NumActivities:  p.NumActivities,
  }, func(obj map[string]any) error {
    doc = content.ActivitySheet{}
    if err := content.DecodeMap(obj, &doc); err != nil {
      return err
    }
    return content.ValidateLAS(&doc)
  })
  if err != nil {
    return nil, err
  }

  if hit := content.ScrubLAS(&doc); len(hit) > 0 {
    s.log.Debug("Scrubbed meta phrases from LAS", "rules", hit)
  }

  return s.persist(ctx, types.DocumentLAS, doc.Title, p, doc, prompt, fromCache,
    p.Subject, p.GradeLevel, p.Quarter, lang)
}

func (s *generationService) GenerateQuiz(ctx context.Context, p QuizParams) (*types.GeneratedDocument, error) {
  if err := s.checkCatalog(p.GradeLevel, p.Subject); err != nil {
    return nil, err
  }
  lang := languageOrDefault(p.Language)
  if p.NumQuestions == 0 {
    p.NumQuestions = 10
  }

  var doc content.Quiz
  prompt, fromCache, err := s.callModel(ctx, types.DocumentQuiz, prompts.PromptQuiz, prompts.Input{
    Subject:        p.Subject,
    GradeLevel:     p.GradeLevel,
    Quarter:        p.Quarter,
    Language:       lang,
    Competency:     p.Competency,
    CompetencyCode: p.CompetencyCode,
    Topic:          p.Topic,
    Notes:          p.Notes,
    NumQuestions:   p.NumQuestions,
  }, func(obj map[string]any) error {
    doc = content.Quiz{}
    if err := content.DecodeMap(obj, &doc); err != nil {
      return err
    }
    return content.ValidateQuiz(&doc, p.NumQuestions)
  })
  if err != nil {
    return nil, err
  }

  if hit := content.ScrubQuiz(&doc); len(hit) > 0 {
    s.log.Debug("Scrubbed meta phrases from quiz", "rules", hit)
  }

  return s.persist(ctx, types.DocumentQuiz, doc.Title, p, doc, prompt, fromCache,
    p.Subject, p.GradeLevel, p.Quarter, lang)
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI"}

// GenerateExam runs two stages: one TOS blueprint call, then one item call
// per cognitive level that the TOS assigns items to, fanned out concurrently.
func (s *generationService) GenerateExam(ctx context.Context, p ExamParams) (*types.GeneratedDocument, error) {
  if err := s.checkCatalog(p.GradeLevel, p.Subject); err != nil {
    return nil, err
  }
  lang := languageOrDefault(p.Language)
  if p.TotalItems == 0 {
    p.TotalItems = 50
  }

  competenciesJSON, err := json.Marshal(p.Competencies)
  if err != nil {
    return nil, fmt.Errorf("marshal competencies: %w", err)
  }

  var tos content.ExamTOS
  tosPrompt, tosFromCache, err := s.callModel(ctx, types.DocumentExam, prompts.PromptExamTOS, prompts.Input{
    Subject:          p.Subject,
    GradeLevel:       p.GradeLevel,
    Quarter:          p.Quarter,
    Language:         lang,
    TotalItems:       p.TotalItems,
    CompetenciesJSON: string(competenciesJSON),
    Notes:            p.Notes,
  }, func(obj map[string]any) error {
    tos = content.ExamTOS{}
    if err := content.DecodeMap(obj, &tos); err != nil {
      return err
    }
    return content.ValidateTOS(&tos, p.TotalItems)
  })
  if err != nil {
    return nil, err
  }

  tosJSON, err := json.Marshal(tos.Rows)
  if err != nil {
    return nil, fmt.Errorf("marshal tos rows: %w", err)
  }

  // Per-level item counts and the running start numbers, Bloom order.
  levelCounts := make(map[string]int, len(content.CognitiveLevels))
  for _, row := range tos.Rows {
    for _, level := range content.CognitiveLevels {
      levelCounts[level] += row.LevelCount(level)
    }
  }
  type partPlan struct {
    level string
    count int
    start int
  }
  var plan []partPlan
  next := 1
  for _, level := range content.CognitiveLevels {
    n := levelCounts[level]
    if n == 0 {
      continue
    }
    plan = append(plan, partPlan{level: level, count: n, start: next})
    next += n
  }

  parts := make([]content.ExamPart, len(plan))
  g, gctx := errgroup.WithContext(ctx)
  g.SetLimit(3)
  for i, pp := range plan {
    i, pp := i, pp
    g.Go(func() error {
      var items struct {
        Questions []content.MCQuestion `json:"questions"`
      }
      _, _, err := s.callModel(gctx, types.DocumentExam, prompts.PromptExamItems, prompts.Input{
        Subject:        p.Subject,
        GradeLevel:     p.GradeLevel,
        Quarter:        p.Quarter,
        Language:       lang,
        TOSJSON:        string(tosJSON),
        CognitiveLevel: pp.level,
        ItemCount:      pp.count,
        StartNumber:    pp.start,
      }, func(obj map[string]any) error {
        items.Questions = nil
        if err := content.DecodeMap(obj, &items); err != nil {
          return fmt.Errorf("%s items: %w", pp.level, err)
        }
        if len(items.Questions) != pp.count {
          return fmt.Errorf("%s items: expected %d questions, got %d", pp.level, pp.count, len(items.Questions))
        }
        return nil
      })
      if err != nil {
        return err
      }
      for j := range items.Questions {
        items.Questions[j].Number = pp.start + j
      }
      partName := "Part"
      if i < len(romanNumerals) {
        partName = "Part " + romanNumerals[i]
      }
      parts[i] = content.ExamPart{
        Part:           partName,
        CognitiveLevel: pp.level,
        Directions:     "Choose the letter of the best answer.",
        Questions:      items.Questions,
      }
      return nil
    })
  }
  if err := g.Wait(); err != nil {
    return nil, err
  }

  // Items are printed grouped by cognitive level in Bloom order, with each
  // level's items assigned to competency rows in row order. The model's
  // placement column may follow a different layout, so rebuild it from the
  // numbering the exam actually uses.
  placements := make([][]int, len(tos.Rows))
  num := 1
  for _, level := range content.CognitiveLevels {
    for i := range tos.Rows {
      for k := 0; k < tos.Rows[i].LevelCount(level); k++ {
        placements[i] = append(placements[i], num)
        num++
      }
    }
  }
  for i := range tos.Rows {
    tos.Rows[i].Placement = placements[i]
  }

  exam := content.PeriodicalExam{
    Title:      tos.Title,
    Directions: tos.Directions,
    TOS:        tos.Rows,
    Parts:      parts,
  }
  if err := content.ValidateExam(&exam, p.TotalItems); err != nil {
    return nil, err
  }
  if hit := content.ScrubExam(&exam); len(hit) > 0 {
    s.log.Debug("Scrubbed meta phrases from exam", "rules", hit)
  }

  return s.persist(ctx, types.DocumentExam, exam.Title, p, exam, tosPrompt, tosFromCache,
    p.Subject, p.GradeLevel, p.Quarter, lang)
}
