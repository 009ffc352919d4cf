package services

import (
  "encoding/json"
  "fmt"
  "strings"

  "github.com/aralgen/aralgen-backend/internal/content"
  "github.com/aralgen/aralgen-backend/internal/docgen"
  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/types"
)

type ExportFormat string

const (
  FormatDocx ExportFormat = "docx"
  FormatXlsx ExportFormat = "xlsx"
)

// ExportResult is a rendered download: the file bytes plus the headers the
// handler needs to serve it.
type ExportResult struct {
  Filename    string
  ContentType string
  Data        []byte
}

type ExportService interface {
  Export(doc *types.GeneratedDocument, format ExportFormat) (*ExportResult, error)
}

type exportService struct {
  log *logger.Logger
}

func NewExportService(log *logger.Logger) ExportService {
  return &exportService{log: log.With("service", "ExportService")}
}

const (
  mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
  mimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *exportService) Export(doc *types.GeneratedDocument, format ExportFormat) (*ExportResult, error) {
  meta := docgen.Meta{
    Subject:    doc.Subject,
    GradeLevel: doc.GradeLevel,
    Quarter:    doc.Quarter,
    Language:   doc.Language,
  }

  switch format {
  case FormatDocx:
    data, err := s.renderDocx(doc, meta)
    if err != nil {
      return nil, err
    }
    return &ExportResult{
      Filename:    exportFilename(doc, "docx"),
      ContentType: mimeDocx,
      Data:        data,
    }, nil

  case FormatXlsx:
    if doc.Type != types.DocumentExam {
      return nil, fmt.Errorf("xlsx export only available for exams, document is %s", doc.Type)
    }
    var exam content.PeriodicalExam
    if err := json.Unmarshal(doc.Content, &exam); err != nil {
      return nil, fmt.Errorf("decode stored exam: %w", err)
    }
    data, err := docgen.RenderTOSWorkbook(&exam, meta)
    if err != nil {
      return nil, err
    }
    return &ExportResult{
      Filename:    exportFilename(doc, "xlsx"),
      ContentType: mimeXlsx,
      Data:        data,
    }, nil
  }

  return nil, fmt.Errorf("unknown export format %q", format)
}

func (s *exportService) renderDocx(doc *types.GeneratedDocument, meta docgen.Meta) ([]byte, error) {
  switch doc.Type {
  case types.DocumentDLP:
    var d content.DailyLessonPlan
    if err := json.Unmarshal(doc.Content, &d); err != nil {
      return nil, fmt.Errorf("decode stored dlp: %w", err)
    }
    return docgen.RenderDLP(&d, meta)
  case types.DocumentDLL:
    var d content.DailyLessonLog
    if err := json.Unmarshal(doc.Content, &d); err != nil {
      return nil, fmt.Errorf("decode stored dll: %w", err)
    }
    return docgen.RenderDLL(&d, meta)
  case types.DocumentLAS:
    var d content.ActivitySheet
    if err := json.Unmarshal(doc.Content, &d); err != nil {
      return nil, fmt.Errorf("decode stored las: %w", err)
    }
    return docgen.RenderLAS(&d, meta)
  case types.DocumentQuiz:
    var d content.Quiz
    if err := json.Unmarshal(doc.Content, &d); err != nil {
      return nil, fmt.Errorf("decode stored quiz: %w", err)
    }
    return docgen.RenderQuiz(&d, meta)
  case types.DocumentExam:
    var d content.PeriodicalExam
    if err := json.Unmarshal(doc.Content, &d); err != nil {
      return nil, fmt.Errorf("decode stored exam: %w", err)
    }
    return docgen.RenderExam(&d, meta)
  }
  return nil, fmt.Errorf("unknown document type %q", doc.Type)
}

var filenameSanitizer = strings.NewReplacer(
  "/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "", " ", "_",
)

func exportFilename(doc *types.GeneratedDocument, ext string) string {
  base := strings.TrimSpace(doc.Title)
  if base == "" {
    base = string(doc.Type)
  }
  base = filenameSanitizer.Replace(base)
  if len(base) > 80 {
    base = base[:80]
  }
  return fmt.Sprintf("%s_%s.%s", strings.ToUpper(string(doc.Type)), base, ext)
}
