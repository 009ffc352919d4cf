package services

import (
  "encoding/json"
  "strings"
  "testing"

  "gorm.io/datatypes"

  "github.com/aralgen/aralgen-backend/internal/content"
  "github.com/aralgen/aralgen-backend/internal/types"
)

func TestExportFilename_SanitizesTitle(t *testing.T) {
  doc := &types.GeneratedDocument{
    Type:  types.DocumentQuiz,
    Title: "Quiz: Fractions / Decimals?",
  }
  got := exportFilename(doc, "docx")
  if got != "QUIZ_Quiz-_Fractions_-_Decimals.docx" {
    t.Fatalf("unexpected filename %q", got)
  }
}

func TestExportFilename_FallsBackToType(t *testing.T) {
  doc := &types.GeneratedDocument{Type: types.DocumentDLP, Title: "  "}
  got := exportFilename(doc, "docx")
  if got != "DLP_dlp.docx" {
    t.Fatalf("unexpected filename %q", got)
  }
}

func TestExportFilename_CapsLength(t *testing.T) {
  doc := &types.GeneratedDocument{
    Type:  types.DocumentLAS,
    Title: strings.Repeat("a", 200),
  }
  got := exportFilename(doc, "docx")
  if len(got) > 100 {
    t.Fatalf("filename too long: %d", len(got))
  }
}

func storedDoc(t *testing.T, docType types.DocumentType, v any) *types.GeneratedDocument {
  t.Helper()
  raw, err := json.Marshal(v)
  if err != nil {
    t.Fatalf("marshal: %v", err)
  }
  return &types.GeneratedDocument{
    Type:       docType,
    Title:      "Stored",
    Subject:    "Science",
    GradeLevel: 4,
    Quarter:    1,
    Content:    datatypes.JSON(raw),
  }
}

func TestExport_RendersQuizDocx(t *testing.T) {
  quiz := content.Quiz{
    Title:      "Quiz",
    Directions: "Choose the letter of the best answer.",
    Questions: []content.MCQuestion{
      {Number: 1, Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "A"},
    },
  }
  svc := NewExportService(testLogger(t))
  res, err := svc.Export(storedDoc(t, types.DocumentQuiz, quiz), FormatDocx)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if res.ContentType != mimeDocx {
    t.Fatalf("unexpected content type %q", res.ContentType)
  }
  if len(res.Data) < 2 || res.Data[0] != 'P' || res.Data[1] != 'K' {
    t.Fatalf("output is not a zip container")
  }
  if !strings.HasSuffix(res.Filename, ".docx") {
    t.Fatalf("unexpected filename %q", res.Filename)
  }
}

func TestExport_XlsxOnlyForExams(t *testing.T) {
  quiz := content.Quiz{Title: "Quiz", Directions: "d"}
  svc := NewExportService(testLogger(t))
  if _, err := svc.Export(storedDoc(t, types.DocumentQuiz, quiz), FormatXlsx); err == nil {
    t.Fatalf("expected error for quiz xlsx export")
  }

  exam := content.PeriodicalExam{
    Title: "Exam",
    TOS: []content.TOSRow{
      {Objective: "o", Topic: "t", Hours: 2, Percent: 100, Remembering: 2, TotalItems: 2, Placement: []int{1, 2}},
    },
  }
  res, err := svc.Export(storedDoc(t, types.DocumentExam, exam), FormatXlsx)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if res.ContentType != mimeXlsx {
    t.Fatalf("unexpected content type %q", res.ContentType)
  }
}

func TestExport_UnknownFormatFails(t *testing.T) {
  svc := NewExportService(testLogger(t))
  doc := storedDoc(t, types.DocumentQuiz, content.Quiz{Title: "q"})
  if _, err := svc.Export(doc, ExportFormat("pdf")); err == nil {
    t.Fatalf("expected error for unknown format")
  }
}
