package preview

import (
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/aralgen/aralgen-backend/internal/content"
	"github.com/aralgen/aralgen-backend/internal/types"
)

func stored(t *testing.T, docType types.DocumentType, v any) *types.GeneratedDocument {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &types.GeneratedDocument{
		Type:       docType,
		Title:      "Preview Test",
		Subject:    "Science",
		GradeLevel: 4,
		Quarter:    1,
		Language:   "English",
		Content:    datatypes.JSON(raw),
	}
}

func TestRender_QuizShowsQuestionsAndOptions(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	quiz := content.Quiz{
		Title:      "Quiz on the Water Cycle",
		Directions: "Choose the letter of the best answer.",
		Questions: []content.MCQuestion{
			{
				Number:   1,
				Question: "Which process turns water vapor into liquid?",
				Options:  []string{"Evaporation", "Condensation", "Precipitation", "Collection"},
				Answer:   "B",
			},
		},
	}
	html, err := r.Render(stored(t, types.DocumentQuiz, quiz))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "Preview Test") {
		t.Fatalf("title missing: %s", out)
	}
	if !strings.Contains(out, "Condensation") {
		t.Fatalf("option text missing")
	}
	if !strings.Contains(out, "Science") {
		t.Fatalf("header metadata missing")
	}
}

func TestRender_DLLShowsAllFiveDays(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	days := make([]content.DLLDay, 5)
	for i, name := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		days[i] = content.DLLDay{
			Day:        name,
			Objective:  "Objective for " + name,
			Procedures: []content.ProcedurePart{{Part: "Discussion", Activity: "Discuss"}},
			Reflection: "Reflection for " + name,
		}
	}
	dll := content.DailyLessonLog{Title: "Week 2", Days: days}

	html, err := r.Render(stored(t, types.DocumentDLL, dll))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(html)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		if !strings.Contains(out, day) {
			t.Fatalf("day %s missing from preview", day)
		}
	}
	if !strings.Contains(out, "Reflection for Friday") {
		t.Fatalf("reflection row missing from preview")
	}
}

func TestRender_EscapesStoredText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	quiz := content.Quiz{
		Title:      "Quiz",
		Directions: "<script>alert(1)</script>",
	}
	html, err := r.Render(stored(t, types.DocumentQuiz, quiz))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("stored text not escaped")
	}
}

func TestRender_UnknownTypeFails(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	doc := stored(t, types.DocumentType("memo"), map[string]any{})
	if _, err := r.Render(doc); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}
