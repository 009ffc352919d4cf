package content

import (
	"strings"
	"testing"
)

func TestStripFences_RemovesJSONFence(t *testing.T) {
	raw := "```json\n{\"title\": \"t\"}\n```"
	got := StripFences(raw)
	if got != "{\"title\": \"t\"}" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestStripFences_LeavesPlainJSONAlone(t *testing.T) {
	raw := "{\"title\": \"t\"}"
	if got := StripFences(raw); got != raw {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestDecode_StripsFencesBeforeDecoding(t *testing.T) {
	var q Quiz
	raw := "```json\n{\"title\":\"Quiz 1\",\"directions\":\"Choose.\",\"questions\":[]}\n```"
	if err := Decode(raw, &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Title != "Quiz 1" {
		t.Fatalf("expected title decoded, got %q", q.Title)
	}
}

func TestDecode_RejectsTrailingGarbage(t *testing.T) {
	var q Quiz
	raw := "{\"title\":\"Quiz 1\",\"directions\":\"d\",\"questions\":[]}\nHope this helps!"
	err := Decode(raw, &q)
	if err == nil {
		t.Fatalf("expected error for trailing text")
	}
}

func TestDecodeMap_RoundTripsTypedStruct(t *testing.T) {
	obj := map[string]any{
		"title":      "Unit Quiz",
		"directions": "Choose the letter of the best answer.",
		"questions": []any{
			map[string]any{
				"number":      1,
				"question":    "What is 2+2?",
				"options":     []any{"3", "4", "5", "6"},
				"answer":      "B",
				"explanation": "Basic addition.",
			},
		},
	}
	var q Quiz
	if err := DecodeMap(obj, &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Questions) != 1 || q.Questions[0].Answer != "B" {
		t.Fatalf("unexpected questions: %+v", q.Questions)
	}
	if !strings.Contains(q.Directions, "best answer") {
		t.Fatalf("unexpected directions: %q", q.Directions)
	}
}
