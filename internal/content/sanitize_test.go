package content

import (
	"strings"
	"testing"
)

func TestScrubMetaText_RemovesAssistantPhrases(t *testing.T) {
	in := "Certainly! Here is your lesson plan: Discuss the water cycle. Let me know if you need changes."
	out, hit := scrubMetaText(in)
	if len(hit) == 0 {
		t.Fatalf("expected rules to fire")
	}
	if strings.Contains(strings.ToLower(out), "certainly") {
		t.Fatalf("certainly not removed: %q", out)
	}
	if strings.Contains(strings.ToLower(out), "let me know") {
		t.Fatalf("let me know not removed: %q", out)
	}
	if !strings.Contains(out, "Discuss the water cycle.") {
		t.Fatalf("content lost: %q", out)
	}
}

func TestScrubMetaText_LeavesCleanTextUntouched(t *testing.T) {
	in := "Ask the learners to list three examples of matter."
	out, hit := scrubMetaText(in)
	if out != in {
		t.Fatalf("clean text modified: %q", out)
	}
	if len(hit) != 0 {
		t.Fatalf("unexpected hits: %v", hit)
	}
}

func TestScrubQuiz_ScrubsQuestionsNotAnswers(t *testing.T) {
	doc := &Quiz{
		Title:      "Quiz",
		Directions: "As an AI model, I suggest you choose the best answer.",
		Questions: []MCQuestion{
			{
				Question: "I hope this helps! What is the capital of the Philippines?",
				Options:  []string{"Manila", "Cebu", "Davao", "Baguio"},
				Answer:   "A",
			},
		},
	}
	hit := ScrubQuiz(doc)
	if len(hit) == 0 {
		t.Fatalf("expected scrub hits")
	}
	if strings.Contains(strings.ToLower(doc.Directions), "as an ai") {
		t.Fatalf("directions not scrubbed: %q", doc.Directions)
	}
	if strings.Contains(strings.ToLower(doc.Questions[0].Question), "hope this helps") {
		t.Fatalf("question not scrubbed: %q", doc.Questions[0].Question)
	}
	if doc.Questions[0].Answer != "A" {
		t.Fatalf("answer modified: %q", doc.Questions[0].Answer)
	}
}

func TestScrubDLP_WalksNestedFields(t *testing.T) {
	doc := sampleDLP()
	doc.Procedure[2].Activity = "Here's the plan: present three worked examples."
	doc.Reflection = "Certainly! No. of learners who earned 80%: ___"
	hit := ScrubDLP(doc)
	if len(hit) != 2 {
		t.Fatalf("expected two hits, got %v", hit)
	}
	if !strings.HasPrefix(doc.Procedure[2].Activity, "present three") {
		t.Fatalf("activity not scrubbed: %q", doc.Procedure[2].Activity)
	}
	if !strings.HasPrefix(doc.Reflection, "No. of learners") {
		t.Fatalf("reflection not scrubbed: %q", doc.Reflection)
	}
}

func TestScrubDLL_WalksDayReflections(t *testing.T) {
	doc := sampleDLL()
	doc.Days[0].Reflection = "As an AI model, strategies that worked: drill pairs."
	hit := ScrubDLL(doc)
	if len(hit) != 1 {
		t.Fatalf("expected one hit, got %v", hit)
	}
	if !strings.HasPrefix(doc.Days[0].Reflection, "strategies that worked") {
		t.Fatalf("day reflection not scrubbed: %q", doc.Days[0].Reflection)
	}
}
