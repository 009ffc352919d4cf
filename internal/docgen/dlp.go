package docgen

import (
	"fmt"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderDLP lays out the detailed Daily Lesson Plan form.
func RenderDLP(doc *content.DailyLessonPlan, meta Meta) ([]byte, error) {
	b := newBuilder()
	b.formHeader("Daily Lesson Plan", doc.Title, meta)

	b.heading("I. OBJECTIVES")
	b.labeled("Content Standard", doc.ContentStandard)
	b.labeled("Performance Standard", doc.PerformanceStandard)
	b.labeled("Learning Competency", doc.LearningCompetency)
	b.para("At the end of the lesson, the learners are expected to:")
	b.bullets(doc.Objectives)
	b.spacer()

	b.heading("II. SUBJECT MATTER")
	b.labeled("Topic", doc.Topic)
	if len(doc.References) > 0 {
		b.labeled("References", "")
		b.bullets(doc.References)
	}
	if len(doc.Materials) > 0 {
		b.labeled("Materials", "")
		b.bullets(doc.Materials)
	}
	b.spacer()

	b.heading("III. PROCEDURE")
	rows := [][]string{{"Part", "Teacher's Activity"}}
	for _, p := range doc.Procedure {
		rows = append(rows, []string{p.Part, p.Activity})
	}
	b.table(rows, true)
	b.spacer()

	b.heading("IV. EVALUATION")
	for i, q := range doc.Evaluation {
		b.para(fmt.Sprintf("%d. %s", i+1, q.Question))
	}
	b.spacer()

	if doc.AdditionalActivities != "" {
		b.heading("V. ASSIGNMENT")
		b.para(doc.AdditionalActivities)
		b.spacer()
	}

	if doc.Remarks != "" {
		b.labeled("Remarks", doc.Remarks)
		b.spacer()
	}

	if doc.Reflection != "" {
		b.heading("VI. REFLECTION")
		b.para(doc.Reflection)
		b.spacer()
	}

	b.heading("ANSWER KEY")
	for i, q := range doc.Evaluation {
		b.para(fmt.Sprintf("%d. %s", i+1, q.Answer))
	}

	return b.bytes()
}
