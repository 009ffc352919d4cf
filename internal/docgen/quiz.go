package docgen

import (
	"fmt"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderQuiz lays out a multiple-choice quiz with a trailing answer key.
func RenderQuiz(doc *content.Quiz, meta Meta) ([]byte, error) {
	b := newBuilder()
	b.formHeader("Quiz", doc.Title, meta)

	b.labeled("Directions", doc.Directions)
	b.spacer()

	writeQuestions(b, doc.Questions)

	b.spacer()
	b.heading("Answer Key")
	writeAnswerKey(b, doc.Questions)

	return b.bytes()
}

func writeQuestions(b *builder, qs []content.MCQuestion) {
	for _, q := range qs {
		b.para(fmt.Sprintf("%d. %s", q.Number, q.Question))
		for _, line := range optionLines(q.Options) {
			b.para(line)
		}
	}
}

func writeAnswerKey(b *builder, qs []content.MCQuestion) {
	for _, q := range qs {
		line := fmt.Sprintf("%d. %s", q.Number, q.Answer)
		if q.Explanation != "" {
			line += " - " + q.Explanation
		}
		b.para(line)
	}
}
