package docgen

import (
	"fmt"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderLAS lays out the Learning Activity Sheet for independent learning.
func RenderLAS(doc *content.ActivitySheet, meta Meta) ([]byte, error) {
	b := newBuilder()
	b.formHeader("Learning Activity Sheet", doc.Title, meta)

	b.labeled("Learning Competency", doc.LearningCompetency)
	b.spacer()

	b.heading("Background Information for Learners")
	b.para(doc.BackgroundInformation)
	b.spacer()

	for i, a := range doc.Activities {
		title := a.Title
		if title == "" {
			title = fmt.Sprintf("Activity %d", i+1)
		} else {
			title = fmt.Sprintf("Activity %d: %s", i+1, a.Title)
		}
		b.heading(title)
		b.labeled("Directions", a.Directions)
		b.numbered(a.Items, 1)
		b.spacer()
	}

	b.heading("Reflection")
	b.para(doc.Reflection)
	b.spacer()

	if len(doc.References) > 0 {
		b.heading("References")
		b.bullets(doc.References)
		b.spacer()
	}

	b.heading("Answer Key")
	b.bullets(doc.AnswerKey)

	return b.bytes()
}
