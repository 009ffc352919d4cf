package docgen

import (
	"strings"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderDLL lays out the weekly Daily Lesson Log grid: one column per day,
// the standard DLL row labels down the left edge.
func RenderDLL(doc *content.DailyLessonLog, meta Meta) ([]byte, error) {
	b := newBuilder()
	b.formHeader("Daily Lesson Log", doc.Title, meta)

	b.labeled("Content Standard", doc.ContentStandard)
	b.labeled("Performance Standard", doc.PerformanceStandard)
	b.spacer()

	header := []string{""}
	objectives := []string{"I. Objectives"}
	contents := []string{"II. Content"}
	resources := []string{"III. Learning Resources"}
	procedures := []string{"IV. Procedures"}
	remarks := []string{"V. Remarks"}
	reflection := []string{"VI. Reflection"}

	for _, d := range doc.Days {
		header = append(header, d.Day)
		objectives = append(objectives, d.Objective)
		contents = append(contents, d.Content)
		resources = append(resources, strings.Join(d.LearningResources, "\n"))

		var steps []string
		for _, p := range d.Procedures {
			steps = append(steps, p.Part+": "+p.Activity)
		}
		procedures = append(procedures, strings.Join(steps, "\n"))
		remarks = append(remarks, d.Remarks)
		reflection = append(reflection, d.Reflection)
	}

	b.table([][]string{header, objectives, contents, resources, procedures, remarks, reflection}, true)

	return b.bytes()
}
