package docgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderExam lays out a periodical exam: the Table of Specifications page,
// the item parts, and the answer key.
func RenderExam(doc *content.PeriodicalExam, meta Meta) ([]byte, error) {
	b := newBuilder()
	b.formHeader("Periodical Examination", doc.Title, meta)

	if doc.Directions != "" {
		b.labeled("General Directions", doc.Directions)
		b.spacer()
	}

	b.heading("Table of Specifications")
	b.table(tosRows(doc.TOS), true)
	b.spacer()

	for _, part := range doc.Parts {
		b.heading(fmt.Sprintf("%s. %s", part.Part, titleCase(part.CognitiveLevel)))
		b.labeled("Directions", part.Directions)
		writeQuestions(b, part.Questions)
		b.spacer()
	}

	b.heading("Answer Key")
	for _, part := range doc.Parts {
		writeAnswerKey(b, part.Questions)
	}

	return b.bytes()
}

func tosRows(rows []content.TOSRow) [][]string {
	out := [][]string{{
		"Objective", "Topic", "Hours", "%", "R", "U", "Ap", "An", "E", "C", "Items", "Placement",
	}}
	totals := content.TOSRow{}
	for _, r := range rows {
		out = append(out, []string{
			r.Objective,
			r.Topic,
			strconv.FormatFloat(r.Hours, 'f', -1, 64),
			strconv.FormatFloat(r.Percent, 'f', -1, 64),
			strconv.Itoa(r.Remembering),
			strconv.Itoa(r.Understanding),
			strconv.Itoa(r.Applying),
			strconv.Itoa(r.Analyzing),
			strconv.Itoa(r.Evaluating),
			strconv.Itoa(r.Creating),
			strconv.Itoa(r.TotalItems),
			placementRanges(r.Placement),
		})
		totals.Hours += r.Hours
		totals.Percent += r.Percent
		totals.Remembering += r.Remembering
		totals.Understanding += r.Understanding
		totals.Applying += r.Applying
		totals.Analyzing += r.Analyzing
		totals.Evaluating += r.Evaluating
		totals.Creating += r.Creating
		totals.TotalItems += r.TotalItems
	}
	out = append(out, []string{
		"TOTAL", "",
		strconv.FormatFloat(totals.Hours, 'f', -1, 64),
		strconv.FormatFloat(totals.Percent, 'f', -1, 64),
		strconv.Itoa(totals.Remembering),
		strconv.Itoa(totals.Understanding),
		strconv.Itoa(totals.Applying),
		strconv.Itoa(totals.Analyzing),
		strconv.Itoa(totals.Evaluating),
		strconv.Itoa(totals.Creating),
		strconv.Itoa(totals.TotalItems),
		"",
	})
	return out
}

// placementRanges compacts item numbers into "1-5, 8, 10-12" form.
func placementRanges(nums []int) string {
	if len(nums) == 0 {
		return ""
	}
	nums = append([]int(nil), nums...)
	sort.Ints(nums)
	var parts []string
	start, prev := nums[0], nums[0]
	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, n := range nums[1:] {
		if n == prev+1 {
			prev = n
			continue
		}
		flush()
		start, prev = n, n
	}
	flush()
	return strings.Join(parts, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
