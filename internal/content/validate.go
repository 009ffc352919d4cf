package content

import (
	"fmt"
	"sort"
	"strings"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ValidateDLP checks the shape constraints the schema cannot express.
func ValidateDLP(doc *DailyLessonPlan) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("dlp: missing title")
	}
	if strings.TrimSpace(doc.LearningCompetency) == "" {
		return fmt.Errorf("dlp: missing learning_competency")
	}
	if len(doc.Objectives) != 3 {
		return fmt.Errorf("dlp: expected 3 objectives, got %d", len(doc.Objectives))
	}
	if len(doc.Procedure) < 5 {
		return fmt.Errorf("dlp: procedure too short, got %d parts", len(doc.Procedure))
	}
	for i, p := range doc.Procedure {
		if strings.TrimSpace(p.Part) == "" || strings.TrimSpace(p.Activity) == "" {
			return fmt.Errorf("dlp: procedure part %d incomplete", i+1)
		}
	}
	if len(doc.Evaluation) == 0 {
		return fmt.Errorf("dlp: missing evaluation questions")
	}
	for i, q := range doc.Evaluation {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("dlp: evaluation item %d incomplete", i+1)
		}
	}
	return nil
}

// ValidateDLL checks the Monday-Friday structure. Days must be present in
// order; a day may be effectively empty only when its remarks explain why
// (holiday, school activity).
func ValidateDLL(doc *DailyLessonLog) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("dll: missing title")
	}
	if len(doc.Days) != 5 {
		return fmt.Errorf("dll: expected 5 days, got %d", len(doc.Days))
	}
	taught := 0
	for i, d := range doc.Days {
		if d.Day != weekdays[i] {
			return fmt.Errorf("dll: day %d is %q, expected %q", i+1, d.Day, weekdays[i])
		}
		if strings.TrimSpace(d.Objective) == "" {
			if strings.TrimSpace(d.Remarks) == "" {
				return fmt.Errorf("dll: %s has neither objective nor remarks", d.Day)
			}
			continue
		}
		if len(d.Procedures) == 0 {
			return fmt.Errorf("dll: %s has no procedures", d.Day)
		}
		taught++
	}
	if taught == 0 {
		return fmt.Errorf("dll: no teaching day in the week")
	}
	return nil
}

func ValidateLAS(doc *ActivitySheet) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("las: missing title")
	}
	if strings.TrimSpace(doc.BackgroundInformation) == "" {
		return fmt.Errorf("las: missing background_information")
	}
	if len(doc.Activities) == 0 {
		return fmt.Errorf("las: no activities")
	}
	for i, a := range doc.Activities {
		if strings.TrimSpace(a.Directions) == "" {
			return fmt.Errorf("las: activity %d missing directions", i+1)
		}
		if len(a.Items) == 0 {
			return fmt.Errorf("las: activity %d has no items", i+1)
		}
	}
	if len(doc.AnswerKey) == 0 {
		return fmt.Errorf("las: missing answer_key")
	}
	return nil
}

func validateQuestions(prefix string, qs []MCQuestion, wantCount, startNumber int) error {
	if wantCount > 0 && len(qs) != wantCount {
		return fmt.Errorf("%s: expected %d questions, got %d", prefix, wantCount, len(qs))
	}
	if len(qs) == 0 {
		return fmt.Errorf("%s: no questions", prefix)
	}
	for i, q := range qs {
		n := i + 1
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%s: question %d empty", prefix, n)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("%s: question %d has %d options, expected 4", prefix, n, len(q.Options))
		}
		for j, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return fmt.Errorf("%s: question %d option %d empty", prefix, n, j+1)
			}
		}
		answer := strings.ToUpper(strings.TrimSpace(q.Answer))
		if answer < "A" || answer > "D" || len(answer) != 1 {
			return fmt.Errorf("%s: question %d has invalid answer %q", prefix, n, q.Answer)
		}
		qs[i].Answer = answer
		if startNumber > 0 {
			// Renumber rather than reject; models drift on absolute numbers.
			qs[i].Number = startNumber + i
		}
	}
	return nil
}

func ValidateQuiz(doc *Quiz, wantQuestions int) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("quiz: missing title")
	}
	if strings.TrimSpace(doc.Directions) == "" {
		return fmt.Errorf("quiz: missing directions")
	}
	return validateQuestions("quiz", doc.Questions, wantQuestions, 1)
}

// ValidateTOS enforces the blueprint arithmetic: per-level counts sum to the
// row total, row totals sum to the requested item count, and placements
// cover 1..total exactly once. Row sums that disagree with the stated
// total_items are corrected from the level counts, which are authoritative.
func ValidateTOS(doc *ExamTOS, totalItems int) error {
	if len(doc.Rows) == 0 {
		return fmt.Errorf("tos: no rows")
	}
	sum := 0
	var placements []int
	for i := range doc.Rows {
		r := &doc.Rows[i]
		levelSum := r.Remembering + r.Understanding + r.Applying +
			r.Analyzing + r.Evaluating + r.Creating
		if levelSum == 0 {
			return fmt.Errorf("tos: row %d (%s) has no items", i+1, r.Topic)
		}
		if r.TotalItems != levelSum {
			r.TotalItems = levelSum
		}
		if len(r.Placement) != r.TotalItems {
			return fmt.Errorf("tos: row %d placement lists %d items, row has %d",
				i+1, len(r.Placement), r.TotalItems)
		}
		sum += r.TotalItems
		placements = append(placements, r.Placement...)
	}
	if sum != totalItems {
		return fmt.Errorf("tos: rows sum to %d items, requested %d", sum, totalItems)
	}
	sort.Ints(placements)
	for i, p := range placements {
		if p != i+1 {
			return fmt.Errorf("tos: placements are not a permutation of 1..%d", totalItems)
		}
	}
	return nil
}

// ValidateExam checks an assembled exam after the item fan-out.
func ValidateExam(doc *PeriodicalExam, totalItems int) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("exam: missing title")
	}
	if len(doc.Parts) == 0 {
		return fmt.Errorf("exam: no parts")
	}
	count := 0
	for _, p := range doc.Parts {
		if err := validateQuestions("exam "+p.CognitiveLevel, p.Questions, 0, 0); err != nil {
			return err
		}
		count += len(p.Questions)
	}
	if count != totalItems {
		return fmt.Errorf("exam: parts carry %d items, expected %d", count, totalItems)
	}
	return nil
}
