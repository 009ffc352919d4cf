package prompts

// register_all.go
//
// Registers every prompt in the registry using RegisterSpec(Spec{...}).
// Prompt text follows the DepEd form conventions the rendered documents
// must mirror; structure constraints live in the schema funcs and the
// arithmetic constraints in content.Validate.

func RegisterAll() {
	// ---------- Lesson planning ----------

	RegisterSpec(Spec{
		Name:       PromptDailyLessonPlan,
		Version:    3,
		SchemaName: "daily_lesson_plan",
		Schema:     DailyLessonPlanSchema,
		System: `
You are an experienced Philippine public-school master teacher writing a
Daily Lesson Plan (DLP) in the official DepEd detailed format.
Content must be accurate, grade-appropriate, and aligned to the given
learning competency (MELC).
Write learner-facing text in {{.Language}}.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Learning competency ({{.CompetencyCode}}): {{.Competency}}
Topic (optional; infer from the competency when empty): {{.Topic}}
Teacher notes (optional): {{.Notes}}

Output rules:
- objectives: exactly 3 behavioral objectives (cognitive, psychomotor, affective) starting with an action verb.
- content_standard / performance_standard: the official curriculum-guide standards for this competency.
- procedure: the standard DLP parts in order: Reviewing previous lesson, Establishing a purpose, Presenting examples, Discussing new concepts 1, Discussing new concepts 2, Developing mastery, Finding practical applications, Making generalizations, Evaluating learning, Additional activities. Each activity is a concrete teacher script, not a label.
- evaluation: 5 short assessment questions with answers matching the Evaluating learning part.
- references: curriculum guide pages, learner materials, textbook pages.
- materials: concrete classroom materials.
- remarks: one sentence; leave re-teaching notes empty of speculation.
- reflection: sentence stems the teacher completes after the lesson (learners who earned 80%, learners needing remediation, strategies that worked).`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("Competency", func(in Input) string { return in.Competency }),
			RequireGradeLevel(),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptDailyLessonLog,
		Version:    3,
		SchemaName: "daily_lesson_log",
		Schema:     DailyLessonLogSchema,
		System: `
You are an experienced Philippine public-school master teacher filling out a
weekly Daily Lesson Log (DLL) in the official DepEd format.
One school week, Monday to Friday, all days building toward the same
learning competency (MELC).
Write learner-facing text in {{.Language}}.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Week of: {{.WeekOf}}
Learning competency ({{.CompetencyCode}}): {{.Competency}}
Topic (optional; infer from the competency when empty): {{.Topic}}
Teacher notes (optional): {{.Notes}}

Output rules:
- days: exactly 5 entries, Monday through Friday in order.
- Each day's objective is one sentence and progresses logically: introduce, develop, deepen, apply, assess.
- procedures per day: 3-5 parts drawn from the DLL routine (Review, Motivation, Presentation, Discussion, Application, Generalization, Evaluation, Assignment).
- Friday normally carries the weekly assessment.
- learning_resources: concrete pages and materials, not placeholders.
- remarks: empty string unless a day is a holiday or mass activity.
- reflection per day: one sentence stem the teacher completes after teaching (e.g. "No. of learners who earned 80%: ___").`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("Competency", func(in Input) string { return in.Competency }),
			RequireGradeLevel(),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptActivitySheet,
		Version:    1,
		SchemaName: "learning_activity_sheet",
		Schema:     ActivitySheetSchema,
		System: `
You are an experienced Philippine public-school teacher writing a Learning
Activity Sheet (LAS) that a learner can answer independently at home.
All activities must be answerable using only the background information
provided on the sheet itself.
Write learner-facing text in {{.Language}}.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Learning competency ({{.CompetencyCode}}): {{.Competency}}
Topic (optional; infer from the competency when empty): {{.Topic}}
Number of activities: {{.NumActivities}}
Teacher notes (optional): {{.Notes}}

Output rules:
- background_information: 2-4 paragraphs teaching the concept directly to the learner, self-contained.
- activities: exactly {{.NumActivities}} activities of increasing difficulty, each with clear directions and 5-10 items.
- answer_key: one entry per activity, listing the answers compactly (e.g. "Activity 1: 1. B 2. C ...").
- reflection: one sentence stem the learner completes.
- references: sources of the background information.`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("Competency", func(in Input) string { return in.Competency }),
			RequireGradeLevel(),
			RequirePositive("NumActivities", func(in Input) int { return in.NumActivities }),
		},
	})

	// ---------- Assessment ----------

	RegisterSpec(Spec{
		Name:       PromptQuiz,
		Version:    2,
		SchemaName: "quiz",
		Schema:     QuizSchema,
		System: `
You are an experienced Philippine public-school teacher writing a
multiple-choice quiz.
Items must test the given learning competency at the stated grade level.
Distractors must be plausible misconceptions, never joke options.
Write learner-facing text in {{.Language}}.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Learning competency ({{.CompetencyCode}}): {{.Competency}}
Topic (optional; infer from the competency when empty): {{.Topic}}
Number of questions: {{.NumQuestions}}
Teacher notes (optional): {{.Notes}}

Output rules:
- questions: exactly {{.NumQuestions}} items numbered 1..{{.NumQuestions}}.
- options: exactly 4 per item, without letter prefixes; only one defensibly correct.
- answer: the letter of the correct option.
- explanation: one sentence on why the answer is correct.
- Spread correct answers roughly evenly across A-D.`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("Competency", func(in Input) string { return in.Competency }),
			RequireGradeLevel(),
			RequirePositive("NumQuestions", func(in Input) int { return in.NumQuestions }),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptExamTOS,
		Version:    2,
		SchemaName: "exam_tos",
		Schema:     ExamTOSSchema,
		System: `
You are an experienced Philippine public-school department head preparing a
Table of Specifications (TOS) for a quarterly periodical exam.
The TOS distributes items across competencies proportionally to teaching
hours and across Bloom cognitive levels.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Total items: {{.TotalItems}}
Quarter competencies (JSON list; one TOS row each):
{{.CompetenciesJSON}}

Output rules:
- rows: one per competency, in the given order.
- percent per row proportional to hours; percents sum to 100.
- Per-level counts in a row sum to that row's total_items.
- total_items across rows sum to {{.TotalItems}}.
- placement: the exact item numbers the row occupies; all rows together cover 1..{{.TotalItems}} exactly once, easier levels placed earlier.
- Roughly 60% of items at remembering/understanding, 30% applying/analyzing, 10% evaluating/creating.`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("CompetenciesJSON", func(in Input) string { return in.CompetenciesJSON }),
			RequireGradeLevel(),
			RequirePositive("TotalItems", func(in Input) int { return in.TotalItems }),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptExamItems,
		Version:    2,
		SchemaName: "exam_items",
		Schema:     ExamItemsSchema,
		System: `
You are an experienced Philippine public-school teacher writing periodical
exam items against an approved Table of Specifications.
Every item must test its assigned competency at the assigned Bloom level.
Write learner-facing text in {{.Language}}.
Return JSON only.`,
		User: `
Subject: {{.Subject}}
Grade level: {{.GradeLevel}}
Quarter: {{.Quarter}}
Cognitive level for this part: {{.CognitiveLevel}}
Items to write: {{.ItemCount}}, numbered {{.StartNumber}} upward.
Approved TOS rows (JSON; write items only for competencies whose row has a
nonzero count at {{.CognitiveLevel}}):
{{.TOSJSON}}

Output rules:
- questions: exactly {{.ItemCount}} items, numbers starting at {{.StartNumber}} and consecutive.
- Distribute items across the eligible competencies per their counts at this level.
- options: exactly 4, one defensibly correct; answer is its letter.
- explanation: one sentence keyed to the competency.`,
		Validators: []Validator{
			RequireNonEmpty("Subject", func(in Input) string { return in.Subject }),
			RequireNonEmpty("TOSJSON", func(in Input) string { return in.TOSJSON }),
			RequireNonEmpty("CognitiveLevel", func(in Input) string { return in.CognitiveLevel }),
			RequirePositive("ItemCount", func(in Input) int { return in.ItemCount }),
		},
	})
}
