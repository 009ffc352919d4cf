package prompts

type PromptName string

const (
	// Lesson planning
	PromptDailyLessonPlan PromptName = "daily_lesson_plan"
	PromptDailyLessonLog  PromptName = "daily_lesson_log"
	PromptActivitySheet   PromptName = "learning_activity_sheet"

	// Assessment
	PromptQuiz      PromptName = "quiz"
	PromptExamTOS   PromptName = "exam_tos"
	PromptExamItems PromptName = "exam_items"
)
