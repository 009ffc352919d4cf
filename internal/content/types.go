// Package content holds the typed shapes of AI-generated documents and the
// decode/validate/scrub passes every model reply goes through before it is
// persisted or rendered.
package content

// ProcedurePart is one labeled step of a lesson procedure.
type ProcedurePart struct {
	Part     string `json:"part"`
	Activity string `json:"activity"`
}

// MCQuestion is a single multiple-choice item. Options carry no letter
// prefix; Answer is the letter A-D.
type MCQuestion struct {
	Number      int      `json:"number"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// DailyLessonPlan mirrors the DepEd detailed DLP form.
type DailyLessonPlan struct {
	Title                string          `json:"title"`
	ContentStandard      string          `json:"content_standard"`
	PerformanceStandard  string          `json:"performance_standard"`
	LearningCompetency   string          `json:"learning_competency"`
	Objectives           []string        `json:"objectives"`
	Topic                string          `json:"topic"`
	References           []string        `json:"references"`
	Materials            []string        `json:"materials"`
	Procedure            []ProcedurePart `json:"procedure"`
	Evaluation           []EvaluationItem `json:"evaluation"`
	AdditionalActivities string          `json:"additional_activities"`
	Remarks              string          `json:"remarks"`
	Reflection           string          `json:"reflection"`
}

type EvaluationItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DailyLessonLog is one week of the DepEd DLL form, Monday to Friday.
type DailyLessonLog struct {
	Title               string   `json:"title"`
	ContentStandard     string   `json:"content_standard"`
	PerformanceStandard string   `json:"performance_standard"`
	Days                []DLLDay `json:"days"`
}

type DLLDay struct {
	Day               string          `json:"day"`
	Objective         string          `json:"objective"`
	Content           string          `json:"content"`
	LearningResources []string        `json:"learning_resources"`
	Procedures        []ProcedurePart `json:"procedures"`
	Remarks           string          `json:"remarks"`
	Reflection        string          `json:"reflection"`
}

// ActivitySheet mirrors the DepEd LAS format for independent learning.
type ActivitySheet struct {
	Title                 string        `json:"title"`
	BackgroundInformation string        `json:"background_information"`
	LearningCompetency    string        `json:"learning_competency"`
	Activities            []LASActivity `json:"activities"`
	Reflection            string        `json:"reflection"`
	References            []string      `json:"references"`
	AnswerKey             []string      `json:"answer_key"`
}

type LASActivity struct {
	Title      string   `json:"title"`
	Directions string   `json:"directions"`
	Items      []string `json:"items"`
}

// Quiz is a short multiple-choice assessment.
type Quiz struct {
	Title      string       `json:"title"`
	Directions string       `json:"directions"`
	Questions  []MCQuestion `json:"questions"`
}

// TOSRow is one Table of Specifications row: a competency's share of the
// exam, its spread over Bloom levels, and the item numbers it occupies.
type TOSRow struct {
	Objective     string  `json:"objective"`
	Topic         string  `json:"topic"`
	Hours         float64 `json:"hours"`
	Percent       float64 `json:"percent"`
	Remembering   int     `json:"remembering"`
	Understanding int     `json:"understanding"`
	Applying      int     `json:"applying"`
	Analyzing     int     `json:"analyzing"`
	Evaluating    int     `json:"evaluating"`
	Creating      int     `json:"creating"`
	TotalItems    int     `json:"total_items"`
	Placement     []int   `json:"placement"`
}

// LevelCount returns the row's item count at a cognitive level name.
func (r TOSRow) LevelCount(level string) int {
	switch level {
	case "remembering":
		return r.Remembering
	case "understanding":
		return r.Understanding
	case "applying":
		return r.Applying
	case "analyzing":
		return r.Analyzing
	case "evaluating":
		return r.Evaluating
	case "creating":
		return r.Creating
	}
	return 0
}

// ExamTOS is the blueprint stage of a periodical exam.
type ExamTOS struct {
	Title      string   `json:"title"`
	Directions string   `json:"directions"`
	Rows       []TOSRow `json:"rows"`
}

// ExamPart groups the items generated for one cognitive level.
type ExamPart struct {
	Part           string       `json:"part"`
	CognitiveLevel string       `json:"cognitive_level"`
	Directions     string       `json:"directions"`
	Questions      []MCQuestion `json:"questions"`
}

// PeriodicalExam is the assembled exam: the TOS plus the generated parts.
type PeriodicalExam struct {
	Title      string     `json:"title"`
	Directions string     `json:"directions"`
	TOS        []TOSRow   `json:"tos"`
	Parts      []ExamPart `json:"parts"`
}

// CognitiveLevels is the Bloom ordering used for TOS columns and exam parts.
var CognitiveLevels = []string{
	"remembering", "understanding", "applying", "analyzing", "evaluating", "creating",
}
