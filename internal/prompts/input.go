package prompts

// Input is a superset of all fields any prompt might need.
// Missing fields render empty strings (templates use missingkey=zero).
type Input struct {
	// Common form parameters
	Subject        string
	GradeLevel     int
	Quarter        int
	Language       string // English | Filipino | Taglish
	Competency     string // MELC text the document must target
	CompetencyCode string // e.g. M5NS-Ia-1
	Topic          string
	Notes          string // free-form teacher instructions

	// Daily Lesson Log
	WeekOf string

	// Learning Activity Sheet
	NumActivities int

	// Quiz
	NumQuestions int

	// Periodical exam
	TotalItems       int
	CompetenciesJSON string // quarter competency list for the TOS
	TOSJSON          string // item-generation stage: the approved TOS rows
	CognitiveLevel   string // item-generation stage: Bloom level for this part
	ItemCount        int    // item-generation stage: items to produce
	StartNumber      int    // item-generation stage: first item number
}
