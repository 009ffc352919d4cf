package content

import (
	"regexp"
	"strings"
)

type scrubRule struct {
	Label       string
	Re          *regexp.Regexp
	Replacement string
}

var wsRE = regexp.MustCompile(`\s{2,}`)

// Assistant meta-phrases that leak into learner-facing text despite the
// prompts. Matched case-insensitively; learner text only, never answers.
var metaScrubRules = []scrubRule{
	{Label: "here's the plan", Re: regexp.MustCompile(`(?i)here'?s? (is )?the plan[:.]?\s*`), Replacement: ""},
	{Label: "as an ai", Re: regexp.MustCompile(`(?i)as an ai( language)?( model)?,?\s*`), Replacement: ""},
	{Label: "certainly", Re: regexp.MustCompile(`(?i)^certainly[!.,]?\s*`), Replacement: ""},
	{Label: "here is your", Re: regexp.MustCompile(`(?i)^here (is|are) (your|the) [a-z ]+[:.]?\s*`), Replacement: ""},
	{Label: "let me know", Re: regexp.MustCompile(`(?i)let me know if you (want|need)[^.!?]*[.!?]?`), Replacement: ""},
	{Label: "feel free to adjust", Re: regexp.MustCompile(`(?i)feel free to (adjust|modify|edit)[^.!?]*[.!?]?`), Replacement: ""},
	{Label: "i hope this helps", Re: regexp.MustCompile(`(?i)i hope this helps[^.!?]*[.!?]?`), Replacement: ""},
}

func scrubMetaText(s string) (string, []string) {
	if strings.TrimSpace(s) == "" {
		return s, nil
	}
	orig := s
	hit := make([]string, 0)
	for _, r := range metaScrubRules {
		if r.Re == nil {
			continue
		}
		if r.Re.MatchString(s) {
			s = r.Re.ReplaceAllString(s, r.Replacement)
			hit = append(hit, r.Label)
		}
	}
	if s != orig {
		s = wsRE.ReplaceAllString(s, " ")
		s = strings.ReplaceAll(s, " \n", "\n")
		s = strings.ReplaceAll(s, "\n ", "\n")
		s = strings.TrimSpace(s)
	}
	return s, hit
}

func scrubStrings(hit *[]string, fields ...*string) {
	for _, f := range fields {
		if f == nil {
			continue
		}
		s, h := scrubMetaText(*f)
		*f = s
		*hit = append(*hit, h...)
	}
}

func scrubSlice(hit *[]string, items []string) {
	for i := range items {
		scrubStrings(hit, &items[i])
	}
}

func ScrubDLP(doc *DailyLessonPlan) []string {
	var hit []string
	scrubStrings(&hit, &doc.Title, &doc.ContentStandard, &doc.PerformanceStandard,
		&doc.AdditionalActivities, &doc.Remarks, &doc.Reflection)
	scrubSlice(&hit, doc.Objectives)
	for i := range doc.Procedure {
		scrubStrings(&hit, &doc.Procedure[i].Activity)
	}
	for i := range doc.Evaluation {
		scrubStrings(&hit, &doc.Evaluation[i].Question)
	}
	return hit
}

func ScrubDLL(doc *DailyLessonLog) []string {
	var hit []string
	scrubStrings(&hit, &doc.Title, &doc.ContentStandard, &doc.PerformanceStandard)
	for i := range doc.Days {
		d := &doc.Days[i]
		scrubStrings(&hit, &d.Objective, &d.Content, &d.Reflection)
		for j := range d.Procedures {
			scrubStrings(&hit, &d.Procedures[j].Activity)
		}
	}
	return hit
}

func ScrubLAS(doc *ActivitySheet) []string {
	var hit []string
	scrubStrings(&hit, &doc.Title, &doc.BackgroundInformation, &doc.Reflection)
	for i := range doc.Activities {
		a := &doc.Activities[i]
		scrubStrings(&hit, &a.Title, &a.Directions)
		scrubSlice(&hit, a.Items)
	}
	return hit
}

func ScrubQuiz(doc *Quiz) []string {
	var hit []string
	scrubStrings(&hit, &doc.Title, &doc.Directions)
	for i := range doc.Questions {
		scrubStrings(&hit, &doc.Questions[i].Question)
	}
	return hit
}

func ScrubExam(doc *PeriodicalExam) []string {
	var hit []string
	scrubStrings(&hit, &doc.Title, &doc.Directions)
	for i := range doc.Parts {
		p := &doc.Parts[i]
		scrubStrings(&hit, &p.Directions)
		for j := range p.Questions {
			scrubStrings(&hit, &p.Questions[j].Question)
		}
	}
	return hit
}
