// Package preview renders stored document JSON as an HTML fragment that
// mirrors the paper form closely enough for on-screen review before export.
package preview

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/aralgen/aralgen-backend/internal/content"
	"github.com/aralgen/aralgen-backend/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"letter": func(i int) string {
		letters := "ABCD"
		if i < 0 || i >= len(letters) {
			return "?"
		}
		return string(letters[i])
	},
	"inc": func(i int) int { return i + 1 },
}

type Renderer struct {
	t *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("preview").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse preview templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

type viewData struct {
	Doc     *types.GeneratedDocument
	Content any
}

// Render picks the template named after the document type and executes it
// against the decoded content.
func (r *Renderer) Render(doc *types.GeneratedDocument) ([]byte, error) {
	var decoded any
	switch doc.Type {
	case types.DocumentDLP:
		decoded = new(content.DailyLessonPlan)
	case types.DocumentDLL:
		decoded = new(content.DailyLessonLog)
	case types.DocumentLAS:
		decoded = new(content.ActivitySheet)
	case types.DocumentQuiz:
		decoded = new(content.Quiz)
	case types.DocumentExam:
		decoded = new(content.PeriodicalExam)
	default:
		return nil, fmt.Errorf("unknown document type %q", doc.Type)
	}
	if err := json.Unmarshal(doc.Content, decoded); err != nil {
		return nil, fmt.Errorf("decode stored %s: %w", doc.Type, err)
	}

	var buf bytes.Buffer
	name := string(doc.Type) + ".tmpl"
	if err := r.t.ExecuteTemplate(&buf, name, viewData{Doc: doc, Content: decoded}); err != nil {
		return nil, fmt.Errorf("render %s preview: %w", doc.Type, err)
	}
	return buf.Bytes(), nil
}
