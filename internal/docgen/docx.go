// Package docgen serializes validated document content into downloadable
// office files mirroring the DepEd paper forms.
package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// Meta is the header block shared by every rendered form.
type Meta struct {
	Subject    string
	GradeLevel int
	Quarter    int
	Language   string
	SchoolYear string
}

// Run sizes are half-points.
const (
	sizeTitle   = "32"
	sizeHeading = "24"
	sizeBody    = "22"

	// Usable width of an A4 page in twips with 1" margins.
	pageWidthTwips = 9026
)

// gradeColor picks the accent color for a form's title line. Mirrors the
// DepEd key-stage grouping: primary, intermediate, JHS, SHS.
func gradeColor(level int) string {
	switch {
	case level <= 3:
		return "2E74B5"
	case level <= 6:
		return "548235"
	case level <= 10:
		return "BF8F00"
	default:
		return "7030A0"
	}
}

type builder struct {
	w *docx.Docx
}

func newBuilder() *builder {
	return &builder{w: docx.New().WithDefaultTheme()}
}

func (b *builder) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) title(text string, color string) {
	p := b.w.AddParagraph()
	p.Justification("center")
	r := p.AddText(strings.ToUpper(text))
	r.Size(sizeTitle).Bold()
	if color != "" {
		r.Color(color)
	}
}

func (b *builder) subtitle(text string) {
	p := b.w.AddParagraph()
	p.Justification("center")
	p.AddText(text).Size(sizeBody)
}

func (b *builder) heading(text string) {
	p := b.w.AddParagraph()
	p.AddText(text).Size(sizeHeading).Bold()
}

func (b *builder) labeled(label, value string) {
	p := b.w.AddParagraph()
	p.AddText(label + ": ").Size(sizeBody).Bold()
	p.AddText(value).Size(sizeBody)
}

func (b *builder) para(text string) {
	for _, line := range strings.Split(text, "\n") {
		p := b.w.AddParagraph()
		p.AddText(line).Size(sizeBody)
	}
}

func (b *builder) bullets(items []string) {
	for _, it := range items {
		p := b.w.AddParagraph()
		p.AddText("• " + it).Size(sizeBody)
	}
}

func (b *builder) numbered(items []string, start int) {
	for i, it := range items {
		p := b.w.AddParagraph()
		p.AddText(fmt.Sprintf("%d. %s", start+i, it)).Size(sizeBody)
	}
}

func (b *builder) spacer() {
	b.w.AddParagraph()
}

// table renders a uniform grid; when headerBold, the first row is bold.
// Cell text may contain newlines, one paragraph per line.
func (b *builder) table(rows [][]string, headerBold bool) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}
	t := b.w.AddTable(len(rows), len(rows[0]), pageWidthTwips, nil)
	for ri, row := range rows {
		if ri >= len(t.TableRows) {
			break
		}
		for ci, cell := range row {
			if ci >= len(t.TableRows[ri].TableCells) {
				break
			}
			tc := t.TableRows[ri].TableCells[ci]
			lines := strings.Split(cell, "\n")
			for _, line := range lines {
				p := tc.AddParagraph()
				r := p.AddText(line)
				r.Size(sizeBody)
				if headerBold && ri == 0 {
					r.Bold()
				}
			}
		}
	}
}

// formHeader writes the common DepEd identification block.
func (b *builder) formHeader(formName, docTitle string, meta Meta) {
	b.title(formName, gradeColor(meta.GradeLevel))
	if docTitle != "" {
		b.subtitle(docTitle)
	}
	b.spacer()
	b.labeled("Subject", meta.Subject)
	b.labeled("Grade Level", fmt.Sprintf("Grade %d", meta.GradeLevel))
	if meta.Quarter > 0 {
		b.labeled("Quarter", fmt.Sprintf("Quarter %d", meta.Quarter))
	}
	if meta.SchoolYear != "" {
		b.labeled("School Year", meta.SchoolYear)
	}
	b.spacer()
}

// optionLines formats four choice texts as lettered lines.
func optionLines(options []string) []string {
	letters := []string{"A", "B", "C", "D"}
	out := make([]string, 0, len(options))
	for i, o := range options {
		letter := "?"
		if i < len(letters) {
			letter = letters[i]
		}
		out = append(out, fmt.Sprintf("    %s. %s", letter, o))
	}
	return out
}
