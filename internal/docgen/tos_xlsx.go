package docgen

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aralgen/aralgen-backend/internal/content"
)

// RenderTOSWorkbook writes a periodical exam's Table of Specifications as a
// spreadsheet, one row per competency plus a totals row, so department heads
// can re-balance item counts before printing.
func RenderTOSWorkbook(doc *content.PeriodicalExam, meta Meta) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "TOS"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{
		"Objective", "Topic", "Hours", "Percent",
		"Remembering", "Understanding", "Applying", "Analyzing",
		"Evaluating", "Creating", "Total Items", "Item Placement",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	totals := content.TOSRow{}
	for i, r := range doc.TOS {
		row := []any{
			r.Objective, r.Topic, r.Hours, r.Percent,
			r.Remembering, r.Understanding, r.Applying, r.Analyzing,
			r.Evaluating, r.Creating, r.TotalItems, placementRanges(r.Placement),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write tos row %d: %w", i+1, err)
		}
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

	totalRow := []any{
		"TOTAL", "", totals.Hours, totals.Percent,
		totals.Remembering, totals.Understanding, totals.Applying,
		totals.Analyzing, totals.Evaluating, totals.Creating,
		totals.TotalItems, "",
	}
	cell := fmt.Sprintf("A%d", len(doc.TOS)+2)
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, fmt.Errorf("write totals row: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "B", 40); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "L", "L", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
