package services

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// qtyNumFmt is the built-in "0.00" number format applied to quantities.
const qtyNumFmt = 2

// roundQty rounds a quantity to the 2 decimals shown in the quote.
func roundQty(v float64) float64 {
	return math.Round(v*100) / 100
}

// GenerateExcel creates an Excel file from the given ExportData and returns
// the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := excelSheetName(data.Title)

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{8, 60, 14, 8}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	roomStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E8E8E8"}, Pattern: 1},
		Border: thinBorders(),
		NumFmt: qtyNumFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create room style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: qtyNumFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
		NumFmt: qtyNumFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		NumFmt:    qtyNumFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)

	if data.ReferenceNumber != "" {
		if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge ref: %w", err)
		}
		f.SetCellValue(sheet, "A2", "Réf. : "+data.ReferenceNumber)
		f.SetCellStyle(sheet, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheet, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheet, "A3", "Date : "+data.CreatedDate)
	f.SetCellStyle(sheet, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Désignation", "Quantité", "Unité"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheet, "A"+rowStr, r.Index)

		desc := r.Description
		switch r.Level {
		case 1:
			desc = "  " + desc
		case 2:
			desc = "    " + desc
		}
		f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(desc))

		if r.HasQty {
			f.SetCellValue(sheet, "C"+rowStr, roundQty(r.Qty))
			f.SetCellValue(sheet, "D"+rowStr, r.Unit)
		}

		style := lineStyle
		switch {
		case r.IsTotal:
			style = totalStyle
		case r.Level == 0:
			style = roomStyle
		}
		f.SetCellStyle(sheet, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	summary := []struct {
		label string
		value float64
		unit  Unit
	}{
		{"Total surfaces :", data.TotalArea, UnitArea},
		{"Total linéaire :", data.TotalLength, UnitLength},
	}
	for _, s := range summary {
		if s.value == 0 {
			continue
		}
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "B"+rowStr, s.label)
		f.SetCellValue(sheet, "C"+rowStr, roundQty(s.value))
		f.SetCellValue(sheet, "D"+rowStr, s.unit.Symbol())
		f.SetCellStyle(sheet, "B"+rowStr, lastCol+rowStr, summaryLabelStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// excelSheetName turns a title into a valid sheet name: at most 31 runes,
// none of :\/?*[] and no single quote at either end.
func excelSheetName(title string) string {
	name := []rune(strings.Trim(sheetNameReplacer.Replace(title), "'"))
	if len(name) > 31 {
		name = []rune(strings.TrimRight(string(name[:31]), "'"))
	}
	if len(name) == 0 {
		return "Devis"
	}
	return string(name)
}

var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
)

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
